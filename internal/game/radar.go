package game

import "math"

// RadarPoint is one blip in radar display space: +Y is the player's forward
// direction, units are pixels from the radar center.
type RadarPoint struct {
	X, Y float64
}

// Radar projects world-relative enemy positions onto a 2D polar display.
// Updates are throttled to a fixed interval of simulated time so the blip
// rate is independent of render frame rate. Rendering the point list is the
// display collaborator's job.
type Radar struct {
	Points []RadarPoint
	timer  float64
	tun    *Tuning
}

func NewRadar(tun *Tuning) *Radar {
	return &Radar{tun: tun}
}

// Update refreshes the snapshot when the throttle interval has elapsed.
func (r *Radar) Update(dt float64, player *Player, enemies []*Enemy) {
	r.timer += dt
	if r.timer < r.tun.RadarInterval {
		return
	}
	r.timer = 0
	r.Points = r.project(player, enemies)
}

// project rotates each in-range enemy into the player's heading frame and
// scales radial distance linearly to the radar's pixel radius.
func (r *Radar) project(player *Player, enemies []*Enemy) []RadarPoint {
	t := r.tun
	scale := t.RadarPixels / t.RadarRange
	cy := math.Cos(player.Pose.Yaw)
	sy := math.Sin(player.Pose.Yaw)

	out := make([]RadarPoint, 0, len(enemies))
	for _, e := range enemies {
		if e == nil {
			continue
		}
		rel := e.Pos.Sub(player.Pos)
		dist := rel.HorizLen()
		if dist > t.RadarRange {
			continue
		}
		// Rotate by the negative heading: radar-up is always player-forward.
		right := rel.X*cy - rel.Z*sy
		ahead := rel.X*sy + rel.Z*cy
		out = append(out, RadarPoint{X: right * scale, Y: ahead * scale})
	}
	return out
}
