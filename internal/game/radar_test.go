package game

import (
	"math"
	"math/rand"
	"testing"
)

func radarFixture(t *testing.T) (*Radar, *Player, Tuning) {
	t.Helper()
	tun := DefaultTuning()
	p := NewPlayer(&tun)
	p.Pos = Vec3{Y: 50}
	return NewRadar(&tun), p, tun
}

func radarEnemy(pos Vec3, tun *Tuning) *Enemy {
	rng := rand.New(rand.NewSource(1)) // #nosec G404 -- deterministic test
	return NewEnemy(0, pos, rng, tun)
}

func TestRadar_AheadIsUp(t *testing.T) {
	r, p, tun := radarFixture(t)
	p.Pose.Yaw = 0
	enemies := []*Enemy{radarEnemy(Vec3{Y: 60, Z: 100}, &tun)}

	r.Update(tun.RadarInterval, p, enemies)
	if len(r.Points) != 1 {
		t.Fatalf("got %d blips, want 1", len(r.Points))
	}
	pt := r.Points[0]
	want := 100 * tun.RadarPixels / tun.RadarRange
	if math.Abs(pt.X) > 1e-9 || math.Abs(pt.Y-want) > 1e-9 {
		t.Errorf("blip at (%.2f, %.2f), want (0, %.2f)", pt.X, pt.Y, want)
	}
}

func TestRadar_RotatesIntoHeadingFrame(t *testing.T) {
	r, p, tun := radarFixture(t)
	p.Pose.Yaw = math.Pi / 2 // facing +X
	enemies := []*Enemy{radarEnemy(Vec3{X: 100, Y: 60}, &tun)}

	r.Update(tun.RadarInterval, p, enemies)
	if len(r.Points) != 1 {
		t.Fatalf("got %d blips, want 1", len(r.Points))
	}
	pt := r.Points[0]
	want := 100 * tun.RadarPixels / tun.RadarRange
	if math.Abs(pt.X) > 1e-6 || math.Abs(pt.Y-want) > 1e-6 {
		t.Errorf("blip at (%.2f, %.2f), want (0, %.2f)", pt.X, pt.Y, want)
	}
}

func TestRadar_RangeLimits(t *testing.T) {
	r, p, tun := radarFixture(t)
	enemies := []*Enemy{
		radarEnemy(Vec3{Y: 60, Z: tun.RadarRange + 50}, &tun),  // out of range
		radarEnemy(Vec3{Y: 140, Z: tun.RadarRange - 10}, &tun), // in range, altitude ignored
	}

	r.Update(tun.RadarInterval, p, enemies)
	if len(r.Points) != 1 {
		t.Fatalf("got %d blips, want 1 (range is horizontal only)", len(r.Points))
	}
	// Radial blip distance maps linearly, range edge lands near the rim.
	pt := r.Points[0]
	dist := math.Sqrt(pt.X*pt.X + pt.Y*pt.Y)
	if dist > tun.RadarPixels {
		t.Errorf("blip radius %.2f beyond the display radius %.1f", dist, tun.RadarPixels)
	}
}

func TestRadar_UpdatesAreThrottled(t *testing.T) {
	r, p, tun := radarFixture(t)
	enemies := []*Enemy{radarEnemy(Vec3{Y: 60, Z: 100}, &tun)}
	half := tun.RadarInterval / 2

	r.Update(half, p, enemies)
	if r.Points != nil {
		t.Fatal("radar refreshed before the interval elapsed")
	}
	r.Update(half, p, enemies)
	if len(r.Points) != 1 {
		t.Fatal("radar did not refresh once the interval elapsed")
	}

	// The snapshot stays stale until the next interval boundary.
	old := r.Points[0]
	enemies[0].Pos.Z = 300
	r.Update(half, p, enemies)
	if r.Points[0] != old {
		t.Error("radar refreshed mid-interval")
	}
	r.Update(half, p, enemies)
	if r.Points[0] == old {
		t.Error("radar never picked up the moved enemy")
	}
}
