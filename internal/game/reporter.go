package game

import (
	"fmt"
	"strings"
)

// reportWindowTicks is how often a window summary is cut (~10s at 60 Hz).
const reportWindowTicks = 600

// WindowReport aggregates behaviour statistics over one report window.
type WindowReport struct {
	FromTick, ToTick int

	Shots      int
	Hits       int
	Kills      int
	Rescued    int // birds released this window
	Boundary   int // warning activations
	Explosions int

	MeanEnemyAltitude float64
	MeanPlayerSpeed   float64
	samples           int
}

// Accuracy is hits over shots for the window, zero when no shots fired.
func (wr *WindowReport) Accuracy() float64 {
	if wr.Shots == 0 {
		return 0
	}
	return float64(wr.Hits) / float64(wr.Shots)
}

// Format renders the window block for CLI and test output.
func (wr *WindowReport) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Window T=%d..%d ---\n", wr.FromTick, wr.ToTick)
	fmt.Fprintf(&sb, "shots=%d hits=%d (%.0f%%) kills=%d rescued=%d\n",
		wr.Shots, wr.Hits, wr.Accuracy()*100, wr.Kills, wr.Rescued)
	fmt.Fprintf(&sb, "boundary_warnings=%d explosions=%d\n", wr.Boundary, wr.Explosions)
	if wr.samples > 0 {
		fmt.Fprintf(&sb, "mean_enemy_alt=%.1f mean_player_speed=%.1f\n",
			wr.MeanEnemyAltitude/float64(wr.samples),
			wr.MeanPlayerSpeed/float64(wr.samples))
	}
	return sb.String()
}

// SimReporter collects windowed behaviour statistics from the event stream
// and world snapshots. One Collect call per tick.
type SimReporter struct {
	windows []*WindowReport
	current *WindowReport

	TotalShots   int
	TotalHits    int
	TotalKills   int
	TotalRescued int

	lastRescued int
}

func NewSimReporter() *SimReporter {
	return &SimReporter{}
}

// Collect ingests one tick's events and state samples.
func (r *SimReporter) Collect(w *World, events []Event) {
	tick := w.Tick()
	if r.current == nil {
		r.current = &WindowReport{FromTick: tick}
	}
	cur := r.current
	cur.ToTick = tick

	for _, ev := range events {
		switch ev.Kind {
		case EventShoot:
			cur.Shots++
			r.TotalShots++
		case EventHit:
			cur.Hits++
			r.TotalHits++
		case EventExplosion:
			cur.Explosions++
		case EventWarningOn:
			cur.Boundary++
		}
	}
	// Kills and rescues from counter deltas rather than events: the rescue
	// event fires once per release regardless of bird count.
	if d := w.Rescued - r.lastRescued; d > 0 {
		cur.Rescued += d
		r.TotalRescued += d
		cur.Kills++
		r.TotalKills++
	}
	r.lastRescued = w.Rescued

	var altSum float64
	for _, e := range w.Enemies {
		altSum += e.Pos.Y
	}
	if len(w.Enemies) > 0 {
		cur.MeanEnemyAltitude += altSum / float64(len(w.Enemies))
		cur.MeanPlayerSpeed += w.Player.Speed()
		cur.samples++
	}

	if tick-cur.FromTick >= reportWindowTicks {
		r.windows = append(r.windows, cur)
		r.current = &WindowReport{FromTick: tick}
	}
}

// WindowSummary returns the latest completed window, or the in-progress one
// when no window has closed yet, or nil before any data.
func (r *SimReporter) WindowSummary() *WindowReport {
	if len(r.windows) > 0 {
		return r.windows[len(r.windows)-1]
	}
	return r.current
}

// Windows returns every completed window.
func (r *SimReporter) Windows() []*WindowReport {
	return r.windows
}

// FormatTotals renders the run-level aggregate line.
func (r *SimReporter) FormatTotals() string {
	acc := 0.0
	if r.TotalShots > 0 {
		acc = float64(r.TotalHits) / float64(r.TotalShots) * 100
	}
	return fmt.Sprintf("totals: shots=%d hits=%d (%.0f%%) kills=%d rescued=%d",
		r.TotalShots, r.TotalHits, acc, r.TotalKills, r.TotalRescued)
}
