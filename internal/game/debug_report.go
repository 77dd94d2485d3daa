package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// buildDebugReport snapshots the full simulation state as text, for pasting
// into bug reports.
func (g *Game) buildDebugReport() string {
	w := g.world
	p := w.Player
	var sb strings.Builder

	fmt.Fprintf(&sb, "=== skyflock debug report (tick %d) ===\n", w.Tick())
	fmt.Fprintf(&sb, "phase=%s paused=%v rescued=%d best=%d\n",
		w.Phase, w.Paused, w.Rescued, g.save.BestRescued())
	fmt.Fprintf(&sb, "player pos=(%.1f,%.1f,%.1f) vel=(%.1f,%.1f,%.1f)\n",
		p.Pos.X, p.Pos.Y, p.Pos.Z, p.Vel.X, p.Vel.Y, p.Vel.Z)
	fmt.Fprintf(&sb, "player throttle=%.2f speed=%.1f grounded=%v bullets=%d boundary=%s dist=%.0f\n",
		p.Throttle, p.Speed(), p.Grounded, len(p.Bullets()),
		w.Boundary.State, p.DistFromCenter())

	fmt.Fprintf(&sb, "enemies (%d):\n", len(w.Enemies))
	for _, e := range w.Enemies {
		fmt.Fprintf(&sb, "  %s %-10s hp=%-3d maneuver=%-11s alt=%.1f speed=%.1f dist=%.0f\n",
			enemyLabel(e.ID), e.Behavior, e.Health, e.Maneuver,
			e.Pos.Y, e.speed, e.DistFromCenter())
	}
	fmt.Fprintf(&sb, "birds=%d effects=%d radar_blips=%d\n",
		len(w.Birds), w.Effects.Count(), len(w.Radar.Points))
	return sb.String()
}

// copyDebugReport puts the report on the system clipboard. Clipboard
// failures (headless X, Wayland quirks) are silently ignored.
func (g *Game) copyDebugReport() {
	_ = clipboard.WriteAll(g.buildDebugReport())
}
