package game

import (
	"math"
	"testing"
)

// dumpLog prints the full SimLog to t.Log so it appears in `go test -v` output.
func dumpLog(t *testing.T, ts *TestSim) {
	t.Helper()
	entries := ts.SimLog.Entries()
	if len(entries) == 0 {
		t.Log("(no log entries)")
		return
	}
	for _, e := range entries {
		t.Log(e.String())
	}
}

// dumpSummary prints the reporter totals and the latest window block.
func dumpSummary(t *testing.T, ts *TestSim) {
	t.Helper()
	if ts.Reporter == nil {
		return
	}
	t.Log(ts.Reporter.FormatTotals())
	if wr := ts.Reporter.WindowSummary(); wr != nil {
		t.Log(wr.Format())
	}
}

// huntAutopilot is a simple pursuit pilot: full throttle, trigger held, bank
// toward the nearest enemy and chase its altitude.
func huntAutopilot(ts *TestSim) func(tick int) Input {
	return func(tick int) Input {
		w := ts.World
		in := Input{Throttle: true, Shoot: true}

		var target Vec3
		found := false
		best := math.MaxFloat64
		for _, e := range w.Enemies {
			d := e.Pos.Sub(w.Player.Pos).LenSq()
			if d < best {
				best = d
				target = e.Pos
				found = true
			}
		}
		if !found {
			return in
		}
		p := w.Player

		diff := wrapAngle(headingTo(p.Pos, target) - p.Pose.Yaw)
		if diff > 0.1 {
			in.Left = true
		} else if diff < -0.1 {
			in.Right = true
		}
		if target.Y > p.Pos.Y+5 {
			in.Up = true
		} else if target.Y < p.Pos.Y-5 {
			in.Down = true
		}
		return in
	}
}

// --- Scenario: Takeoff Climb ---

func TestScenario_TakeoffClimb(t *testing.T) {
	t.Log("=== TestScenario_TakeoffClimb ===")
	t.Log("--- Setup: flat terrain, no enemies, full throttle from the runway ---")

	ts := NewTestSim(
		WithSeed(7),
		WithFlatTerrain(),
		WithNoEnemies(),
	)
	start := ts.World.Player.Pos.Y

	ts.RunTicks(120, Input{Throttle: true}) // 2 seconds
	dumpLog(t, ts)

	p := ts.World.Player
	if p.Throttle != 1 {
		t.Errorf("throttle after 2s = %.2f, want 1.0", p.Throttle)
	}
	if p.Grounded {
		t.Error("plane still grounded after 2s of full throttle")
	}
	if p.Pos.Y <= start {
		t.Errorf("altitude %.2f did not climb above the start %.2f", p.Pos.Y, start)
	}
	if p.Vel.Y <= 0 {
		t.Errorf("vertical speed %.2f, want positive during the climb", p.Vel.Y)
	}
}

// --- Scenario: Hunt ---

func TestScenario_HuntKeepsSimHealthy(t *testing.T) {
	t.Log("=== TestScenario_HuntKeepsSimHealthy ===")
	t.Log("--- Setup: flat terrain, full population, pursuit autopilot, 60s ---")

	ts := NewTestSim(
		WithSeed(42),
		WithFlatTerrain(),
	)
	ts.RunTicksFn(3600, huntAutopilot(ts))
	dumpLog(t, ts)
	dumpSummary(t, ts)

	w := ts.World
	if w.Phase == PhaseGameOver {
		t.Fatal("autopilot crashed on flat terrain")
	}
	if len(w.Enemies) != w.Tun.EnemyTarget {
		t.Errorf("population %d after the run, want %d", len(w.Enemies), w.Tun.EnemyTarget)
	}
	if ts.Reporter.TotalShots == 0 {
		t.Error("trigger held for 60s but no shots recorded")
	}
	if n := ts.SimLog.CountCategory("enemy", "maneuver"); n == 0 {
		t.Error("no enemy maneuvers over a 60s run")
	}
	checkSpawnsMatchKills(t, ts)
}

// --- Scenario: Boundary Turn-Back ---

func TestScenario_BoundaryTurnsPlayerBack(t *testing.T) {
	t.Log("=== TestScenario_BoundaryTurnsPlayerBack ===")
	t.Log("--- Setup: player coasting outward near the edge, no input ---")

	ts := NewTestSim(
		WithSeed(3),
		WithFlatTerrain(),
		WithNoEnemies(),
		WithPlayerAt(Vec3{X: 1100, Y: 60}, Vec3{X: 40}),
	)
	ts.RunTicks(900, Input{})
	dumpLog(t, ts)

	w := ts.World
	if d := w.Player.DistFromCenter(); d >= w.Tun.WorldRadius {
		t.Errorf("player at distance %.1f, want inside %.0f", d, w.Tun.WorldRadius)
	}
	if !ts.SimLog.HasEntry("event", "warning_on", "") {
		t.Error("edge flight never raised the boundary warning")
	}
	if !ts.SimLog.HasEntry("boundary", "state", "pushback") {
		t.Error("no push-back state transition recorded")
	}
}
