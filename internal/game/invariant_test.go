package game

import "testing"

// --- Invariant helpers ---

// checkThrottleBounded verifies throttle never leaves [0, 1] using verbose
// flight samples.
func checkThrottleBounded(t *testing.T, ts *TestSim) {
	t.Helper()
	entries := ts.SimLog.Filter("flight", "throttle")
	if len(entries) == 0 {
		t.Log("checkThrottleBounded: no throttle entries (run with verbose SimLog)")
		return
	}
	for _, e := range entries {
		if e.NumVal < 0 || e.NumVal > 1 {
			t.Errorf("throttle out of bounds at T=%d: %.4f", e.Tick, e.NumVal)
			return
		}
	}
}

// checkEnemyAltitudeBounded verifies every enemy altitude sample stays inside
// the flight envelope.
func checkEnemyAltitudeBounded(t *testing.T, ts *TestSim) {
	t.Helper()
	tun := &ts.World.Tun
	entries := ts.SimLog.Filter("enemy", "altitude")
	if len(entries) == 0 {
		t.Log("checkEnemyAltitudeBounded: no altitude entries (run with verbose SimLog)")
		return
	}
	for _, e := range entries {
		if e.NumVal < tun.MinAltitude || e.NumVal > tun.MaxAltitude {
			t.Errorf("%s altitude %.2f outside [%.0f, %.0f] at T=%d",
				e.Actor, e.NumVal, tun.MinAltitude, tun.MaxAltitude, e.Tick)
			return
		}
	}
}

// checkSpawnsMatchKills verifies every destruction was followed by a
// replacement spawn (the initial population is spawned before logging starts).
func checkSpawnsMatchKills(t *testing.T, ts *TestSim) {
	t.Helper()
	kills := ts.SimLog.CountCategory("combat", "destroyed")
	spawns := ts.SimLog.CountCategory("enemy", "spawn")
	if spawns != kills {
		t.Errorf("spawns (%d) do not match kills (%d)", spawns, kills)
	}
}

// --- Invariant test scenarios ---

func TestInvariant_ThrottleBounded_MixedInput(t *testing.T) {
	ts := NewTestSim(
		WithSeed(5),
		WithVerbose(true),
		WithFlatTerrain(),
		WithNoEnemies(),
	)
	inputs := []Input{
		{Throttle: true},
		{Throttle: true, Brake: true},
		{Brake: true},
		{},
	}
	ts.RunTicksFn(900, func(tick int) Input {
		return inputs[(tick/60)%len(inputs)]
	})
	checkThrottleBounded(t, ts)
}

func TestInvariant_EnemyAltitudeBounded_LongRun(t *testing.T) {
	ts := NewTestSim(
		WithSeed(11),
		WithVerbose(true),
		WithFlatTerrain(),
	)
	ts.RunTicks(1800, Input{})
	checkEnemyAltitudeBounded(t, ts)
}

func TestInvariant_PopulationAndRescueStable_UnderFire(t *testing.T) {
	ts := NewTestSim(
		WithSeed(42),
		WithFlatTerrain(),
	)
	w := ts.World
	hunt := huntAutopilot(ts)

	prevRescued := 0
	for i := 0; i < 1800; i++ {
		ts.RunTicks(1, hunt(w.Tick()))
		if len(w.Enemies) != w.Tun.EnemyTarget {
			t.Fatalf("population %d at T=%d, want %d", len(w.Enemies), w.Tick(), w.Tun.EnemyTarget)
		}
		if w.Rescued < prevRescued {
			t.Fatalf("rescued count went backwards at T=%d: %d -> %d", w.Tick(), prevRescued, w.Rescued)
		}
		prevRescued = w.Rescued
		if w.Effects.Count() > w.Tun.EffectCap {
			t.Fatalf("effect count %d exceeds cap %d at T=%d", w.Effects.Count(), w.Tun.EffectCap, w.Tick())
		}
	}
	checkSpawnsMatchKills(t, ts)
}

func TestInvariant_BoundaryHoldsPlayer(t *testing.T) {
	ts := NewTestSim(
		WithSeed(8),
		WithFlatTerrain(),
		WithNoEnemies(),
		WithPlayerAt(Vec3{X: 1000, Y: 60}, Vec3{X: 70}),
	)
	w := ts.World

	for i := 0; i < 1200; i++ {
		ts.RunTicks(1, Input{})
		if d := w.Player.DistFromCenter(); d > w.Tun.WorldRadius {
			t.Fatalf("player escaped to distance %.1f at T=%d", d, w.Tick())
		}
	}
	if !ts.SimLog.HasEntry("event", "warning_on", "") {
		t.Error("outbound flight never triggered the boundary warning")
	}
}
