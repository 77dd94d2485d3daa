package game

import (
	"fmt"
	"math/rand"
)

// TestSim is a headless simulation harness used by tests and the
// headless-report tool. It drives World.Advance at a fixed 60 Hz step with
// no ebiten dependency, deterministic seeding, and structured logging.
type TestSim struct {
	World  *World
	SimLog *SimLog

	Reporter *SimReporter

	dt              float64
	seed            int64
	tuning          Tuning
	scriptedEnemies bool
}

// harnessOptionKind controls the pass in which an option is applied.
type harnessOptionKind int

const (
	harnessOptInfra  harnessOptionKind = iota // seed, tuning, verbose: applied first
	harnessOptEntity                          // entity placement: applied after the world exists
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind harnessOptionKind
	fn   func(*TestSim)
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{harnessOptInfra, func(ts *TestSim) {
		ts.seed = seed
	}}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{harnessOptInfra, func(ts *TestSim) {
		ts.SimLog = NewSimLog(v)
	}}
}

// WithTuning mutates the ruleset before the world is built.
func WithTuning(mutate func(*Tuning)) SimOption {
	return SimOption{harnessOptInfra, func(ts *TestSim) {
		mutate(&ts.tuning)
	}}
}

// WithFlatTerrain removes every obstacle so kinematics tests see open sky
// and safe ground everywhere (the runway covers the whole disc).
func WithFlatTerrain() SimOption {
	return SimOption{harnessOptEntity, func(ts *TestSim) {
		r := ts.tuning.WorldRadius
		ts.World.Terrain = &Terrain{
			Runway: Runway{X0: -r, Z0: -r, X1: r, Z1: r},
		}
	}}
}

// WithNoEnemies clears the spawned population and stops self-healing.
func WithNoEnemies() SimOption {
	return SimOption{harnessOptInfra, func(ts *TestSim) {
		ts.tuning.EnemyTarget = 0
	}}
}

// WithPlayerAt places the player with a given position and velocity.
func WithPlayerAt(pos, vel Vec3) SimOption {
	return SimOption{harnessOptEntity, func(ts *TestSim) {
		ts.World.Player.Pos = pos
		ts.World.Player.Vel = vel
	}}
}

// WithEnemyAt replaces the population with scripted enemies, one per call.
// The first call clears the random spawns.
func WithEnemyAt(behavior Behavior, pos Vec3) SimOption {
	return SimOption{harnessOptEntity, func(ts *TestSim) {
		if !ts.scriptedEnemies {
			ts.World.Enemies = nil
			ts.scriptedEnemies = true
		}
		rng := rand.New(rand.NewSource(ts.seed + int64(len(ts.World.Enemies)))) // #nosec G404 -- test harness
		e := NewEnemy(len(ts.World.Enemies), pos, rng, &ts.World.Tun)
		e.Behavior = behavior
		ts.World.Enemies = append(ts.World.Enemies, e)
		// Population self-healing tracks the scripted count.
		ts.World.Tun.EnemyTarget = len(ts.World.Enemies)
	}}
}

// NewTestSim constructs a TestSim in two ordered passes: infrastructure
// (seed, tuning, verbose), then the world, then entity placement.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		SimLog: NewSimLog(false),
		dt:     1.0 / 60.0,
		seed:   1,
		tuning: DefaultTuning(),
	}
	for _, o := range opts {
		if o.kind == harnessOptInfra {
			o.fn(ts)
		}
	}
	ts.World = NewWorld(ts.seed, ts.tuning)
	ts.World.Log = ts.SimLog
	ts.Reporter = NewSimReporter()
	for _, o := range opts {
		if o.kind == harnessOptEntity {
			o.fn(ts)
		}
	}
	return ts
}

// RunTicks advances the simulation n ticks with a constant input snapshot.
func (ts *TestSim) RunTicks(n int, in Input) {
	for i := 0; i < n; i++ {
		ts.step(in)
	}
}

// RunTicksFn advances n ticks, asking fn for each tick's input.
func (ts *TestSim) RunTicksFn(n int, fn func(tick int) Input) {
	for i := 0; i < n; i++ {
		ts.step(fn(ts.World.Tick()))
	}
}

// RunUntil advances up to maxTicks, stopping early when the predicate
// holds. Returns the tick at which it was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int, in Input) int {
	for i := 0; i < maxTicks; i++ {
		ts.step(in)
		if predicate(ts) {
			return ts.World.Tick()
		}
	}
	return -1
}

// step mirrors the front end's per-frame drive of the world, plus the
// post-tick change detection the in-game HUD does not need.
func (ts *TestSim) step(in Input) {
	w := ts.World

	prevBoundary := w.Boundary.State
	prevPhase := w.Phase
	prevManeuvers := make(map[int]Maneuver, len(w.Enemies))
	for _, e := range w.Enemies {
		prevManeuvers[e.ID] = e.Maneuver
	}

	w.Advance(ts.dt, in)
	events := w.Events.Drain()
	ts.Reporter.Collect(w, events)

	tick := w.Tick()
	for _, ev := range events {
		ts.SimLog.Add(tick, "--", "event", ev.Kind.String(),
			fmt.Sprintf("(%.0f,%.0f,%.0f)", ev.Pos.X, ev.Pos.Y, ev.Pos.Z), 0)
	}
	if w.Boundary.State != prevBoundary {
		ts.SimLog.Add(tick, "P", "boundary", "state",
			fmt.Sprintf("%s → %s", prevBoundary, w.Boundary.State), w.Player.DistFromCenter())
	}
	if w.Phase != prevPhase {
		ts.SimLog.Add(tick, "--", "world", "phase",
			fmt.Sprintf("%s → %s", prevPhase, w.Phase), 0)
	}
	for _, e := range w.Enemies {
		if prev, ok := prevManeuvers[e.ID]; ok && e.Maneuver != prev && e.Maneuver == ManeuverNone {
			ts.SimLog.Add(tick, enemyLabel(e.ID), "enemy", "maneuver_end", prev.String(), 0)
		}
	}

	p := w.Player
	ts.SimLog.AddVerbose(tick, "P", "flight", "position",
		fmt.Sprintf("(%.1f,%.1f,%.1f)", p.Pos.X, p.Pos.Y, p.Pos.Z), p.Pos.Y)
	ts.SimLog.AddVerbose(tick, "P", "flight", "throttle",
		fmt.Sprintf("%.3f", p.Throttle), p.Throttle)
	ts.SimLog.AddVerbose(tick, "P", "flight", "speed",
		fmt.Sprintf("%.2f", p.Speed()), p.Speed())
	for _, e := range w.Enemies {
		ts.SimLog.AddVerbose(tick, enemyLabel(e.ID), "enemy", "altitude",
			fmt.Sprintf("%.1f", e.Pos.Y), e.Pos.Y)
	}
}
