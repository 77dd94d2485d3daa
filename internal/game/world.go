package game

import (
	"math"
	"math/rand"
)

// Phase is the terminal-state machine of a run.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
	PhaseVictory
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	case PhaseVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// World is the simulation driver. It exclusively owns the active-entity
// collections and the world-state singleton; entities never reach into each
// other's lists except through the driver-mediated calls below. All updates
// run synchronously inside Advance: one tick, no locks.
type World struct {
	Tun      Tuning
	Player   *Player
	Enemies  []*Enemy
	Birds    []*Bird
	Effects  *EffectManager
	Terrain  *Terrain
	Boundary *BoundaryEnforcer
	Radar    *Radar

	Rescued int    // monotonic; victory at Tun.RescueVictory
	Phase   Phase
	Reason  string // shown on the terminal overlay
	Paused  bool

	Events EventQueue

	Log *SimLog // nil outside the headless harness

	rng         *rand.Rand
	seed        int64
	tick        int
	nextEnemyID int
}

// NewWorld builds a fresh run: terrain, player at the runway, and the full
// enemy population. Deterministic per seed.
func NewWorld(seed int64, tun Tuning) *World {
	w := &World{
		Tun:  tun,
		seed: seed,
	}
	w.reset()
	return w
}

// Restart is the hard reset the overlay's restart signal maps to: full
// re-initialization of world state with a new seed.
func (w *World) Restart(seed int64) {
	w.seed = seed
	w.reset()
}

func (w *World) reset() {
	w.rng = rand.New(rand.NewSource(w.seed)) // #nosec G404 -- game only
	w.Player = NewPlayer(&w.Tun)
	w.Enemies = nil
	w.Birds = nil
	w.Effects = NewEffectManager(w.Tun.EffectCap)
	w.Terrain = GenerateTerrain(w.rng, &w.Tun)
	w.Boundary = NewBoundaryEnforcer(&w.Tun)
	w.Radar = NewRadar(&w.Tun)
	w.Rescued = 0
	w.Phase = PhasePlaying
	w.Reason = ""
	w.Paused = false
	w.Events = EventQueue{}
	w.tick = 0
	w.nextEnemyID = 0
	for len(w.Enemies) < w.Tun.EnemyTarget {
		w.spawnEnemy()
	}
}

// Tick returns the current tick count.
func (w *World) Tick() int {
	return w.tick
}

// Advance runs one simulation tick over elapsed time dt. The stage order is
// fixed and load-bearing: player (and its bullets) integrate first, then
// enemies, then birds; the bullet-hit pass therefore evaluates POST-move
// enemy positions. Pause and terminal phases still update effects so
// in-flight explosions finish animating.
func (w *World) Advance(dt float64, in Input) {
	if dt < 0 {
		return
	}
	// Clamp to bound integration error across hitches and pauses.
	dt = math.Min(dt, w.Tun.MaxStep)

	if w.Paused || w.Phase != PhasePlaying {
		w.Effects.Update(dt)
		return
	}
	w.tick++

	// 1. Player kinematics + owned bullet pool.
	w.Player.Update(in, dt, &w.Events)

	// 2. Enemy behavior state machines.
	for _, e := range w.Enemies {
		e.Update(dt, w.Player.Pos, w.rng, w.maneuverLog())
	}

	// 3. Birds, with driver-side removal.
	w.updateBirds(dt)

	// 4. Bullet-vs-enemy resolution (post-move positions).
	w.resolveBulletHits()

	// 5. Player terrain and world-boundary handling.
	w.checkPlayerCollisions()
	if w.Phase == PhasePlaying {
		w.Boundary.Enforce(&w.Player.Body, dt, &w.Events)
	}

	// 6. Population self-heals toward the target every tick.
	for len(w.Enemies) < w.Tun.EnemyTarget {
		w.spawnEnemy()
	}

	// 7. Transients and the radar snapshot.
	w.Effects.Update(dt)
	w.Radar.Update(dt, w.Player, w.Enemies)
}

func (w *World) updateBirds(dt float64) {
	kept := w.Birds[:0]
	for _, b := range w.Birds {
		if b == nil {
			continue
		}
		b.Update(dt, w.rng)
		if !b.Expired(w.Player.Pos) {
			kept = append(kept, b)
		}
	}
	for i := len(kept); i < len(w.Birds); i++ {
		w.Birds[i] = nil
	}
	w.Birds = kept
}

// resolveBulletHits runs the squared-distance bullet-enemy pass. A bullet
// scores at most one hit; a lethal hit triggers the full destruction
// sequence before the next bullet is considered.
func (w *World) resolveBulletHits() {
	hitSq := w.Tun.HitRadius * w.Tun.HitRadius
	for _, b := range w.Player.Bullets() {
		if b.Dead() {
			continue
		}
		for i, e := range w.Enemies {
			if e == nil {
				continue
			}
			if b.Pos.Sub(e.Pos).LenSq() >= hitSq {
				continue
			}
			b.Kill()
			w.Effects.Add(NewHitFlash(b.Pos))
			w.Events.Emit(EventHit, b.Pos)
			if w.Log != nil {
				w.Log.Add(w.tick, enemyLabel(e.ID), "combat", "hit",
					"bullet hit", float64(e.Health))
			}
			if e.Damage(w.Tun.BulletDamage, w.rng) {
				w.destroyEnemy(i)
			}
			break
		}
	}
}

// destroyEnemy runs the exactly-once destruction sequence: explosion,
// bird release, rescue counting, removal, and an immediate replacement.
func (w *World) destroyEnemy(idx int) {
	e := w.Enemies[idx]
	w.Effects.Add(NewExplosion(e.Pos))
	w.Events.Emit(EventExplosion, e.Pos)
	if w.Log != nil {
		w.Log.Add(w.tick, enemyLabel(e.ID), "combat", "destroyed", e.Behavior.String(), 0)
	}

	w.releaseBirds(e.Pos)

	// Orphan any wingmen before the leader disappears.
	for _, o := range w.Enemies {
		if o != nil && o.Leader == e {
			o.Leader = nil
		}
	}
	w.Enemies = append(w.Enemies[:idx], w.Enemies[idx+1:]...)
	w.spawnEnemy()
}

// releaseBirds spawns 2–4 birds (capped by population headroom), counts
// them as rescued, and checks the exactly-once victory transition.
func (w *World) releaseBirds(pos Vec3) {
	n := w.Tun.ReleaseMin + w.rng.Intn(w.Tun.ReleaseMax-w.Tun.ReleaseMin+1)
	if headroom := w.Tun.BirdPopCap - len(w.Birds); n > headroom {
		n = headroom
	}
	for i := 0; i < n; i++ {
		w.Birds = append(w.Birds, NewBird(pos, w.rng, &w.Tun))
	}
	if n > 0 {
		w.Rescued += n
		w.Events.Emit(EventRescue, pos)
		if w.Log != nil {
			w.Log.Add(w.tick, "--", "world", "rescued", "", float64(w.Rescued))
		}
	}
	if w.Rescued >= w.Tun.RescueVictory && w.Phase == PhasePlaying {
		w.Phase = PhaseVictory
		w.Reason = "flock complete"
		w.Events.Emit(EventVictory, pos)
		if w.Log != nil {
			w.Log.Add(w.tick, "--", "world", "victory", w.Reason, float64(w.Rescued))
		}
	}
}

// checkPlayerCollisions applies the fatal terrain rules. The explosion is
// spawned before the phase flips so it renders on the game-over screen.
func (w *World) checkPlayerCollisions() {
	if w.Phase != PhasePlaying {
		return
	}
	if w.Terrain.Collides(w.Player.Pos, w.Tun.GroundY) {
		w.Effects.Add(NewExplosion(w.Player.Pos))
		w.Events.Emit(EventExplosion, w.Player.Pos)
		w.Phase = PhaseGameOver
		w.Reason = "crashed"
		w.Events.Emit(EventGameOver, w.Player.Pos)
		if w.Log != nil {
			w.Log.Add(w.tick, "P", "world", "game_over", w.Reason, 0)
		}
	}
}

// spawnEnemy adds one enemy at a random position on the mid ring, wiring a
// leader for formation fliers when one exists.
func (w *World) spawnEnemy() {
	t := &w.Tun
	a := w.rng.Float64() * 2 * math.Pi
	r := (0.4 + w.rng.Float64()*0.4) * t.WorldRadius
	pos := Vec3{
		X: math.Sin(a) * r,
		Y: t.MinAltitude + w.rng.Float64()*(t.MaxAltitude-t.MinAltitude),
		Z: math.Cos(a) * r,
	}
	e := NewEnemy(w.nextEnemyID, pos, w.rng, t)
	w.nextEnemyID++
	if e.Behavior == BehaviorFormation && len(w.Enemies) > 0 {
		e.Leader = w.Enemies[w.rng.Intn(len(w.Enemies))]
	}
	w.Enemies = append(w.Enemies, e)
	if w.Log != nil {
		w.Log.Add(w.tick, enemyLabel(e.ID), "enemy", "spawn", e.Behavior.String(), 0)
	}
}

func (w *World) maneuverLog() maneuverLogger {
	if w.Log == nil {
		return nil
	}
	return &simManeuverLogger{log: w.Log, tick: w.tick}
}

type simManeuverLogger struct {
	log  *SimLog
	tick int
}

func (l *simManeuverLogger) ManeuverStarted(id int, m Maneuver) {
	l.log.Add(l.tick, enemyLabel(id), "enemy", "maneuver", m.String(), 0)
}
