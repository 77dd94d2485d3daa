package game

import (
	"math"
	"math/rand"
)

// Behavior is an enemy's coarse autonomous-motion mode, chosen at spawn.
type Behavior int

const (
	BehaviorPatrol Behavior = iota
	BehaviorAggressive
	BehaviorEvasive
	BehaviorDiving
	BehaviorFormation
)

func (b Behavior) String() string {
	switch b {
	case BehaviorPatrol:
		return "patrol"
	case BehaviorAggressive:
		return "aggressive"
	case BehaviorEvasive:
		return "evasive"
	case BehaviorDiving:
		return "diving"
	case BehaviorFormation:
		return "formation"
	default:
		return "unknown"
	}
}

// Maneuver is a time-boxed motion override layered on the base behavior.
// At most one is active; starting one clears the others.
type Maneuver int

const (
	ManeuverNone Maneuver = iota
	ManeuverEvade
	ManeuverDive
	ManeuverRoll
)

func (m Maneuver) String() string {
	switch m {
	case ManeuverNone:
		return "none"
	case ManeuverEvade:
		return "evade"
	case ManeuverDive:
		return "dive"
	case ManeuverRoll:
		return "barrel_roll"
	default:
		return "unknown"
	}
}

const (
	maneuverChance   = 0.20 // per-second chance of starting a maneuver
	evadeDuration    = 2.0
	rollDuration     = 1.2
	diveDurationMin  = 1.5
	diveDurationMax  = 2.5
	climbDuration    = 1.0  // gentle climb after a dive
	altitudeMargin   = 10.0 // soft correction band near altitude bounds
	bankSmoothing    = 3.0  // exponential decay rate toward the bank target
	damageEvadeOdds  = 0.7
	wrapHomeFraction = 0.2  // re-entry distance after a boundary wrap
)

// Enemy is an autonomous plane. It never removes itself: destruction is
// signalled through Damage's return value and handled by the driver.
type Enemy struct {
	Body
	ID       int
	Health   int
	Behavior Behavior

	Maneuver      Maneuver
	maneuverAge   float64
	maneuverDur   float64
	climbTimer    float64 // post-dive recovery, counts down
	evadeSign     float64 // left/right jink direction for this evade
	rollStartRoll float64

	targetDir     Vec3
	speed         float64
	targetSpeed   float64
	retargetTimer float64

	// Formation behavior tracks a leader plus a fixed offset. The driver
	// clears the pointer when the leader dies; the enemy then patrols.
	Leader       *Enemy
	leaderOffset Vec3

	FlashTimer float64 // hit flash countdown, cosmetic

	tun *Tuning
}

// NewEnemy spawns an enemy with a random behavior, heading, and altitude.
func NewEnemy(id int, pos Vec3, rng *rand.Rand, tun *Tuning) *Enemy {
	behaviors := []Behavior{
		BehaviorPatrol, BehaviorAggressive, BehaviorEvasive,
		BehaviorDiving, BehaviorFormation,
	}
	e := &Enemy{
		Body: Body{
			Pos:  pos,
			Pose: Pose{Yaw: rng.Float64()*2*math.Pi - math.Pi},
		},
		ID:       id,
		Health:   tun.EnemyHealth,
		Behavior: behaviors[rng.Intn(len(behaviors))],
		speed:    tun.EnemyBaseSpeed,
		tun:      tun,
	}
	e.leaderOffset = Vec3{
		X: (rng.Float64() - 0.5) * 40,
		Y: (rng.Float64() - 0.5) * 10,
		Z: -20 - rng.Float64()*20,
	}
	e.targetDir = forwardVector(e.Pose.Yaw, 0)
	e.retargetTimer = e.changeDirectionTime(rng)
	return e
}

// changeDirectionTime is the retarget interval; aggressive and evasive
// planes re-decide more often.
func (e *Enemy) changeDirectionTime(rng *rand.Rand) float64 {
	switch e.Behavior {
	case BehaviorAggressive, BehaviorEvasive:
		return 1.0 + rng.Float64()*1.5
	default:
		return 2.5 + rng.Float64()*2.5
	}
}

// Update runs one tick of the behavior state machine and kinematics.
// Order: boundary wrap, retargeting, maneuvers, orientation, speed,
// position, altitude clamp.
func (e *Enemy) Update(dt float64, playerPos Vec3, rng *rand.Rand, log maneuverLogger) {
	t := e.tun

	if e.FlashTimer > 0 {
		e.FlashTimer -= dt
	}

	e.wrapAtBoundary()
	e.retarget(dt, playerPos, rng)
	e.updateManeuver(dt, playerPos, rng, log)
	e.steerAltitude()
	e.updateOrientation(dt)
	e.updateSpeed(dt)

	e.Vel = e.Forward().Scale(e.speed)
	e.Pos = e.Pos.Add(e.Vel.Scale(dt))
	e.Pos.Y = clamp(e.Pos.Y, t.MinAltitude, t.MaxAltitude)
}

// wrapAtBoundary teleports the enemy to the diametrically opposite side at
// 20% of the world radius and reverses its target direction. Enemies wrap
// rather than push back; the boundary asymmetry with the player is
// intentional.
func (e *Enemy) wrapAtBoundary() {
	t := e.tun
	d := e.DistFromCenter()
	if d <= t.WorldRadius {
		return
	}
	// Opposite angular side, well inside the boundary.
	s := wrapHomeFraction * t.WorldRadius / d
	e.Pos.X = -e.Pos.X * s
	e.Pos.Z = -e.Pos.Z * s
	e.targetDir = e.targetDir.Scale(-1)
}

// retarget periodically recomputes targetDir per the base behavior.
func (e *Enemy) retarget(dt float64, playerPos Vec3, rng *rand.Rand) {
	e.retargetTimer -= dt
	if e.retargetTimer > 0 {
		return
	}
	e.retargetTimer = e.changeDirectionTime(rng)

	t := e.tun

	// Return-to-center dominates once the plane strays too far out; the
	// detection radius scales with the world.
	if e.DistFromCenter() > 0.6*t.WorldRadius {
		e.targetDir = Vec3{X: -e.Pos.X, Y: 0, Z: -e.Pos.Z}.Norm()
		return
	}

	switch e.Behavior {
	case BehaviorAggressive, BehaviorDiving:
		e.targetDir = e.pursuitDirection(playerPos, rng, 0.2)
	case BehaviorEvasive:
		e.targetDir = e.pursuitDirection(playerPos, rng, 0.6)
	case BehaviorFormation:
		if e.Leader != nil {
			goal := e.Leader.Pos.Add(e.leaderOffset)
			e.targetDir = goal.Sub(e.Pos).Norm()
			return
		}
		// Leaderless formation planes patrol.
		e.targetDir = e.randomDirection(rng)
	default:
		e.targetDir = e.randomDirection(rng)
	}
}

// pursuitDirection steers toward the player with behavior-dependent noise
// and a vertical bias that respects the altitude ceiling.
func (e *Enemy) pursuitDirection(playerPos Vec3, rng *rand.Rand, noise float64) Vec3 {
	t := e.tun
	dir := playerPos.Sub(e.Pos)
	dir.X += (rng.Float64() - 0.5) * noise * dir.HorizLen()
	dir.Z += (rng.Float64() - 0.5) * noise * dir.HorizLen()
	dir = dir.Norm()
	// Never steer above the ceiling.
	if e.Pos.Y >= t.MaxAltitude-altitudeMargin && dir.Y > 0 {
		dir.Y = 0
	}
	return dir.Norm()
}

// randomDirection is a uniform horizontal heading with a constrained
// vertical component biased away from the altitude limits.
func (e *Enemy) randomDirection(rng *rand.Rand) Vec3 {
	t := e.tun
	a := rng.Float64()*2*math.Pi - math.Pi
	y := (rng.Float64() - 0.5) * 0.4
	mid := (t.MinAltitude + t.MaxAltitude) / 2
	if e.Pos.Y < mid {
		y += 0.1
	} else {
		y -= 0.1
	}
	return Vec3{X: math.Sin(a), Y: y, Z: math.Cos(a)}.Norm()
}

// maneuverLogger lets the harness observe maneuver starts; the real game
// passes nil.
type maneuverLogger interface {
	ManeuverStarted(id int, m Maneuver)
}

// updateManeuver rolls for a new maneuver when idle and advances the
// active one. All timers are per-tick countdowns, never wall clock.
func (e *Enemy) updateManeuver(dt float64, playerPos Vec3, rng *rand.Rand, log maneuverLogger) {
	if e.climbTimer > 0 {
		// Post-dive recovery: gentle climb overrides the target direction.
		e.climbTimer -= dt
		dir := e.targetDir
		dir.Y = 0.3
		e.targetDir = dir.Norm()
	}

	if e.Maneuver == ManeuverNone {
		if rng.Float64() < maneuverChance*dt {
			roll := rng.Float64()
			switch {
			case roll < 0.4:
				e.startManeuver(ManeuverDive, diveDurationMin+rng.Float64()*(diveDurationMax-diveDurationMin), rng)
			case roll < 0.7:
				e.startManeuver(ManeuverEvade, evadeDuration, rng)
			default:
				e.startManeuver(ManeuverRoll, rollDuration, rng)
			}
			if log != nil {
				log.ManeuverStarted(e.ID, e.Maneuver)
			}
		}
		if e.Maneuver == ManeuverNone {
			return
		}
	}

	e.maneuverAge += dt
	if e.maneuverAge >= e.maneuverDur {
		if e.Maneuver == ManeuverDive {
			e.climbTimer = climbDuration
		}
		if e.Maneuver == ManeuverRoll {
			e.Pose.Roll = e.rollStartRoll
		}
		e.Maneuver = ManeuverNone
		return
	}

	switch e.Maneuver {
	case ManeuverEvade:
		// Oscillating lateral + vertical jink.
		fwd := e.Forward()
		lateral := Vec3{X: fwd.Z, Z: -fwd.X}.Norm().Scale(e.evadeSign * math.Sin(e.maneuverAge*6))
		dir := fwd.Add(lateral.Scale(0.8))
		dir.Y = 0.4 * math.Sin(e.maneuverAge*4)
		e.targetDir = dir.Norm()
	case ManeuverDive:
		// Steer toward a player-relative point, steeper as the dive ages.
		progress := e.maneuverAge / e.maneuverDur
		goal := playerPos
		dir := goal.Sub(e.Pos).Norm()
		dir.Y = math.Min(dir.Y, -0.2-0.6*progress)
		e.targetDir = dir.Norm()
	case ManeuverRoll:
		// One full sinusoidal 0→2π roll cycle; targetDir untouched.
		e.Pose.Roll = e.rollStartRoll + 2*math.Pi*(e.maneuverAge/e.maneuverDur)
	}
}

// startManeuver begins m, clearing any other active maneuver first so the
// mutual-exclusion invariant holds.
func (e *Enemy) startManeuver(m Maneuver, duration float64, rng *rand.Rand) {
	e.Maneuver = m
	e.maneuverAge = 0
	e.maneuverDur = duration
	e.climbTimer = 0
	if m == ManeuverEvade {
		e.evadeSign = 1
		if rng.Float64() < 0.5 {
			e.evadeSign = -1
		}
	}
	if m == ManeuverRoll {
		e.rollStartRoll = e.Pose.Roll
	}
}

// steerAltitude forces the target direction toward safe values one step
// before the hard clamp would engage.
func (e *Enemy) steerAltitude() {
	t := e.tun
	if e.Pos.Y < t.MinAltitude+altitudeMargin && e.targetDir.Y < 0.2 {
		e.targetDir.Y = 0.2
		e.targetDir = e.targetDir.Norm()
	}
	if e.Pos.Y > t.MaxAltitude-altitudeMargin && e.targetDir.Y > -0.2 {
		e.targetDir.Y = -0.2
		e.targetDir = e.targetDir.Norm()
	}
}

// updateOrientation chases targetDir with a turn rate scaled by the angular
// offset, and banks in proportion to turn intensity during normal flight.
func (e *Enemy) updateOrientation(dt float64) {
	t := e.tun

	desiredYaw := math.Atan2(e.targetDir.X, e.targetDir.Z)
	yawErr := wrapAngle(desiredYaw - e.Pose.Yaw)
	turn := clamp(yawErr, -t.EnemyTurnRate*dt, t.EnemyTurnRate*dt)
	// Scale by offset so small corrections are gentle.
	turn *= clamp01(math.Abs(yawErr) / 0.5)
	e.Pose.Yaw = wrapAngle(e.Pose.Yaw + turn)

	desiredPitch := -math.Asin(clamp(e.targetDir.Y, -1, 1))
	pitchErr := desiredPitch - e.Pose.Pitch
	e.Pose.Pitch += clamp(pitchErr, -t.EnemyTurnRate*dt, t.EnemyTurnRate*dt)

	if e.Maneuver != ManeuverRoll {
		bankTarget := -clamp(yawErr, -1, 1) * 0.8
		e.Pose.Roll += (bankTarget - e.Pose.Roll) * math.Min(1, bankSmoothing*dt)
	}
}

// updateSpeed moves current speed toward the behavior-scaled target with
// fixed inertia, so there are no instantaneous speed changes.
func (e *Enemy) updateSpeed(dt float64) {
	t := e.tun
	mul := 1.0
	switch e.Behavior {
	case BehaviorAggressive:
		mul = 1.2
	case BehaviorEvasive:
		mul = 1.1
	case BehaviorPatrol:
		mul = 0.9
	}
	switch e.Maneuver {
	case ManeuverDive:
		mul = 1.3
	case ManeuverEvade:
		mul = 1.1
	}
	e.targetSpeed = math.Min(t.EnemyBaseSpeed*mul, t.EnemyMaxSpeed)
	e.speed = approach(e.speed, e.targetSpeed, t.EnemySpeedInert*dt)
}

// Damage applies amount to health, starts the hit flash, and usually kicks
// off an evasive jink. Returns true when the hit was lethal; the driver
// owns removal, explosion, and bird release.
func (e *Enemy) Damage(amount int, rng *rand.Rand) bool {
	e.Health -= amount
	e.FlashTimer = e.tun.FlashDuration
	if e.Health <= 0 {
		return true
	}
	if rng.Float64() < damageEvadeOdds {
		e.startManeuver(ManeuverEvade, evadeDuration, rng)
	}
	return false
}
