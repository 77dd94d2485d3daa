package game

import "math"

// BoundaryState is the per-object soft-boundary phase.
type BoundaryState int

const (
	BoundaryInside BoundaryState = iota
	BoundaryWarning
	BoundaryPushback
)

func (s BoundaryState) String() string {
	switch s {
	case BoundaryInside:
		return "inside"
	case BoundaryWarning:
		return "warning"
	case BoundaryPushback:
		return "pushback"
	default:
		return "unknown"
	}
}

const (
	pushForceGain   = 4.0 // inward accel per unit beyond the push ring
	hardRingDamping = 0.5 // radial velocity retained after hard-ring reflection
	safetyNetDamp   = 0.1 // velocity retained after the safety-net teleport
)

// BoundaryEnforcer keeps one tracked object (the player) inside the world:
// warning ring, proportional push-back, hard-ring clamp + reflection, and a
// teleport safety net that should never fire given the earlier stages.
// Enemies do not use this; they wrap (see Enemy.wrapAtBoundary).
type BoundaryEnforcer struct {
	State BoundaryState
	tun   *Tuning
}

func NewBoundaryEnforcer(tun *Tuning) *BoundaryEnforcer {
	return &BoundaryEnforcer{tun: tun}
}

// Enforce runs one boundary pass over the body, emitting warning on/off
// events on state transitions (idempotent while a state holds).
func (be *BoundaryEnforcer) Enforce(b *Body, dt float64, events *EventQueue) {
	t := be.tun
	d := b.DistFromCenter()

	// Safety net: should be unreachable, but never let anything escape.
	if d > t.SafetyNetFrac*t.WorldRadius {
		home := t.SafetyHomeFrac * t.WorldRadius
		s := home / d
		b.Pos.X *= s
		b.Pos.Z *= s
		b.Vel = b.Vel.Scale(safetyNetDamp)
		be.transition(BoundaryPushback, b.Pos, events)
		return
	}

	if d >= t.PushRadius {
		be.transition(BoundaryPushback, b.Pos, events)
		// Inward force proportional to penetration of the push ring.
		inward := Vec3{X: -b.Pos.X / d, Z: -b.Pos.Z / d}
		b.Vel = b.Vel.Add(inward.Scale(pushForceGain * (d - t.PushRadius) * dt))

		hard := t.HardRingFrac * t.WorldRadius
		if d >= hard {
			// Small positional correction plus damped reflection of the
			// outward radial velocity component.
			s := hard / d
			b.Pos.X *= s
			b.Pos.Z *= s
			radial := (b.Vel.X*b.Pos.X + b.Vel.Z*b.Pos.Z) / hard
			if radial > 0 {
				nx := b.Pos.X / hard
				nz := b.Pos.Z / hard
				b.Vel.X -= (1 + hardRingDamping) * radial * nx
				b.Vel.Z -= (1 + hardRingDamping) * radial * nz
			}
		}
		return
	}

	if d >= t.WarningRadius {
		be.transition(BoundaryWarning, b.Pos, events)
		return
	}
	be.transition(BoundaryInside, b.Pos, events)
}

// transition flips the state machine, signalling the warning display/audio
// exactly once per activation.
func (be *BoundaryEnforcer) transition(next BoundaryState, pos Vec3, events *EventQueue) {
	if be.State == next {
		return
	}
	wasOut := be.State != BoundaryInside
	isOut := next != BoundaryInside
	if events != nil {
		if !wasOut && isOut {
			events.Emit(EventWarningOn, pos)
		}
		if wasOut && !isOut {
			events.Emit(EventWarningOff, pos)
		}
	}
	be.State = next
}

// OutwardRadialSpeed is the component of v pointing away from the world
// center at pos (test helper for the push-back property).
func OutwardRadialSpeed(pos, vel Vec3) float64 {
	d := math.Sqrt(pos.X*pos.X + pos.Z*pos.Z)
	if d < 1e-9 {
		return 0
	}
	return (vel.X*pos.X + vel.Z*pos.Z) / d
}
