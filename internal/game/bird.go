package game

import (
	"math"
	"math/rand"
)

const (
	birdFlapFreq     = 9.0  // flap cycles per second
	birdBounceDamp   = 0.5  // vertical velocity retained on a ground bounce
	birdImpulseOdds  = 0.8  // per-second chance of a random heading impulse
	birdImpulseSpeed = 6.0
	birdHeadingJit   = 0.15 // radians of cosmetic heading wobble
)

// Bird is a rescued bird: ballistic under half gravity with a cosmetic flap
// cycle. Removal criteria (age, distance from player) are evaluated by the
// driver, not here.
type Bird struct {
	Body
	Age      float64
	Lifetime float64
	Color    int     // cosmetic tag, picks a palette entry
	Flap     float64 // wing phase in [-1, 1]

	tun *Tuning
}

// NewBird releases a bird at pos with a random outward-and-upward velocity.
func NewBird(pos Vec3, rng *rand.Rand, tun *Tuning) *Bird {
	a := rng.Float64() * 2 * math.Pi
	speed := 4 + rng.Float64()*6
	return &Bird{
		Body: Body{
			Pos: pos,
			Vel: Vec3{
				X: math.Sin(a) * speed,
				Y: 5 + rng.Float64()*5,
				Z: math.Cos(a) * speed,
			},
		},
		Lifetime: tun.BirdLifetime,
		Color:    rng.Intn(4),
		tun:      tun,
	}
}

// Update advances one tick: age, half-strength gravity, position, flap
// animation, heading alignment, ground bounce, and occasional impulses.
func (b *Bird) Update(dt float64, rng *rand.Rand) {
	t := b.tun
	b.Age += dt

	b.Vel.Y -= 0.5 * t.Gravity * dt
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))

	// Cosmetic: flap cycle from age, heading follows velocity with jitter.
	b.Flap = math.Cos(b.Age * birdFlapFreq * 2 * math.Pi)
	if b.Vel.HorizLen() > 0.5 {
		heading := math.Atan2(b.Vel.X, b.Vel.Z)
		b.Pose.Yaw = wrapAngle(heading + (rng.Float64()-0.5)*birdHeadingJit)
	}

	// Bounce with damping on ground contact.
	if b.Pos.Y <= t.GroundY && b.Vel.Y < 0 {
		b.Pos.Y = t.GroundY
		b.Vel.Y = -b.Vel.Y * birdBounceDamp
	}

	// Occasional impulsive horizontal change, re-clamped to max speed.
	if rng.Float64() < birdImpulseOdds*dt {
		a := rng.Float64() * 2 * math.Pi
		b.Vel.X += math.Sin(a) * birdImpulseSpeed
		b.Vel.Z += math.Cos(a) * birdImpulseSpeed
		h := b.Vel.HorizLen()
		if h > t.BirdMaxHoriz {
			s := t.BirdMaxHoriz / h
			b.Vel.X *= s
			b.Vel.Z *= s
		}
	}
}

// Expired reports the driver-side removal criteria: lifetime exceeded or
// too far from the player to matter.
func (b *Bird) Expired(playerPos Vec3) bool {
	if b.Age > b.Lifetime {
		return true
	}
	return b.Pos.Sub(playerPos).Len() > b.tun.BirdDespawn
}
