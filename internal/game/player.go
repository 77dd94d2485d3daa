package game

import "math"

// Input is the per-tick snapshot of player control flags. The input source
// (keyboard, test script) produces one of these each tick; the player never
// reads devices directly.
type Input struct {
	Throttle bool // ramp throttle up
	Brake    bool // ramp throttle down
	Left     bool // roll/yaw left
	Right    bool // roll/yaw right
	Up       bool // nose up
	Down     bool // nose down
	Shoot    bool
}

// Player is the piloted plane. It owns its bullet pool; everything else in
// the world belongs to the driver.
type Player struct {
	Body
	Throttle float64 // always in [0,1]
	Health   int     // legacy; fatal collisions gate game over, not health
	Grounded bool

	bullets  []*Bullet
	cooldown float64 // seconds until the next shot is allowed

	tun *Tuning
}

// NewPlayer spawns the player parked at the runway threshold.
func NewPlayer(tun *Tuning) *Player {
	return &Player{
		Body: Body{
			Pos: Vec3{X: 0, Y: tun.GroundY + 1, Z: -40},
		},
		Health: 100,
		tun:    tun,
	}
}

// Update integrates one tick of flight dynamics from the control snapshot.
// Order: throttle ramp, rotation, forces, speed clamp, position, ground
// contact, then the owned bullet pool.
func (p *Player) Update(in Input, dt float64, events *EventQueue) {
	t := p.tun

	// Throttle ramps while held, in [0,1] always.
	if in.Throttle {
		p.Throttle = clamp01(p.Throttle + t.ThrottleRate*dt)
	}
	if in.Brake {
		p.Throttle = clamp01(p.Throttle - t.ThrottleRate*dt)
	}

	p.updateRotation(in, dt)

	// Forces: thrust along body-forward, lift from throttle and nose-up
	// attitude, gravity, and a velocity-squared drag term.
	fwd := p.Forward()
	accel := fwd.Scale(p.Throttle * t.ThrustPower)
	lift := p.Throttle * (t.LiftPower + math.Max(0, -p.Pose.Pitch)*t.PitchLiftFactor)
	accel.Y += lift - t.Gravity
	speed := p.Vel.Len()
	accel = accel.Sub(p.Vel.Scale(speed * t.DragCoef))

	p.Vel = p.Vel.Add(accel.Scale(dt)).ClampLen(t.PlayerMaxSpeed)
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))

	// Ground contact: kill vertical velocity and bleed horizontal speed.
	if p.Pos.Y <= t.GroundY && p.Vel.Y <= 0 {
		p.Pos.Y = t.GroundY
		p.Vel.Y = 0
		p.Grounded = true
		friction := math.Max(0, 1-t.GroundFriction*dt)
		p.Vel.X *= friction
		p.Vel.Z *= friction
	} else {
		p.Grounded = false
	}

	if p.cooldown > 0 {
		p.cooldown -= dt
	}
	if in.Shoot {
		p.Shoot(events)
	}
	p.updateBullets(dt)
}

// updateRotation advances pitch, roll, and yaw from the held control flags.
// Roll and yaw are coupled: banking turns the plane, but only above a
// minimum forward speed so a parked plane cannot pirouette.
func (p *Player) updateRotation(in Input, dt float64) {
	t := p.tun

	switch {
	case in.Up:
		p.Pose.Pitch = approach(p.Pose.Pitch, -t.MaxPitch, t.PitchRate*dt)
	case in.Down:
		p.Pose.Pitch = approach(p.Pose.Pitch, t.MaxPitch, t.PitchRate*dt)
	default:
		p.Pose.Pitch -= p.Pose.Pitch * math.Min(1, t.PitchDecay*dt)
	}

	switch {
	case in.Left:
		p.Pose.Roll = approach(p.Pose.Roll, t.MaxRoll, t.RollRate*dt)
	case in.Right:
		p.Pose.Roll = approach(p.Pose.Roll, -t.MaxRoll, t.RollRate*dt)
	default:
		// Auto-level when no roll input is held.
		p.Pose.Roll -= p.Pose.Roll * math.Min(1, t.PitchDecay*dt)
	}

	if p.Vel.HorizLen() > t.MinTurnSpeed {
		p.Pose.Yaw = wrapAngle(p.Pose.Yaw - p.Pose.Roll*t.YawCoupling*dt)
	}
}

// Shoot fires one bullet from the nose if the cooldown has elapsed.
// Calling during cooldown is a no-op.
func (p *Player) Shoot(events *EventQueue) {
	if p.cooldown > 0 {
		return
	}
	t := p.tun
	fwd := p.Forward()
	b := &Bullet{
		Pos: p.Pos.Add(fwd.Scale(3)), // nose offset
		Vel: fwd.Scale(t.BulletSpeed),
	}
	p.bullets = append(p.bullets, b)
	// Oldest-first eviction keeps the pool bounded.
	if len(p.bullets) > t.BulletCap {
		p.bullets = p.bullets[len(p.bullets)-t.BulletCap:]
	}
	p.cooldown = t.FireCooldown
	if events != nil {
		events.Emit(EventShoot, p.Pos)
	}
}

// updateBullets integrates the pool and compacts away dead bullets.
func (p *Player) updateBullets(dt float64) {
	for _, b := range p.bullets {
		b.update(dt, p.tun)
	}
	p.compactBullets()
}

func (p *Player) compactBullets() {
	kept := p.bullets[:0]
	for _, b := range p.bullets {
		if b != nil && !b.dead {
			kept = append(kept, b)
		}
	}
	p.bullets = kept
}

// Bullets exposes the live pool to the driver's collision pass.
func (p *Player) Bullets() []*Bullet {
	return p.bullets
}
