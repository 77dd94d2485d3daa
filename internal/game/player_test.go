package game

import (
	"math"
	"testing"
)

func TestPlayer_ThrottleStaysBounded(t *testing.T) {
	tun := DefaultTuning()
	p := NewPlayer(&tun)
	dt := 1.0 / 60.0

	inputs := []Input{
		{Throttle: true},
		{Brake: true},
		{Throttle: true, Brake: true},
		{},
	}
	for i := 0; i < 1200; i++ {
		p.Update(inputs[(i/30)%len(inputs)], dt, nil)
		if p.Throttle < 0 || p.Throttle > 1 {
			t.Fatalf("throttle out of bounds at tick %d: %.4f", i, p.Throttle)
		}
	}
}

func TestPlayer_SpeedNeverExceedsMax(t *testing.T) {
	tun := DefaultTuning()
	p := NewPlayer(&tun)
	p.Pos.Y = 80 // airborne so ground friction never bleeds speed
	dt := 1.0 / 60.0

	for i := 0; i < 3000; i++ {
		p.Update(Input{Throttle: true, Down: true}, dt, nil)
		if s := p.Speed(); s > tun.PlayerMaxSpeed+1e-9 {
			t.Fatalf("speed %.3f exceeds max %.1f at tick %d", s, tun.PlayerMaxSpeed, i)
		}
	}
}

func TestPlayer_ShootRespectsCooldown(t *testing.T) {
	tun := DefaultTuning()
	p := NewPlayer(&tun)
	var q EventQueue

	p.Shoot(&q)
	p.Shoot(&q) // still cooling down, must be a no-op
	if got := len(p.Bullets()); got != 1 {
		t.Fatalf("expected 1 bullet after rapid double shot, got %d", got)
	}

	// Let the cooldown elapse, then fire again.
	p.Update(Input{}, tun.FireCooldown+0.05, &q)
	p.Shoot(&q)
	if got := len(p.Bullets()); got != 2 {
		t.Fatalf("expected 2 bullets after cooldown elapsed, got %d", got)
	}
	if got := len(q.Pending()); got != 2 {
		t.Errorf("expected 2 shoot events, got %d", got)
	}
}

func TestPlayer_BulletCapEvictsOldest(t *testing.T) {
	tun := DefaultTuning()
	p := NewPlayer(&tun)

	p.Shoot(nil)
	first := p.Bullets()[0]
	for i := 0; i < tun.BulletCap+10; i++ {
		p.cooldown = 0
		p.Shoot(nil)
	}

	if got := len(p.Bullets()); got != tun.BulletCap {
		t.Fatalf("pool size %d, want cap %d", got, tun.BulletCap)
	}
	for _, b := range p.Bullets() {
		if b == first {
			t.Fatal("oldest bullet should have been evicted")
		}
	}
}

func TestPlayer_BankingTurnsOnlyAboveMinSpeed(t *testing.T) {
	tun := DefaultTuning()
	dt := 1.0 / 60.0

	// Parked: full roll input must not change heading.
	p := NewPlayer(&tun)
	for i := 0; i < 120; i++ {
		p.Update(Input{Left: true}, dt, nil)
	}
	if p.Pose.Yaw != 0 {
		t.Errorf("parked plane changed heading: yaw=%.4f", p.Pose.Yaw)
	}

	// Moving: the same input turns the plane.
	p = NewPlayer(&tun)
	p.Pos.Y = 80
	p.Vel = Vec3{Z: 40}
	for i := 0; i < 120; i++ {
		p.Update(Input{Throttle: true, Left: true}, dt, nil)
	}
	if p.Pose.Yaw == 0 {
		t.Error("banked plane at speed never turned")
	}
}

func TestPlayer_AutoLevelsWithoutInput(t *testing.T) {
	tun := DefaultTuning()
	p := NewPlayer(&tun)
	p.Pos.Y = 80
	p.Pose.Pitch = -0.6
	p.Pose.Roll = 0.8
	dt := 1.0 / 60.0

	for i := 0; i < 300; i++ {
		p.Update(Input{}, dt, nil)
	}
	if math.Abs(p.Pose.Pitch) > 0.01 {
		t.Errorf("pitch did not decay to level: %.4f", p.Pose.Pitch)
	}
	if math.Abs(p.Pose.Roll) > 0.01 {
		t.Errorf("roll did not decay to level: %.4f", p.Pose.Roll)
	}
}

func TestBullet_ExpiresAtLifetime(t *testing.T) {
	tun := DefaultTuning()
	b := &Bullet{Pos: Vec3{Y: 50}, Vel: Vec3{Z: tun.BulletSpeed}}
	dt := 1.0 / 60.0

	for i := 0; i < 174; i++ { // 2.9s, inside the lifetime
		b.update(dt, &tun)
	}
	if b.Dead() {
		t.Fatalf("bullet died early at age %.2f", b.Age)
	}
	for i := 0; i < 10; i++ { // past 3.0s
		b.update(dt, &tun)
	}
	if !b.Dead() {
		t.Fatalf("bullet still alive at age %.2f", b.Age)
	}
}

func TestBullet_ExpiresBeyondWorldRadius(t *testing.T) {
	tun := DefaultTuning()
	b := &Bullet{Pos: Vec3{X: tun.WorldRadius - 30, Y: 50}, Vel: Vec3{X: tun.BulletSpeed}}
	dt := 1.0 / 60.0

	for i := 0; i < 60 && !b.Dead(); i++ {
		b.update(dt, &tun)
	}
	if !b.Dead() {
		t.Fatal("bullet should expire after crossing the world radius")
	}
	if b.Age >= tun.BulletLifetime {
		t.Errorf("bullet expired by age %.2f, not by distance", b.Age)
	}
}

func TestBullet_KillIsIdempotent(t *testing.T) {
	tun := DefaultTuning()
	b := &Bullet{Pos: Vec3{Y: 50}, Vel: Vec3{Z: 80}}
	b.Kill()
	b.Kill()
	if !b.Dead() {
		t.Fatal("killed bullet reports alive")
	}
	pos := b.Pos
	b.update(1.0/60.0, &tun)
	if b.Pos != pos {
		t.Error("dead bullet kept moving")
	}
}
