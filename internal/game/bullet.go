package game

// Bullet is a player-owned projectile. Lifetime is tracked as accumulated
// age rather than a wall-clock timestamp so headless runs stay deterministic.
type Bullet struct {
	Pos  Vec3
	Vel  Vec3
	Age  float64
	dead bool
}

// Kill marks the bullet for removal. Killing twice is a no-op.
func (b *Bullet) Kill() {
	b.dead = true
}

// Dead reports whether the bullet has been removed from play.
func (b *Bullet) Dead() bool {
	return b.dead
}

// update advances the bullet and expires it on age or world-radius limits.
func (b *Bullet) update(dt float64, tun *Tuning) {
	if b.dead {
		return
	}
	b.Age += dt
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	if b.Age >= tun.BulletLifetime {
		b.dead = true
		return
	}
	if b.Pos.LenSq() > tun.WorldRadius*tun.WorldRadius {
		b.dead = true
	}
}
