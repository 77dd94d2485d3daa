package game

import "math"

// Vec3 is a world-space vector. Y is up; X/Z span the ground plane.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// LenSq avoids the sqrt for distance comparisons.
func (v Vec3) LenSq() float64 { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

// HorizLen is the length of the ground-plane projection.
func (v Vec3) HorizLen() float64 { return math.Sqrt(v.X*v.X + v.Z*v.Z) }

// Norm returns the unit vector, or the zero vector if v is (near) zero.
func (v Vec3) Norm() Vec3 {
	l := v.Len()
	if l < 1e-9 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// ClampLen limits the vector's length to max, preserving direction.
func (v Vec3) ClampLen(max float64) Vec3 {
	l := v.Len()
	if l <= max || l < 1e-9 {
		return v
	}
	return v.Scale(max / l)
}

// wrapAngle normalises an angle to (-π, π].
func wrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// approach moves cur toward target by at most step, never overshooting.
func approach(cur, target, step float64) float64 {
	if cur < target {
		cur += step
		if cur > target {
			cur = target
		}
	} else if cur > target {
		cur -= step
		if cur < target {
			cur = target
		}
	}
	return cur
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 { return clamp(v, 0, 1) }

// forwardVector composes yaw then pitch on the unit +Z axis.
// Nose-up is negative pitch, so a negative pitch raises the Y component.
func forwardVector(yaw, pitch float64) Vec3 {
	cp := math.Cos(pitch)
	return Vec3{
		X: math.Sin(yaw) * cp,
		Y: -math.Sin(pitch),
		Z: math.Cos(yaw) * cp,
	}
}
