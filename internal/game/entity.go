package game

import "math"

// Pose is an orientation as pitch/yaw/roll. Nose-up is negative pitch;
// yaw is measured around +Y with 0 facing +Z; roll is about the body axis.
type Pose struct {
	Pitch, Yaw, Roll float64
}

// Body is the shared kinematic state every simulated entity carries.
// Controllers mutate it once per tick; rendering reads it afterwards.
// Integration code performs no i/o; side effects go through EventQueue.
type Body struct {
	Pos  Vec3
	Vel  Vec3
	Pose Pose
}

// Forward is the body-forward unit vector derived from yaw then pitch.
func (b *Body) Forward() Vec3 {
	return forwardVector(b.Pose.Yaw, b.Pose.Pitch)
}

// Speed is the magnitude of the velocity.
func (b *Body) Speed() float64 {
	return b.Vel.Len()
}

// DistFromCenter is the horizontal distance from the world origin, which is
// what every boundary rule measures against.
func (b *Body) DistFromCenter() float64 {
	return math.Sqrt(b.Pos.X*b.Pos.X + b.Pos.Z*b.Pos.Z)
}

// headingTo returns the yaw that points from the body toward target.
func headingTo(from, to Vec3) float64 {
	return math.Atan2(to.X-from.X, to.Z-from.Z)
}
