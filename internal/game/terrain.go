package game

import (
	"math"
	"math/rand"
)

const (
	treeRadius = 1.5
	treeHeight = 8.0
	// groundSlack keeps the fatal-ground check aligned with the flight
	// model's ground clamp, which parks the plane exactly at ground height.
	groundSlack = 0.1
)

// Mountain is a cone: height falls off linearly from apex to base edge.
type Mountain struct {
	X, Z   float64
	Radius float64
	Height float64
}

// HeightAt returns the terrain height of the cone at a ground point, zero
// outside the base.
func (m Mountain) HeightAt(x, z float64) float64 {
	dx := x - m.X
	dz := z - m.Z
	r := math.Sqrt(dx*dx + dz*dz)
	if r >= m.Radius {
		return 0
	}
	return m.Height * (1 - r/m.Radius)
}

// Tree is a fixed-size collision cylinder.
type Tree struct {
	X, Z float64
}

// Lake is decorative only; it takes part in generation, not collision.
type Lake struct {
	X, Z, Radius float64
}

// Runway is the axis-aligned strip where ground contact is safe.
type Runway struct {
	X0, Z0, X1, Z1 float64
}

// Contains reports whether a ground point lies on the runway.
func (r Runway) Contains(x, z float64) bool {
	return x >= r.X0 && x <= r.X1 && z >= r.Z0 && z <= r.Z1
}

// Terrain is the static obstacle set scattered inside the world disc.
type Terrain struct {
	Mountains []Mountain
	Trees     []Tree
	Lakes     []Lake
	Runway    Runway
}

// GenerateTerrain scatters mountains, trees, and lakes across the world
// disc, keeping a clear zone around the runway. Deterministic per seed.
func GenerateTerrain(rng *rand.Rand, tun *Tuning) *Terrain {
	t := &Terrain{
		Runway: Runway{X0: -15, Z0: -60, X1: 15, Z1: 60},
	}
	clear := 150.0 // obstacle-free radius around the runway

	place := func() (float64, float64, bool) {
		a := rng.Float64() * 2 * math.Pi
		// sqrt for uniform density over the disc
		r := math.Sqrt(rng.Float64()) * tun.WorldRadius * 0.95
		x := math.Sin(a) * r
		z := math.Cos(a) * r
		if math.Sqrt(x*x+z*z) < clear {
			return 0, 0, false
		}
		return x, z, true
	}

	for i := 0; i < 14; i++ {
		x, z, ok := place()
		if !ok {
			continue
		}
		t.Mountains = append(t.Mountains, Mountain{
			X: x, Z: z,
			Radius: 40 + rng.Float64()*80,
			Height: 30 + rng.Float64()*90,
		})
	}
	for i := 0; i < 120; i++ {
		x, z, ok := place()
		if !ok {
			continue
		}
		t.Trees = append(t.Trees, Tree{X: x, Z: z})
	}
	for i := 0; i < 8; i++ {
		x, z, ok := place()
		if !ok {
			continue
		}
		t.Lakes = append(t.Lakes, Lake{X: x, Z: z, Radius: 30 + rng.Float64()*50})
	}
	return t
}

// Collides reports a fatal terrain intersection for the player: inside a
// mountain cone below its surface, inside a tree below its crown, or ground
// contact anywhere off the runway. groundY is the flight model's ground
// height; touching down is only safe on the runway.
func (t *Terrain) Collides(pos Vec3, groundY float64) bool {
	for _, m := range t.Mountains {
		if h := m.HeightAt(pos.X, pos.Z); h > 0 && pos.Y < h {
			return true
		}
	}
	for _, tr := range t.Trees {
		dx := pos.X - tr.X
		dz := pos.Z - tr.Z
		if dx*dx+dz*dz < treeRadius*treeRadius && pos.Y < treeHeight {
			return true
		}
	}
	if pos.Y <= groundY+groundSlack && !t.Runway.Contains(pos.X, pos.Z) {
		return true
	}
	return false
}
