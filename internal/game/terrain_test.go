package game

import (
	"math"
	"math/rand"
	"testing"
)

func TestMountain_HeightFallsOffLinearly(t *testing.T) {
	m := Mountain{X: 0, Z: 0, Radius: 100, Height: 50}

	if h := m.HeightAt(0, 0); h != 50 {
		t.Errorf("apex height %.1f, want 50", h)
	}
	if h := m.HeightAt(50, 0); math.Abs(h-25) > 1e-9 {
		t.Errorf("mid-slope height %.1f, want 25", h)
	}
	if h := m.HeightAt(100, 0); h != 0 {
		t.Errorf("edge height %.1f, want 0", h)
	}
	if h := m.HeightAt(500, 500); h != 0 {
		t.Errorf("far height %.1f, want 0", h)
	}
}

func TestTerrain_MountainCollision(t *testing.T) {
	tun := DefaultTuning()
	tr := &Terrain{
		Mountains: []Mountain{{X: 0, Z: 0, Radius: 100, Height: 50}},
		Runway:    Runway{X0: 200, Z0: 200, X1: 260, Z1: 320},
	}

	if !tr.Collides(Vec3{X: 20, Y: 30, Z: 0}, tun.GroundY) {
		t.Error("flight below the mountain surface should collide")
	}
	if tr.Collides(Vec3{X: 20, Y: 48, Z: 0}, tun.GroundY) {
		t.Error("flight above the mountain surface should be safe")
	}
}

func TestTerrain_TreeCollision(t *testing.T) {
	tun := DefaultTuning()
	tr := &Terrain{
		Trees:  []Tree{{X: 50, Z: 50}},
		Runway: Runway{X0: 200, Z0: 200, X1: 260, Z1: 320},
	}

	if !tr.Collides(Vec3{X: 50.5, Y: 5, Z: 50}, tun.GroundY) {
		t.Error("flying through a tree trunk should collide")
	}
	if tr.Collides(Vec3{X: 50.5, Y: treeHeight + 1, Z: 50}, tun.GroundY) {
		t.Error("flying over a tree should be safe")
	}
	if tr.Collides(Vec3{X: 55, Y: 5, Z: 50}, tun.GroundY) {
		t.Error("passing beside a tree should be safe")
	}
}

func TestTerrain_GroundContactSafeOnlyOnRunway(t *testing.T) {
	tun := DefaultTuning()
	tr := &Terrain{Runway: Runway{X0: -15, Z0: -60, X1: 15, Z1: 60}}

	if tr.Collides(Vec3{X: 0, Y: tun.GroundY, Z: -40}, tun.GroundY) {
		t.Error("runway ground contact should be safe")
	}
	if !tr.Collides(Vec3{X: 300, Y: tun.GroundY, Z: 300}, tun.GroundY) {
		t.Error("off-runway ground contact should be fatal")
	}
	if tr.Collides(Vec3{X: 300, Y: 30, Z: 300}, tun.GroundY) {
		t.Error("level flight over open ground should be safe")
	}
}

func TestGenerateTerrain_KeepsRunwayApproachClear(t *testing.T) {
	tun := DefaultTuning()
	rng := rand.New(rand.NewSource(9)) // #nosec G404 -- deterministic test
	tr := GenerateTerrain(rng, &tun)

	check := func(kind string, x, z float64) {
		if d := math.Sqrt(x*x + z*z); d < 150 {
			t.Errorf("%s at (%.0f, %.0f) inside the runway clear zone (d=%.0f)", kind, x, z, d)
		}
	}
	for _, m := range tr.Mountains {
		check("mountain", m.X, m.Z)
	}
	for _, tree := range tr.Trees {
		check("tree", tree.X, tree.Z)
	}
	for _, l := range tr.Lakes {
		check("lake", l.X, l.Z)
	}
}

func TestGenerateTerrain_DeterministicPerSeed(t *testing.T) {
	tun := DefaultTuning()
	a := GenerateTerrain(rand.New(rand.NewSource(4)), &tun) // #nosec G404 -- deterministic test
	b := GenerateTerrain(rand.New(rand.NewSource(4)), &tun) // #nosec G404 -- deterministic test

	if len(a.Mountains) != len(b.Mountains) || len(a.Trees) != len(b.Trees) {
		t.Fatal("same seed produced different terrain shapes")
	}
	if len(a.Mountains) > 0 && a.Mountains[0] != b.Mountains[0] {
		t.Error("same seed produced a different first mountain")
	}
}
