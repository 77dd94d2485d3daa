package game

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultTuning_IsValid(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Fatalf("default ruleset invalid: %v", err)
	}
}

func TestLoadTuning_MissingFileUsesDefaults(t *testing.T) {
	tun, err := LoadTuning(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if !reflect.DeepEqual(tun, DefaultTuning()) {
		t.Error("missing file should yield the default ruleset")
	}
}

func TestLoadTuning_OverridesApplyOnTopOfDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	doc := "worldRadius: 2000\npushRadius: 1800\nwarningRadius: 1500\nbulletDamage: 50\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	tun, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if tun.WorldRadius != 2000 || tun.PushRadius != 1800 || tun.WarningRadius != 1500 {
		t.Errorf("boundary overrides not applied: %v/%v/%v",
			tun.WarningRadius, tun.PushRadius, tun.WorldRadius)
	}
	if tun.BulletDamage != 50 {
		t.Errorf("bulletDamage = %d, want 50", tun.BulletDamage)
	}
	if tun.HitRadius != DefaultTuning().HitRadius {
		t.Error("untouched fields should keep their defaults")
	}
}

func TestLoadTuning_RejectsBrokenRuleset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	// warning ring beyond the push ring breaks the boundary ordering
	if err := os.WriteFile(path, []byte("warningRadius: 1100\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tun, err := LoadTuning(path)
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if !reflect.DeepEqual(tun, DefaultTuning()) {
		t.Error("a rejected file should fall back to the defaults")
	}
}

func TestTuning_ValidateCatchesBadRanges(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Tuning)
	}{
		{"warning beyond push", func(tn *Tuning) { tn.WarningRadius = tn.PushRadius + 1 }},
		{"push beyond world", func(tn *Tuning) { tn.PushRadius = tn.WorldRadius + 1 }},
		{"inverted altitude band", func(tn *Tuning) { tn.MinAltitude = tn.MaxAltitude }},
		{"inverted release range", func(tn *Tuning) { tn.ReleaseMin = tn.ReleaseMax + 1 }},
		{"zero max step", func(tn *Tuning) { tn.MaxStep = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tun := DefaultTuning()
			tc.mutate(&tun)
			if err := tun.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}
