package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning bundles every gameplay constant so headless runs and the front end
// share one ruleset. Values load from an optional YAML override file; the
// zero-config path uses DefaultTuning.
type Tuning struct {
	// World geometry.
	WorldRadius    float64 `yaml:"worldRadius"`    // hard boundary
	WarningRadius  float64 `yaml:"warningRadius"`  // boundary warning ring
	PushRadius     float64 `yaml:"pushRadius"`     // soft push-back ring
	HardRingFrac   float64 `yaml:"hardRingFrac"`   // fraction of world radius where clamping starts
	SafetyNetFrac  float64 `yaml:"safetyNetFrac"`  // teleport threshold, > 1
	SafetyHomeFrac float64 `yaml:"safetyHomeFrac"` // teleport destination fraction

	// Player flight model.
	ThrustPower     float64 `yaml:"thrustPower"`
	LiftPower       float64 `yaml:"liftPower"`       // vertical accel at full throttle, level
	PitchLiftFactor float64 `yaml:"pitchLiftFactor"` // extra lift per radian of nose-up
	Gravity         float64 `yaml:"gravity"`
	DragCoef        float64 `yaml:"dragCoef"` // velocity-squared drag
	PlayerMaxSpeed  float64 `yaml:"playerMaxSpeed"`
	ThrottleRate    float64 `yaml:"throttleRate"` // throttle units per second
	GroundY         float64 `yaml:"groundY"`      // ground contact height
	GroundFriction  float64 `yaml:"groundFriction"`
	MaxPitch        float64 `yaml:"maxPitch"` // radians of stick deflection
	PitchRate       float64 `yaml:"pitchRate"`
	PitchDecay      float64 `yaml:"pitchDecay"` // exponential return-to-level rate
	MaxRoll         float64 `yaml:"maxRoll"`
	RollRate        float64 `yaml:"rollRate"`
	YawCoupling     float64 `yaml:"yawCoupling"` // yaw per second at full roll
	MinTurnSpeed    float64 `yaml:"minTurnSpeed"`

	// Bullets. Canonical ruleset: speed 80, damage 25, hit radius 8.
	BulletSpeed    float64 `yaml:"bulletSpeed"`
	BulletLifetime float64 `yaml:"bulletLifetime"`
	BulletDamage   int     `yaml:"bulletDamage"`
	BulletCap      int     `yaml:"bulletCap"`
	FireCooldown   float64 `yaml:"fireCooldown"`
	HitRadius      float64 `yaml:"hitRadius"`

	// Enemies.
	EnemyTarget     int     `yaml:"enemyTarget"` // maintained population
	EnemyHealth     int     `yaml:"enemyHealth"`
	EnemyBaseSpeed  float64 `yaml:"enemyBaseSpeed"`
	EnemyMaxSpeed   float64 `yaml:"enemyMaxSpeed"`
	EnemyTurnRate   float64 `yaml:"enemyTurnRate"`
	EnemySpeedInert float64 `yaml:"enemySpeedInert"` // speed units/s toward target speed
	MinAltitude     float64 `yaml:"minAltitude"`
	MaxAltitude     float64 `yaml:"maxAltitude"`
	FlashDuration   float64 `yaml:"flashDuration"` // hit flash seconds

	// Birds.
	BirdLifetime   float64 `yaml:"birdLifetime"`
	BirdDespawn    float64 `yaml:"birdDespawn"` // distance from player
	BirdMaxHoriz   float64 `yaml:"birdMaxHoriz"`
	BirdPopCap     int     `yaml:"birdPopCap"`
	RescueVictory  int     `yaml:"rescueVictory"`
	ReleaseMin     int     `yaml:"releaseMin"`
	ReleaseMax     int     `yaml:"releaseMax"`

	// Effects and radar.
	EffectCap     int     `yaml:"effectCap"`
	RadarRange    float64 `yaml:"radarRange"`
	RadarPixels   float64 `yaml:"radarPixels"`
	RadarInterval float64 `yaml:"radarInterval"`

	// Driver.
	MaxStep float64 `yaml:"maxStep"` // dt clamp per tick
}

// DefaultTuning is the canonical ruleset (the non-backup variant constants).
func DefaultTuning() Tuning {
	return Tuning{
		WorldRadius:    1200,
		WarningRadius:  900,
		PushRadius:     1050,
		HardRingFrac:   0.98,
		SafetyNetFrac:  1.10,
		SafetyHomeFrac: 0.80,

		ThrustPower:     40,
		LiftPower:       26,
		PitchLiftFactor: 30,
		Gravity:         20,
		DragCoef:        0.003,
		PlayerMaxSpeed:  80,
		ThrottleRate:    0.8,
		GroundY:         2,
		GroundFriction:  2.5,
		MaxPitch:        0.8,
		PitchRate:       1.6,
		PitchDecay:      2.0,
		MaxRoll:         1.0,
		RollRate:        2.2,
		YawCoupling:     1.1,
		MinTurnSpeed:    8,

		BulletSpeed:    80,
		BulletLifetime: 3,
		BulletDamage:   25,
		BulletCap:      30,
		FireCooldown:   0.2,
		HitRadius:      8,

		EnemyTarget:     6,
		EnemyHealth:     100,
		EnemyBaseSpeed:  30,
		EnemyMaxSpeed:   55,
		EnemyTurnRate:   1.4,
		EnemySpeedInert: 12,
		MinAltitude:     10,
		MaxAltitude:     150,
		FlashDuration:   0.12,

		BirdLifetime:  15,
		BirdDespawn:   400,
		BirdMaxHoriz:  12,
		BirdPopCap:    40,
		RescueVictory: 100,
		ReleaseMin:    2,
		ReleaseMax:    4,

		EffectCap:     30,
		RadarRange:    400,
		RadarPixels:   60,
		RadarInterval: 0.1,

		MaxStep: 0.1,
	}
}

// LoadTuning reads a YAML override file on top of the defaults. A missing
// file is not an error; the defaults are the shipped ruleset.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return t, fmt.Errorf("read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse tuning file %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return DefaultTuning(), fmt.Errorf("tuning file %s: %w", path, err)
	}
	return t, nil
}

// Validate rejects rulesets that break the boundary ordering or would let
// entities escape their envelopes.
func (t Tuning) Validate() error {
	if !(t.WarningRadius < t.PushRadius && t.PushRadius < t.WorldRadius) {
		return fmt.Errorf("boundary radii must satisfy warning < push < world (got %v < %v < %v)",
			t.WarningRadius, t.PushRadius, t.WorldRadius)
	}
	if t.MinAltitude >= t.MaxAltitude {
		return fmt.Errorf("minAltitude %v must be below maxAltitude %v", t.MinAltitude, t.MaxAltitude)
	}
	if t.ReleaseMin > t.ReleaseMax || t.ReleaseMin < 0 {
		return fmt.Errorf("release range [%d,%d] invalid", t.ReleaseMin, t.ReleaseMax)
	}
	if t.MaxStep <= 0 {
		return fmt.Errorf("maxStep must be positive")
	}
	return nil
}
