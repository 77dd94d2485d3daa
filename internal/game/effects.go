package game

// EffectKind selects the render style for a transient effect.
type EffectKind int

const (
	EffectExplosion EffectKind = iota
	EffectHitFlash
)

// Effect is a self-contained, time-bounded visual. Tick returns false when
// the effect is finished; gameplay state never depends on effects.
type Effect struct {
	Kind EffectKind
	Pos  Vec3
	Age  float64

	// Tick advances the effect and reports whether it is still alive.
	Tick func(e *Effect, dt float64) bool
}

const (
	explosionDuration = 1.2
	hitFlashDuration  = 0.3
)

// NewExplosion is the enemy-destruction / fatal-crash burst.
func NewExplosion(pos Vec3) *Effect {
	return &Effect{
		Kind: EffectExplosion,
		Pos:  pos,
		Tick: func(e *Effect, dt float64) bool {
			e.Age += dt
			return e.Age < explosionDuration
		},
	}
}

// NewHitFlash is the small flash where a bullet connects.
func NewHitFlash(pos Vec3) *Effect {
	return &Effect{
		Kind: EffectHitFlash,
		Pos:  pos,
		Tick: func(e *Effect, dt float64) bool {
			e.Age += dt
			return e.Age < hitFlashDuration
		},
	}
}

// EffectManager owns the active effect set: capped, oldest evicted first.
// Effects keep updating while the game is paused or over so in-flight
// explosions finish animating.
type EffectManager struct {
	effects []*Effect
	cap     int
}

func NewEffectManager(cap int) *EffectManager {
	return &EffectManager{cap: cap}
}

// Add appends an effect, evicting the oldest when over cap.
func (em *EffectManager) Add(e *Effect) {
	em.effects = append(em.effects, e)
	if len(em.effects) > em.cap {
		em.effects = em.effects[len(em.effects)-em.cap:]
	}
}

// Update ticks every effect and drops the ones that report done. A nil or
// malformed effect is dropped rather than failing the tick.
func (em *EffectManager) Update(dt float64) {
	kept := em.effects[:0]
	for _, e := range em.effects {
		if e == nil || e.Tick == nil {
			continue
		}
		if e.Tick(e, dt) {
			kept = append(kept, e)
		}
	}
	// Clear trailing slots so finished effects can be collected.
	for i := len(kept); i < len(em.effects); i++ {
		em.effects[i] = nil
	}
	em.effects = kept
}

// Active returns the live effects for rendering.
func (em *EffectManager) Active() []*Effect {
	return em.effects
}

// Count returns the number of live effects.
func (em *EffectManager) Count() int {
	return len(em.effects)
}
