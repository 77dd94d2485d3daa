package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	screenWidth  = 1280
	screenHeight = 800
	frameStep    = 1.0 / 60.0
)

// Game is the ebiten shell around the simulation: input snapshotting,
// camera follow, event-to-audio dispatch, and overlay/restart handling.
// Everything gameplay-relevant lives in World.
type Game struct {
	world *World
	audio *AudioBank
	save  *SaveManager

	prevKeys  map[ebiten.Key]bool
	camX      float64
	camZ      float64
	camZoom   float64
	showHelp  bool
	newRecord bool
	runSaved  bool
}

// New loads tuning and saves, builds a fresh world, and initialises audio.
// Audio failure is non-fatal: the game runs silent.
func New() (*Game, error) {
	tun, err := LoadTuning("tuning.yaml")
	if err != nil {
		return nil, err
	}
	save := NewSaveManager()
	g := &Game{
		world:    NewWorld(time.Now().UnixNano(), tun),
		save:     save,
		prevKeys: map[ebiten.Key]bool{},
		camZoom:  2.0,
		showHelp: true,
	}
	if ab, err := NewAudioBank(save.SoundEnabled()); err == nil {
		g.audio = ab
	}
	return g, nil
}

// Update advances one frame: one fixed sim step plus edge-triggered keys.
func (g *Game) Update() error {
	in := g.handleInput()
	g.world.Advance(frameStep, in)

	for _, ev := range g.world.Events.Drain() {
		if g.audio != nil {
			g.audio.Play(ev)
		}
		if ev.Kind == EventGameOver || ev.Kind == EventVictory {
			g.finishRun()
		}
	}

	// Camera tracks the player.
	g.camX = g.world.Player.Pos.X
	g.camZ = g.world.Player.Pos.Z
	return nil
}

// finishRun records the score once per run.
func (g *Game) finishRun() {
	if g.runSaved {
		return
	}
	g.runSaved = true
	g.newRecord = g.save.RecordRun(g.world.Rescued)
	_ = g.save.Flush()
}

// handleInput reads the control snapshot and the edge-triggered meta keys.
func (g *Game) handleInput() Input {
	in := Input{
		Throttle: ebiten.IsKeyPressed(ebiten.KeyW),
		Brake:    ebiten.IsKeyPressed(ebiten.KeyS),
		Left:     ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:    ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:       ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:     ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Shoot:    ebiten.IsKeyPressed(ebiten.KeySpace),
	}

	if g.keyJustPressed(ebiten.KeyP) {
		g.world.Paused = !g.world.Paused
	}
	if g.keyJustPressed(ebiten.KeyH) {
		g.showHelp = !g.showHelp
	}
	if g.keyJustPressed(ebiten.KeyM) && g.audio != nil {
		on := !g.save.SoundEnabled()
		g.save.SetSoundEnabled(on)
		g.audio.SetEnabled(on)
		_ = g.save.Flush()
	}
	if g.keyJustPressed(ebiten.KeyR) && g.world.Phase != PhasePlaying {
		// Restart is a hard reset of all world state.
		g.world.Restart(time.Now().UnixNano())
		g.runSaved = false
		g.newRecord = false
	}
	if g.keyJustPressed(ebiten.KeyF1) {
		g.copyDebugReport()
	}

	// Zoom: =/- keys.
	if g.keyJustPressed(ebiten.KeyEqual) {
		g.camZoom *= 1.25
	}
	if g.keyJustPressed(ebiten.KeyMinus) {
		g.camZoom /= 1.25
	}
	if g.camZoom < 0.5 {
		g.camZoom = 0.5
	}
	if g.camZoom > 6 {
		g.camZoom = 6
	}
	return in
}

// keyJustPressed is the edge detector for meta keys.
func (g *Game) keyJustPressed(k ebiten.Key) bool {
	now := ebiten.IsKeyPressed(k)
	was := g.prevKeys[k]
	g.prevKeys[k] = now
	return now && !was
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// hudStatus is the one-line flight readout.
func (g *Game) hudStatus() string {
	p := g.world.Player
	return fmt.Sprintf("THR %3.0f%%  SPD %4.1f  ALT %5.1f  RESCUED %d/%d  BEST %d",
		p.Throttle*100, p.Speed(), p.Pos.Y,
		g.world.Rescued, g.world.Tun.RescueVictory, g.save.BestRescued())
}
