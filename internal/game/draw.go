package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// The view is a top-down map: world X/Z to screen X/Y, camera centred on
// the player. Altitude shows through marker size and the HUD readout.

func (g *Game) worldToScreen(x, z float64) (float32, float32) {
	sx := screenWidth/2 + (x-g.camX)*g.camZoom
	sy := screenHeight/2 - (z-g.camZ)*g.camZoom
	return float32(sx), float32(sy)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkslategray)

	g.drawTerrain(screen)
	g.drawBoundary(screen)
	g.drawBirds(screen)
	g.drawEnemies(screen)
	g.drawBullets(screen)
	g.drawPlayer(screen)
	g.drawEffects(screen)
	g.drawRadar(screen)
	g.drawHUD(screen)
}

func (g *Game) drawTerrain(screen *ebiten.Image) {
	t := g.world.Terrain
	zoom := float32(g.camZoom)

	for _, l := range t.Lakes {
		x, y := g.worldToScreen(l.X, l.Z)
		vector.FillCircle(screen, x, y, float32(l.Radius)*zoom, colornames.Steelblue, true)
	}
	// Runway.
	x0, y0 := g.worldToScreen(t.Runway.X0, t.Runway.Z1)
	x1, y1 := g.worldToScreen(t.Runway.X1, t.Runway.Z0)
	vector.FillRect(screen, x0, y0, x1-x0, y1-y0, colornames.Dimgray, false)

	for _, m := range t.Mountains {
		x, y := g.worldToScreen(m.X, m.Z)
		// Brighter peaks for taller mountains.
		shade := uint8(90 + clamp(m.Height/120, 0, 1)*100)
		c := color.RGBA{R: shade, G: shade - 20, B: shade - 40, A: 255}
		vector.FillCircle(screen, x, y, float32(m.Radius)*zoom, c, true)
		vector.FillCircle(screen, x, y, float32(m.Radius)*zoom*0.3, colornames.Whitesmoke, true)
	}
	for _, tr := range t.Trees {
		x, y := g.worldToScreen(tr.X, tr.Z)
		vector.FillCircle(screen, x, y, 2*zoom, colornames.Forestgreen, false)
	}
}

func (g *Game) drawBoundary(screen *ebiten.Image) {
	t := g.world.Tun
	cx, cy := g.worldToScreen(0, 0)
	zoom := float32(g.camZoom)
	vector.StrokeCircle(screen, cx, cy, float32(t.WorldRadius)*zoom, 2, colornames.White, true)
	warnCol := colornames.Gray
	if g.world.Boundary.State != BoundaryInside {
		warnCol = colornames.Orange
	}
	vector.StrokeCircle(screen, cx, cy, float32(t.WarningRadius)*zoom, 1, warnCol, true)
}

// drawPlane renders a heading triangle used for both player and enemies.
func (g *Game) drawPlane(screen *ebiten.Image, pos Vec3, yaw float64, size float32, c color.RGBA) {
	x, y := g.worldToScreen(pos.X, pos.Z)
	// Screen-space heading: world yaw 0 faces +Z which is screen-up.
	nose := float64(size)
	ax := x + float32(math.Sin(yaw)*nose)
	ay := y - float32(math.Cos(yaw)*nose)
	lx := x + float32(math.Sin(yaw+2.5)*nose*0.7)
	ly := y - float32(math.Cos(yaw+2.5)*nose*0.7)
	rx := x + float32(math.Sin(yaw-2.5)*nose*0.7)
	ry := y - float32(math.Cos(yaw-2.5)*nose*0.7)
	vector.StrokeLine(screen, ax, ay, lx, ly, 2, c, true)
	vector.StrokeLine(screen, lx, ly, rx, ry, 2, c, true)
	vector.StrokeLine(screen, rx, ry, ax, ay, 2, c, true)
}

func (g *Game) drawPlayer(screen *ebiten.Image) {
	p := g.world.Player
	size := float32(6+p.Pos.Y*0.05) * float32(g.camZoom)
	g.drawPlane(screen, p.Pos, p.Pose.Yaw, size, colornames.Gold)
}

func (g *Game) drawEnemies(screen *ebiten.Image) {
	for _, e := range g.world.Enemies {
		c := colornames.Orangered
		if e.FlashTimer > 0 {
			c = colornames.White // hit flash
		}
		size := float32(5+e.Pos.Y*0.05) * float32(g.camZoom)
		g.drawPlane(screen, e.Pos, e.Pose.Yaw, size, c)
	}
}

func (g *Game) drawBullets(screen *ebiten.Image) {
	for _, b := range g.world.Player.Bullets() {
		x, y := g.worldToScreen(b.Pos.X, b.Pos.Z)
		vector.FillCircle(screen, x, y, 1.5*float32(g.camZoom), colornames.Lightyellow, false)
	}
}

var birdPalette = [4]color.RGBA{
	colornames.Skyblue,
	colornames.Lightpink,
	colornames.Palegreen,
	colornames.Khaki,
}

func (g *Game) drawBirds(screen *ebiten.Image) {
	for _, b := range g.world.Birds {
		x, y := g.worldToScreen(b.Pos.X, b.Pos.Z)
		// Flap phase modulates the marker so the flock shimmers.
		r := float32(2+b.Flap) * float32(g.camZoom)
		if r < 1 {
			r = 1
		}
		vector.FillCircle(screen, x, y, r, birdPalette[b.Color%len(birdPalette)], false)
	}
}

func (g *Game) drawEffects(screen *ebiten.Image) {
	for _, e := range g.world.Effects.Active() {
		x, y := g.worldToScreen(e.Pos.X, e.Pos.Z)
		switch e.Kind {
		case EffectExplosion:
			progress := clamp01(e.Age / explosionDuration)
			radius := float32(4+progress*26) * float32(g.camZoom)
			a := uint8((1 - progress) * 220)
			vector.StrokeCircle(screen, x, y, radius, 3,
				color.RGBA{R: 255, G: 160, B: 40, A: a}, true)
		case EffectHitFlash:
			progress := clamp01(e.Age / hitFlashDuration)
			a := uint8((1 - progress) * 255)
			vector.FillCircle(screen, x, y, 4*float32(g.camZoom),
				color.RGBA{R: 255, G: 255, B: 200, A: a}, false)
		}
	}
}

const (
	radarMargin = 20
	radarRim    = 4
)

// drawRadar renders the projected blip list in the bottom-right corner.
// Up on the dial is always the player's forward direction.
func (g *Game) drawRadar(screen *ebiten.Image) {
	t := g.world.Tun
	r := float32(t.RadarPixels)
	cx := float32(screenWidth) - r - radarMargin
	cy := float32(screenHeight) - r - radarMargin

	vector.FillCircle(screen, cx, cy, r+radarRim, colornames.Black, true)
	vector.StrokeCircle(screen, cx, cy, r, 1, colornames.Limegreen, true)
	vector.StrokeCircle(screen, cx, cy, r/2, 1, color.RGBA{R: 50, G: 205, B: 50, A: 90}, true)

	for _, pt := range g.world.Radar.Points {
		vector.FillCircle(screen, cx+float32(pt.X), cy-float32(pt.Y), 2, colornames.Red, false)
	}
	// Fixed player-centre marker.
	vector.FillCircle(screen, cx, cy, 2.5, colornames.Gold, false)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, g.hudStatus(), 8, 8)

	if g.world.Boundary.State != BoundaryInside {
		ebitenutil.DebugPrintAt(screen, "!! TURN BACK !!", screenWidth/2-50, 40)
	}
	if g.showHelp {
		ebitenutil.DebugPrintAt(screen,
			"W/S throttle  arrows pitch  A/D bank  SPACE fire\nP pause  M sound  +/- zoom  F1 copy report  H hide",
			8, screenHeight-40)
	}

	switch g.world.Phase {
	case PhaseGameOver:
		g.drawCenterText(screen, fmt.Sprintf("GAME OVER: %s\nrescued %d birds - R to restart",
			g.world.Reason, g.world.Rescued))
	case PhaseVictory:
		msg := fmt.Sprintf("VICTORY: %s\nrescued %d birds - R to restart",
			g.world.Reason, g.world.Rescued)
		if g.newRecord {
			msg += "\nNEW RECORD"
		}
		g.drawCenterText(screen, msg)
	default:
		if g.world.Paused {
			g.drawCenterText(screen, "PAUSED")
		}
	}
}

func (g *Game) drawCenterText(screen *ebiten.Image, msg string) {
	ebitenutil.DebugPrintAt(screen, msg, screenWidth/2-120, screenHeight/2-20)
}
