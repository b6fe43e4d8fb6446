package main

import (
	"fmt"
	"log"
	"math"
	"math/rand/v2"

	"flow-sketcher/internal/field"
	"flow-sketcher/internal/physics"
	"flow-sketcher/internal/vec"

	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ============================================================================
// CONFIGURATION - Adjust these values to customize the sketch
// ============================================================================

// Input field image path (falls back to a generated swirl field)
const InputFieldPath = "assets/field.png"

// Render window dimensions
const (
	WindowWidth  = 1200
	WindowHeight = 800
)

// Simulation settings
const (
	NumParticles    = 200
	FieldResolution = 20   // Pixels per field cell
	WanderChance    = 0.02 // Chance per tick that a particle wanders instead
	TrailSample     = 2    // Record a trail point every N ticks
	TrailLength     = 60   // Max points per trail
	ViewScaleMargin = 0.95 // Margin for fitting the field in the window (0.95 = 5% padding)
)

// Colors
var (
	ColorBackground = color.RGBA{15, 15, 20, 255}
	ColorFieldArrow = color.RGBA{50, 155, 50, 40}
	ColorParticle   = color.RGBA{255, 80, 80, 255}
	ColorTrail      = color.RGBA{255, 255, 0, 90}
)

// ============================================================================

type Game struct {
	Field     *field.FlowField
	Particles []*physics.Particle
	Trails    [][]vec.Vector
	ShowField bool
	SlowMode  bool

	Ticks int

	// Rendering Scale
	ViewScale   float32
	ViewOffsetX float32
	ViewOffsetY float32
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.ShowField = !g.ShowField
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.SlowMode = !g.SlowMode
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.spawnParticles()
	}

	g.Ticks++
	if g.SlowMode && g.Ticks%4 != 0 {
		return nil
	}

	w, h := g.Field.Width(), g.Field.Height()
	for i, p := range g.Particles {
		if rand.Float64() < WanderChance {
			p.ApplyForce(p.Wander())
		} else {
			flow := g.Field.Lookup(p.Position)
			p.ApplyForce(p.Steer(flow.Scale(p.MaxSpeed)))
		}
		p.Update()

		if p.Wrap(w, h) {
			// Cut the trail so it doesn't streak across the screen.
			g.Trails[i] = g.Trails[i][:0]
		}
		if g.Ticks%TrailSample == 0 {
			g.Trails[i] = append(g.Trails[i], p.Position)
			if len(g.Trails[i]) > TrailLength {
				g.Trails[i] = g.Trails[i][1:]
			}
		}
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)

	// Helper to transform world coordinates to screen coordinates
	toScreen := func(x, y float64) (float32, float32) {
		return float32(x)*g.ViewScale + g.ViewOffsetX, float32(y)*g.ViewScale + g.ViewOffsetY
	}

	// Draw Field Arrows (Debug)
	if g.ShowField {
		arm := float64(g.Field.Resolution) * 0.4
		for cx := 0; cx < g.Field.Cols; cx++ {
			for cy := 0; cy < g.Field.Rows; cy++ {
				dir := g.Field.At(cx, cy)
				centerX := float64(cx*g.Field.Resolution) + float64(g.Field.Resolution)/2
				centerY := float64(cy*g.Field.Resolution) + float64(g.Field.Resolution)/2
				p1x, p1y := toScreen(centerX-dir.X*arm, centerY-dir.Y*arm)
				p2x, p2y := toScreen(centerX+dir.X*arm, centerY+dir.Y*arm)
				vector.StrokeLine(screen, p1x, p1y, p2x, p2y, 1, ColorFieldArrow, true)
			}
		}
	}

	// Draw Trails
	for _, trail := range g.Trails {
		for j := 0; j+1 < len(trail); j++ {
			p1x, p1y := toScreen(trail[j].X, trail[j].Y)
			p2x, p2y := toScreen(trail[j+1].X, trail[j+1].Y)
			vector.StrokeLine(screen, p1x, p1y, p2x, p2y, 1, ColorTrail, true)
		}
	}

	// Draw Particles as heading-aligned triangles
	for _, p := range g.Particles {
		heading := p.Heading()
		cosH := math.Cos(heading)
		sinH := math.Sin(heading)

		// Local triangle: nose forward, two tail corners
		local := [3][2]float64{
			{6, 0},
			{-4, 3.5},
			{-4, -3.5},
		}

		var path vector.Path
		for i, pt := range local {
			wx := p.Position.X + pt[0]*cosH - pt[1]*sinH
			wy := p.Position.Y + pt[0]*sinH + pt[1]*cosH
			sx, sy := toScreen(wx, wy)

			if i == 0 {
				path.MoveTo(sx, sy)
			} else {
				path.LineTo(sx, sy)
			}
		}
		path.Close()

		var cs ebiten.ColorScale
		cs.ScaleWithColor(ColorParticle)
		vector.FillPath(screen, &path, nil, &vector.DrawPathOptions{
			AntiAlias:  true,
			ColorScale: cs,
		})
	}

	// HUD
	vector.FillRect(screen, 0, 0, 150, 120, color.RGBA{0, 0, 0, 180}, true)

	msg := "FLOW SKETCHER\n"
	msg += "----------------\n"
	msg += fmt.Sprintf("Particles: %d\n", len(g.Particles))
	if g.SlowMode {
		msg += "[Slow motion]\n"
	}
	msg += "\nControls:\nF = Toggle Field\nR = Respawn\nS = Slow Mode"
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return WindowWidth, WindowHeight
}

func (g *Game) spawnParticles() {
	g.Particles = make([]*physics.Particle, NumParticles)
	g.Trails = make([][]vec.Vector, NumParticles)
	for i := range g.Particles {
		p := physics.NewParticle(
			rand.Float64()*g.Field.Width(),
			rand.Float64()*g.Field.Height(),
		)
		// Random initial drift so the first frames aren't a still grid.
		p.Velocity = vec.Random2D()
		p.Velocity.Rotate(rand.Float64() * 2 * math.Pi)
		g.Particles[i] = p
		g.Trails[i] = []vec.Vector{}
	}
}

// swirlField is the fallback when no field image is present: a gentle
// spiral around the center.
func swirlField(cols, rows, resolution int) *field.FlowField {
	return field.Generate(cols, rows, resolution, func(cx, cy int) float64 {
		dx := float64(cx) - float64(cols)/2
		dy := float64(cy) - float64(rows)/2
		return math.Atan2(dy, dx) + math.Pi/2 + 0.4
	})
}

func main() {
	f, err := field.LoadFromImage(InputFieldPath, FieldResolution)
	if err != nil {
		log.Printf("falling back to generated field: %v", err)
		f = swirlField(WindowWidth/FieldResolution, WindowHeight/FieldResolution, FieldResolution)
	}

	ebiten.SetWindowSize(WindowWidth, WindowHeight)
	ebiten.SetWindowTitle("Flow Sketcher")

	// 1. Calculate Scale to fit
	winW, winH := float64(WindowWidth), float64(WindowHeight)
	scaleW := winW / f.Width()
	scaleH := winH / f.Height()

	viewScale := float32(scaleW)
	if scaleH < scaleW {
		viewScale = float32(scaleH)
	}
	viewScale *= ViewScaleMargin

	// 2. Center the field
	viewOffsetX := (float32(winW) - float32(f.Width())*viewScale) / 2
	viewOffsetY := (float32(winH) - float32(f.Height())*viewScale) / 2

	game := &Game{
		Field:       f,
		ShowField:   true,
		ViewScale:   viewScale,
		ViewOffsetX: viewOffsetX,
		ViewOffsetY: viewOffsetY,
	}
	game.spawnParticles()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
