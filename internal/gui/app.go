package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/ballpit/internal/sim"
	"github.com/san-kum/ballpit/internal/world"
)

const (
	hudFontSize = 18
	hudX        = 12
	hudY        = 12
	hudLineGap  = 4
)

type App struct {
	Loop     *sim.Loop
	Panel    *Panel
	Renderer *Renderer
	Running  bool
	ShowHUD  bool
	Stats    world.FrameStats
}

// initWindow opens a resizable window sized to the world viewport.
func initWindow(b world.Bounds, fps int) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(b.Width), int32(b.Height), "ballpit")
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(rl.KeyQ)
}

// NewApp draws every frame of l with the app's Renderer. It makes no raylib
// calls, so it is safe before the window exists.
func NewApp(l *sim.Loop, scene world.Scene) *App {
	r := NewRenderer()
	sim.WithRenderer(r)(l)
	return &App{
		Loop:     l,
		Panel:    NewPanel(scene),
		Renderer: r,
		Running:  true,
		ShowHUD:  true,
	}
}

// Run opens the window and blocks until it is closed.
func Run(l *sim.Loop, scene world.Scene, fps int) error {
	initWindow(l.World().Bounds(), fps)
	defer rl.CloseWindow()

	app := NewApp(l, scene)
	app.Loop.Configure(app.Panel.Apply())
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	if rl.IsWindowResized() {
		w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
		_ = a.Loop.Resize(float64(w), float64(h)) // minimised windows report 0x0
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyR) {
		a.Loop.Configure(a.Panel.Apply())
	}
	if rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyH) {
		a.Panel.TiltLeft()
	}
	if rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyL) {
		a.Panel.TiltRight()
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) || rl.IsKeyPressed(rl.KeyUp) {
		a.Panel.More()
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) || rl.IsKeyPressed(rl.KeyDown) {
		a.Panel.Fewer()
	}
	if rl.IsKeyPressed(rl.KeyC) {
		a.Panel.NextColor()
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		a.ShowHUD = !a.ShowHUD
	}
}

// Draw renders one frame. While paused the world is redrawn from a snapshot
// without stepping.
func (a *App) Draw() {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	if a.Running {
		a.Stats = a.Loop.Step()
	} else {
		a.drawSnapshot(a.Loop.World().Snapshot())
	}

	if a.ShowHUD {
		a.drawHUD()
	}
}

func (a *App) drawSnapshot(snap world.Snapshot) {
	r := a.Renderer
	r.Clear()
	r.StrokeRect(0, 0, snap.Bounds.Width, snap.Bounds.Height)
	if snap.Ground != nil {
		r.StrokeLine(snap.Ground.A, snap.Ground.B)
	}
	for _, b := range snap.Bodies {
		r.FillCircle(b.Pos, b.Radius, b.Color)
	}
}

// hudRowY is the top of HUD row i, counted from the top margin.
func hudRowY(i int) int32 {
	return hudY + int32(i)*(hudFontSize+hudLineGap)
}

func (a *App) drawHUD() {
	p := a.Panel
	row := 0
	line := func(text string, col rl.Color) {
		rl.DrawText(text, hudX, hudRowY(row), hudFontSize, col)
		row++
	}

	status := "RUNNING"
	if !a.Running {
		status = "PAUSED"
	}
	line(fmt.Sprintf("%s  frame %d  fps %d", status, a.Stats.Frame, rl.GetFPS()), ColText)
	line(fmt.Sprintf("bodies %d  collisions %d", a.Stats.Bodies, a.Stats.Collisions), ColText)

	col := ColText
	if p.Dirty() {
		col = ColPending
	}
	line(fmt.Sprintf("count %d  angle %.0f  colour %s", p.Pending.Count, p.Pending.AngleDeg, p.Pending.Color), col)
	rl.DrawCircle(hudX+6, hudRowY(row)+8, 6, ParseColor(p.Pending.Color))
	row++
	line("SPACE pause  ENTER respawn  <- -> angle  +/- count  C colour  TAB hud  Q quit", ColWall)
}
