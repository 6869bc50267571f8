package gui

import (
	"fmt"
	"log/slog"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/warp/internal/config"
	"github.com/san-kum/warp/internal/gpu"
	"github.com/san-kum/warp/internal/input"
	"github.com/san-kum/warp/internal/scene"
)

var (
	ColBg      = rl.Black
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
)

func init() {
	// GL calls must come from the thread that created the context.
	runtime.LockOSThread()
}

// Keymap binds scene actions to raylib key codes.
type Keymap struct {
	Forward, Back, Left, Right int32
	Boost, Exit, Info          int32
}

var DefaultKeymap = Keymap{
	Forward: rl.KeyW,
	Back:    rl.KeyS,
	Left:    rl.KeyA,
	Right:   rl.KeyD,
	Boost:   rl.KeyLeftShift,
	Exit:    rl.KeyEscape,
	Info:    rl.KeyI,
}

type App struct {
	Scene   *scene.Scene
	Keys    Keymap
	ShowHUD bool

	log *slog.Logger
}

// initWindow opens the window and makes its OpenGL context current. Escape is
// handled by the scene, so raylib's exit key is disabled.
func initWindow(w config.WindowConfig) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(w.Width), int32(w.Height), w.Title)
	rl.SetTargetFPS(int32(w.FPS))
	rl.SetExitKey(0)
	rl.DisableCursor()
}

// NewApp loads OpenGL on the current context and builds the scene.
func NewApp(cfg config.Config, log *slog.Logger) (*App, error) {
	dev, err := gpu.InitGL()
	if err != nil {
		return nil, err
	}
	log.Debug("device ready", "version", dev.Version)

	s, err := scene.New(cfg, dev, log)
	if err != nil {
		return nil, err
	}
	return &App{
		Scene:   s,
		Keys:    DefaultKeymap,
		ShowHUD: true,
		log:     log,
	}, nil
}

// Run opens a window for cfg and blocks until it is closed or Escape is
// pressed.
func Run(cfg config.Config, log *slog.Logger) error {
	if !rl.IsWindowReady() {
		initWindow(cfg.Window)
		defer rl.CloseWindow()
	}
	if !rl.IsWindowReady() {
		return fmt.Errorf("failed to create window")
	}

	app, err := NewApp(cfg, log)
	if err != nil {
		return err
	}
	defer app.Scene.Close()

	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			a.Scene.Resize(int(rl.GetScreenWidth()), int(rl.GetScreenHeight()))
		}
		if rl.IsKeyPressed(rl.KeyH) {
			a.ShowHUD = !a.ShowHUD
		}

		rl.BeginDrawing()
		rl.ClearBackground(ColBg)
		running := a.Scene.Frame(a.Poll())
		if running && a.ShowHUD {
			a.DrawHUD()
		}
		rl.EndDrawing()

		if !running {
			a.log.Debug("exit requested")
			return
		}
	}
}

// Poll samples the keyboard and cursor for one frame.
func (a *App) Poll() input.Frame {
	mouse := rl.GetMousePosition()
	return input.Frame{
		Forward:   rl.IsKeyDown(a.Keys.Forward),
		Back:      rl.IsKeyDown(a.Keys.Back),
		Left:      rl.IsKeyDown(a.Keys.Left),
		Right:     rl.IsKeyDown(a.Keys.Right),
		Boost:     rl.IsKeyDown(a.Keys.Boost),
		Exit:      rl.IsKeyDown(a.Keys.Exit),
		Info:      rl.IsKeyDown(a.Keys.Info),
		CursorX:   float64(mouse.X),
		CursorY:   float64(mouse.Y),
		HasCursor: rl.IsWindowFocused(),
	}
}

func (a *App) DrawHUD() {
	sim := a.Scene.Simulator()
	pos := sim.BodyPos()
	cam := a.Scene.Camera()

	rl.DrawText(fmt.Sprintf("body (%.2f, %.2f, %.2f)  angle %.3f", pos.X, pos.Y, pos.Z, sim.Orbit().Angle), 10, 10, 16, ColText)
	rl.DrawText(fmt.Sprintf("camera (%.2f, %.2f, %.2f)  yaw %.1f  pitch %.1f",
		cam.Position.X, cam.Position.Y, cam.Position.Z, cam.Yaw, cam.Pitch), 10, 30, 16, ColText)

	h := int32(rl.GetScreenHeight())
	rl.DrawText("[WASD] MOVE  [SHIFT] FAST  [I] INFO  [H] HUD  [ESC] QUIT", 10, h-24, 14, ColTextDim)
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), int32(rl.GetScreenWidth())-70, h-24, 14, ColTextDim)
}
