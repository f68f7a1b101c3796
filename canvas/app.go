package canvas

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/phanxgames/vectorgrid"
)

const (
	defaultTitle         = "Grid Coordinate System"
	defaultScreenshotDir = "screenshots"
)

// RunConfig configures an App. Zero fields take the defaults noted on each.
type RunConfig struct {
	Title         string  // window title; default "Grid Coordinate System"
	Width, Height int     // canvas size in pixels; default 880x880
	Spacing       float64 // grid cell size in pixels; default 40

	// Origin is where the resultant is drawn from. Nil means the canvas
	// center.
	Origin *vectorgrid.Vec2

	ShowFPS       bool
	StickyGrab    bool    // see vectorgrid.ControllerConfig.StickyGrab
	DragDeadZone  float64 // pixels; default 0
	ScreenshotDir string  // default "screenshots"

	// Script, when set, drives the session from a JSON test script.
	Script *TestRunner
	// ExitOnScriptDone ends the game loop once Script has finished.
	ExitOnScriptDone bool

	// Debug logs per-frame draw stats at debug level.
	Debug bool

	Logger    *zap.Logger
	EventSink vectorgrid.EventSink
}

func (cfg *RunConfig) applyDefaults() {
	if cfg.Title == "" {
		cfg.Title = defaultTitle
	}
	if cfg.Width <= 0 {
		cfg.Width = vectorgrid.DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = vectorgrid.DefaultHeight
	}
	if cfg.Spacing <= 0 {
		cfg.Spacing = vectorgrid.DefaultSpacing
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = defaultScreenshotDir
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
}

// App is the playground as an ebiten.Game: grid overlay, vectors, resultant,
// delete button and cursor readout, driven by the mouse or a test script.
type App struct {
	cfg RunConfig
	log *zap.Logger

	grid      vectorgrid.Grid
	gridLines []vectorgrid.GridLine
	surface   *Surface
	button    *DeleteButton
	ctrl      *vectorgrid.Controller
	pointer   *Pointer
	cursor    cursorReadout
	runner    *TestRunner

	buttonArmed     bool // current gesture started on the delete button
	screenshotQueue []string
	frame           uint64
}

// NewApp builds an App without opening a window.
func NewApp(cfg RunConfig) (*App, error) {
	cfg.applyDefaults()

	surface, err := NewSurface()
	if err != nil {
		return nil, err
	}
	grid := vectorgrid.Grid{Width: float64(cfg.Width), Height: float64(cfg.Height), Spacing: cfg.Spacing}
	button := NewDeleteButton()

	a := &App{
		cfg:       cfg,
		log:       cfg.Logger.Named("canvas"),
		grid:      grid,
		gridLines: grid.Lines(),
		surface:   surface,
		button:    button,
		cursor:    cursorReadout{grid: grid},
		runner:    cfg.Script,
	}
	a.ctrl = vectorgrid.NewController(surface, button, vectorgrid.ControllerConfig{
		Grid:       grid,
		Origin:     cfg.Origin,
		StickyGrab: cfg.StickyGrab,
		Logger:     cfg.Logger,
		EventSink:  cfg.EventSink,
	})
	a.pointer = NewPointer(a)
	a.pointer.SetDragDeadZone(cfg.DragDeadZone)
	a.pointer.OnHover = a.cursor.move
	return a, nil
}

// Controller returns the interaction controller.
func (a *App) Controller() *vectorgrid.Controller {
	return a.ctrl
}

// Surface returns the drawing surface.
func (a *App) Surface() *Surface {
	return a.surface
}

// DeleteButton returns the delete control.
func (a *App) DeleteButton() *DeleteButton {
	return a.button
}

// SetTestRunner attaches a script; it is stepped before input each frame.
func (a *App) SetTestRunner(r *TestRunner) {
	a.runner = r
}

// OnPress implements PointerHandler. A press on the visible delete button arms
// it and is not forwarded to the controller.
func (a *App) OnPress(x, y float64) {
	if a.button.Contains(x, y) {
		a.buttonArmed = true
		return
	}
	a.ctrl.OnPress(x, y)
}

// OnDrag implements PointerHandler.
func (a *App) OnDrag(x, y float64) {
	a.cursor.move(x, y)
	if a.buttonArmed {
		return
	}
	a.ctrl.OnDrag(x, y)
}

// OnRelease implements PointerHandler. Releasing an armed button over the
// button deletes the selected vector.
func (a *App) OnRelease(x, y float64) {
	if a.buttonArmed {
		a.buttonArmed = false
		if a.button.Contains(x, y) {
			a.Delete()
		}
		return
	}
	a.ctrl.OnRelease(x, y)
}

// Delete deletes the selected vector, if any.
func (a *App) Delete() {
	a.ctrl.OnDelete()
}

// InjectPress queues a synthetic press. See Pointer.InjectPress.
func (a *App) InjectPress(x, y float64) { a.pointer.InjectPress(x, y) }

// InjectMove queues a synthetic move. See Pointer.InjectMove.
func (a *App) InjectMove(x, y float64) { a.pointer.InjectMove(x, y) }

// InjectRelease queues a synthetic release. See Pointer.InjectRelease.
func (a *App) InjectRelease(x, y float64) { a.pointer.InjectRelease(x, y) }

// InjectClick queues a synthetic click. See Pointer.InjectClick.
func (a *App) InjectClick(x, y float64) { a.pointer.InjectClick(x, y) }

// InjectDrag queues a synthetic drag. See Pointer.InjectDrag.
func (a *App) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	a.pointer.InjectDrag(fromX, fromY, toX, toY, frames)
}

// Pending returns the number of queued synthetic pointer events.
func (a *App) Pending() int { return a.pointer.Pending() }

// Update implements ebiten.Game.
func (a *App) Update() error {
	a.frame++
	dt := float32(1.0 / float64(ebiten.TPS()))

	if a.runner != nil {
		a.runner.step(a)
	}
	a.pointer.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyDelete) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		a.Delete()
	}
	a.button.Update(dt)

	if a.runner != nil && a.runner.Done() && a.cfg.ExitOnScriptDone && len(a.screenshotQueue) == 0 {
		a.log.Info("script finished", zap.Uint64("frames", a.frame), zap.Int("vectors", a.ctrl.Store().Len()))
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if a.cfg.Debug {
		t0 = time.Now()
	}

	screen.Fill(vectorgrid.ColorWhite)
	drawGrid(screen, a.gridLines)
	a.surface.Draw(screen)
	a.button.Draw(screen, a.surface.Face(buttonLabelSize))
	a.cursor.draw(screen, a.surface.Face(cursorLabelSize))
	if a.cfg.ShowFPS {
		drawFPS(screen)
	}

	if a.cfg.Debug {
		a.log.Debug("frame",
			zap.Uint64("frame", a.frame),
			zap.Duration("draw", time.Since(t0)),
			zap.Int("items", a.surface.Len()),
			zap.Stringer("state", a.ctrl.State()),
		)
	}

	a.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The canvas keeps its configured size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Width, a.cfg.Height
}

// Run opens a window and runs the playground until it is closed or, with
// ExitOnScriptDone, until the script finishes.
func Run(cfg RunConfig) error {
	app, err := NewApp(cfg)
	if err != nil {
		return err
	}
	ebiten.SetWindowTitle(app.cfg.Title)
	ebiten.SetWindowSize(app.cfg.Width, app.cfg.Height)

	app.log.Info("starting",
		zap.Int("width", app.cfg.Width),
		zap.Int("height", app.cfg.Height),
		zap.Float64("spacing", app.cfg.Spacing),
	)
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("canvas: run: %w", err)
	}
	return nil
}
