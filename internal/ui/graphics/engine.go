package graphics

import (
	"image"
	_ "image/png"
	"log"
	"os"

	"snake/internal/app"
	"snake/internal/session"
	"snake/internal/ui/graphics/input"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

// Engine runs the session inside an ebiten window. Each ebiten tick is
// one simulation tick; the TPS follows the session's tick rate.
type Engine struct {
	app *app.App

	width    int
	height   int
	cellSize int

	keyboard     *input.KeyboardHandler
	pending      []session.Input
	currentPhase session.Phase
	screenMap    map[session.Phase]types.Screen
}

func NewEngine(application *app.App) *Engine {
	types.InitFonts()

	game := application.Config().Game
	return &Engine{
		app:          application,
		width:        int(game.WindowWidth),
		height:       int(game.WindowHeight),
		cellSize:     int(game.CellSize),
		keyboard:     input.NewKeyboardHandler(),
		currentPhase: application.Phase(),
		screenMap:    make(map[session.Phase]types.Screen),
	}
}

func (e *Engine) RegisterScreens(start, game, gameOver types.Screen) {
	e.screenMap[session.PhaseStart] = start
	e.screenMap[session.PhasePlaying] = game
	e.screenMap[session.PhaseGameOver] = gameOver
}

func (e *Engine) Run() error {
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle(e.app.Config().Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(e.app.TickRate())

	if icon, err := loadIcon(e.AssetPath(app.AssetIcon)); err != nil {
		log.Printf("Engine: no window icon: %v", err)
	} else {
		ebiten.SetWindowIcon([]image.Image{icon})
	}

	return ebiten.RunGame(e)
}

func (e *Engine) Update() error {
	if ebiten.IsWindowBeingClosed() {
		e.app.Stop()
		return ebiten.Termination
	}

	e.pending = append(e.pending, e.keyboard.Update()...)
	if screen := e.screenMap[e.currentPhase]; screen != nil {
		if in := screen.Update(); in != session.InputNone {
			e.pending = append(e.pending, in)
		}
	}

	if !e.app.Update(e) {
		return ebiten.Termination
	}

	e.setPhase(e.app.Phase())
	ebiten.SetTPS(e.app.TickRate())
	return nil
}

func (e *Engine) Draw(screen *ebiten.Image) {
	e.app.Render(&canvas{dst: screen, screens: e.screenMap})
}

func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.width, e.height
}

// Drain hands the inputs collected this tick to the session.
func (e *Engine) Drain() []session.Input {
	inputs := e.pending
	e.pending = nil
	return inputs
}

func (e *Engine) Size() (int, int) {
	return e.width, e.height
}

func (e *Engine) CellSize() int {
	return e.cellSize
}

func (e *Engine) AssetPath(name string) string {
	return e.app.Config().Asset(name)
}

func (e *Engine) setPhase(phase session.Phase) {
	if e.currentPhase == phase {
		return
	}
	if s := e.screenMap[e.currentPhase]; s != nil {
		s.OnExit()
	}
	e.currentPhase = phase
	if s := e.screenMap[e.currentPhase]; s != nil {
		s.OnEnter()
	}
}

// canvas adapts one ebiten frame to session.Renderer.
type canvas struct {
	dst     *ebiten.Image
	screens map[session.Phase]types.Screen
}

func (c *canvas) DrawStart(highScore int32) {
	if d, ok := c.screens[session.PhaseStart].(types.StartDrawer); ok {
		d.DrawStart(c.dst, highScore)
	}
}

func (c *canvas) DrawFrame(frame session.Frame) {
	if d, ok := c.screens[session.PhasePlaying].(types.FrameDrawer); ok {
		d.DrawFrame(c.dst, frame)
	}
}

func (c *canvas) DrawGameOver(score, highScore int32) {
	if d, ok := c.screens[session.PhaseGameOver].(types.GameOverDrawer); ok {
		d.DrawGameOver(c.dst, score, highScore)
	}
}

func loadIcon(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}
