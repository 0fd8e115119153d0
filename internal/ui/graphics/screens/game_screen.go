package screens

import (
	"snake/internal/app"
	"snake/internal/session"
	"snake/internal/ui/graphics/components"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

type GameScreen struct {
	ctx types.ScreenContext

	fieldRenderer *components.FieldRenderer
	hud           *components.HUD
	sprites       *components.Sprites
}

func NewGameScreen(ctx types.ScreenContext) *GameScreen {
	return &GameScreen{
		ctx:           ctx,
		fieldRenderer: components.NewFieldRenderer(ctx.CellSize()),
		hud:           components.NewHUD(),
	}
}

// Update has nothing to do: steering comes from the keyboard handler.
func (s *GameScreen) Update() session.Input {
	return session.InputNone
}

func (s *GameScreen) DrawFrame(screen *ebiten.Image, frame session.Frame) {
	if s.sprites == nil {
		s.sprites = components.LoadSprites(
			s.ctx.AssetPath(app.AssetFood),
			s.ctx.AssetPath(app.AssetBonus),
			s.ctx.AssetPath(app.AssetHazard),
			s.ctx.CellSize(),
		)
	}

	screen.Fill(types.ColorBackground)

	w, h := s.ctx.Size()
	s.fieldRenderer.CalculateLayout(w, h, frame.Field)
	s.fieldRenderer.DrawField(screen, frame.Field)

	s.fieldRenderer.DrawSnake(screen, frame.Snake)
	s.fieldRenderer.DrawItem(screen, s.sprites.Food, frame.Food)
	if frame.Bonus != nil {
		s.fieldRenderer.DrawItem(screen, s.sprites.Bonus, *frame.Bonus)
	}
	if frame.Hazard != nil {
		s.fieldRenderer.DrawItem(screen, s.sprites.Hazard, *frame.Hazard)
	}

	s.hud.Draw(screen, w, frame.Score, frame.HighScore)
}

func (s *GameScreen) OnEnter() {}

func (s *GameScreen) OnExit() {}
