package session

import (
	"fmt"
	"log"
	"time"

	"snake/internal/domain"
)

type Config struct {
	Game  *domain.GameConfig
	Store HighScoreStore
	Audio AudioPlayer

	// Spawner defaults to a time-seeded random spawner.
	Spawner domain.Spawner
}

// StateMachine drives Start -> Playing -> GameOver -> Playing. It is not
// safe for concurrent use; the caller owns it from a single goroutine.
type StateMachine struct {
	phase     Phase
	state     *domain.GameState
	highScore int32
	pending   domain.Direction
	last      *domain.TickResult

	gameConfig *domain.GameConfig
	store      HighScoreStore
	audio      AudioPlayer
	spawner    domain.Spawner
}

func NewStateMachine(cfg Config) (*StateMachine, error) {
	if cfg.Game == nil {
		cfg.Game = domain.DefaultGameConfig()
	}
	if err := cfg.Game.Validate(); err != nil {
		return nil, err
	}
	if cfg.Store == nil {
		return nil, fmt.Errorf("state machine: nil high score store")
	}
	if cfg.Audio == nil {
		cfg.Audio = SilentAudio
	}
	if cfg.Spawner == nil {
		cfg.Spawner = domain.NewRandomSpawner(time.Now().UnixNano())
	}

	return &StateMachine{
		phase:      PhaseStart,
		highScore:  cfg.Store.Load(),
		gameConfig: cfg.Game.Copy(),
		store:      cfg.Store,
		audio:      cfg.Audio,
		spawner:    cfg.Spawner,
	}, nil
}

func (sm *StateMachine) Phase() Phase {
	return sm.phase
}

func (sm *StateMachine) HighScore() int32 {
	return sm.highScore
}

// Score is the score of the current or just finished play.
func (sm *StateMachine) Score() int32 {
	if sm.state == nil {
		return 0
	}
	return sm.state.Score
}

// State returns a snapshot of the current play, or nil before the first.
func (sm *StateMachine) State() *domain.GameState {
	if sm.state == nil {
		return nil
	}
	return sm.state.Copy()
}

// LastResult is the outcome of the most recent Step.
func (sm *StateMachine) LastResult() *domain.TickResult {
	return sm.last
}

func (sm *StateMachine) TickRate() int {
	return sm.gameConfig.TickRate(sm.Score())
}

// Handle applies one input. Directional input is buffered until the next
// Step; the latest one that does not reverse the heading wins.
func (sm *StateMachine) Handle(in Input) {
	switch in {
	case InputQuit:
		sm.Quit()

	case InputConfirm:
		if sm.phase == PhaseStart || sm.phase == PhaseGameOver {
			sm.startPlay()
		}

	default:
		dir, ok := in.Direction()
		if !ok || sm.phase != PhasePlaying {
			return
		}
		if dir.IsOpposite(sm.state.Snake.HeadDirection) {
			return
		}
		sm.pending = dir
	}
}

// Step runs one tick of play. It returns nil outside PhasePlaying.
func (sm *StateMachine) Step() *domain.TickResult {
	if sm.phase != PhasePlaying {
		return nil
	}

	result := sm.state.Tick(sm.pending)
	sm.pending = 0
	sm.last = result

	if result.Terminal {
		sm.finishPlay(result)
		return result
	}
	if result.Ate {
		sm.audio.Play(SoundEat)
	}
	return result
}

// Quit saves the high score and enters PhaseQuit. Calling it again does
// nothing.
func (sm *StateMachine) Quit() {
	if sm.phase == PhaseQuit {
		return
	}
	sm.highScore = max(sm.highScore, sm.Score())
	sm.saveHighScore()
	sm.phase = PhaseQuit
	log.Printf("StateMachine: quit, high score %d", sm.highScore)
}

func (sm *StateMachine) Render(r Renderer) {
	switch sm.phase {
	case PhaseStart:
		r.DrawStart(sm.highScore)
	case PhasePlaying:
		r.DrawFrame(sm.frame())
	case PhaseGameOver:
		r.DrawGameOver(sm.Score(), sm.highScore)
	}
}

func (sm *StateMachine) frame() Frame {
	gs := sm.state
	snake := make([]domain.Coord, gs.Snake.Len())
	copy(snake, gs.Snake.Points)

	var bonus, hazard *domain.Coord
	if gs.Bonus != nil {
		b := *gs.Bonus
		bonus = &b
	}
	if gs.Hazard != nil {
		h := *gs.Hazard
		hazard = &h
	}

	return Frame{
		Field:     *gs.Field,
		Snake:     snake,
		Food:      gs.Food,
		Bonus:     bonus,
		Hazard:    hazard,
		Score:     gs.Score,
		HighScore: max(gs.Score, sm.highScore),
	}
}

func (sm *StateMachine) startPlay() {
	state, err := domain.NewGameState(sm.gameConfig, sm.spawner)
	if err != nil {
		log.Printf("StateMachine: failed to start play: %v", err)
		return
	}

	sm.highScore = max(sm.highScore, sm.store.Load())
	sm.state = state
	sm.pending = 0
	sm.last = nil
	sm.phase = PhasePlaying
	log.Printf("StateMachine: play started, food at (%d,%d), high score %d",
		state.Food.X, state.Food.Y, sm.highScore)
}

func (sm *StateMachine) finishPlay(result *domain.TickResult) {
	sm.highScore = max(sm.highScore, result.Score)
	sm.saveHighScore()
	sm.audio.Play(SoundGameOver)
	sm.phase = PhaseGameOver
	log.Printf("StateMachine: game over (%v) after %d ticks, score %d, high score %d",
		result.Cause, sm.state.TickCount, result.Score, sm.highScore)
}

func (sm *StateMachine) saveHighScore() {
	if err := sm.store.Save(sm.highScore); err != nil {
		log.Printf("StateMachine: failed to save high score: %v", err)
	}
}
