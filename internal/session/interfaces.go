package session

// Renderer draws the current phase. Implementations must not keep the
// frame after the call returns.
type Renderer interface {
	DrawStart(highScore int32)
	DrawFrame(frame Frame)
	DrawGameOver(score, highScore int32)
}

// AudioPlayer plays a sound without blocking.
type AudioPlayer interface {
	Play(sound Sound)
}

// HighScoreStore persists the all-time high score.
type HighScoreStore interface {
	// Load returns 0 when nothing usable is stored.
	Load() int32
	Save(score int32) error
}

// InputSource yields the events received since the previous Drain,
// oldest first.
type InputSource interface {
	Drain() []Input
}

type silentAudio struct{}

func (silentAudio) Play(Sound) {}

// SilentAudio is an AudioPlayer that plays nothing.
var SilentAudio AudioPlayer = silentAudio{}
