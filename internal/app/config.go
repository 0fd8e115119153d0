package app

import (
	"fmt"
	"path/filepath"

	"snake/internal/domain"
	"snake/internal/session"
)

// Asset file names inside Config.AssetsDir. Every one of them is optional.
const (
	AssetIcon        = "icon.png"
	AssetFood        = "apple.png"
	AssetBonus       = "golden_apple.png"
	AssetHazard      = "trap.png"
	AssetEatSound    = "eat.wav"
	AssetGameOverWav = "gameover.wav"
)

type Config struct {
	Title         string
	AssetsDir     string
	HighScorePath string
	// LogPath is where the terminal frontend writes its log.
	LogPath       string
	Game          *domain.GameConfig
}

func DefaultConfig() Config {
	return Config{
		Title:         "Snake - Advanced Edition",
		AssetsDir:     "assets",
		HighScorePath: "highscore.txt",
		LogPath:       "snake-tty.log",
		Game:          domain.DefaultGameConfig(),
	}
}

func (c Config) Validate() error {
	if c.HighScorePath == "" {
		return fmt.Errorf("config: empty high score path")
	}
	if c.Game == nil {
		return fmt.Errorf("config: missing game config")
	}
	return c.Game.Validate()
}

// Asset returns the path of a named file in the assets directory.
func (c Config) Asset(name string) string {
	return filepath.Join(c.AssetsDir, name)
}

// SoundPaths maps every sound to its file.
func (c Config) SoundPaths() map[session.Sound]string {
	return map[session.Sound]string{
		session.SoundEat:      c.Asset(AssetEatSound),
		session.SoundGameOver: c.Asset(AssetGameOverWav),
	}
}
