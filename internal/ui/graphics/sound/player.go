package sound

import (
	"fmt"
	"io"
	"log"
	"os"

	"snake/internal/session"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

// Player plays decoded WAV clips through ebiten's audio context. Sounds
// whose files could not be loaded are silent.
type Player struct {
	ctx   *audio.Context
	clips map[session.Sound][]byte
}

func NewPlayer(paths map[session.Sound]string) *Player {
	p := &Player{
		ctx:   audio.NewContext(sampleRate),
		clips: make(map[session.Sound][]byte, len(paths)),
	}

	for snd, path := range paths {
		data, err := loadClip(path)
		if err != nil {
			log.Printf("Sound: %s disabled: %v", snd, err)
			continue
		}
		p.clips[snd] = data
	}
	return p
}

func (p *Player) Play(snd session.Sound) {
	data, ok := p.clips[snd]
	if !ok {
		return
	}
	p.ctx.NewPlayerFromBytes(data).Play()
}

func loadClip(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stream, err := wav.DecodeWithSampleRate(sampleRate, f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
