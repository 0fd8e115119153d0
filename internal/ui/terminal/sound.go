package terminal

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"snake/internal/session"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const (
	sampleRate      = beep.SampleRate(44100)
	resampleQuality = 4
)

// SoundPlayer plays WAV clips through the beep speaker. Without an audio
// device or clip files it stays silent.
type SoundPlayer struct {
	mu          sync.Mutex
	clips       map[session.Sound]*beep.Buffer
	initialized bool
}

func NewSoundPlayer(paths map[session.Sound]string) *SoundPlayer {
	sp := &SoundPlayer{clips: make(map[session.Sound]*beep.Buffer, len(paths))}

	for snd, path := range paths {
		buf, err := loadClip(path)
		if err != nil {
			log.Printf("Sound: %s disabled: %v", snd, err)
			continue
		}
		sp.clips[snd] = buf
	}
	if len(sp.clips) == 0 {
		return sp
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("Sound: speaker unavailable: %v", err)
		return sp
	}
	sp.initialized = true
	return sp
}

func (sp *SoundPlayer) Play(snd session.Sound) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if !sp.initialized {
		return
	}
	buf, ok := sp.clips[snd]
	if !ok {
		return
	}
	speaker.Play(buf.Streamer(0, buf.Len()))
}

// Close stops playback. Play is a no-op afterwards.
func (sp *SoundPlayer) Close() {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if !sp.initialized {
		return
	}
	speaker.Clear()
	sp.initialized = false
}

// loadClip decodes a WAV file into memory at the speaker's sample rate.
func loadClip(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		src = beep.Resample(resampleQuality, format.SampleRate, sampleRate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{
		SampleRate:  sampleRate,
		NumChannels: format.NumChannels,
		Precision:   format.Precision,
	})
	buf.Append(src)
	return buf, nil
}
