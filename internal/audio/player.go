// Package audio plays short cue clips and sequences Morse playback.
package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"go.uber.org/zap"
)

// Cue identifies a clip.
type Cue int

const (
	// Dot is the short Morse unit.
	Dot Cue = iota
	// Dash is the long Morse unit.
	Dash
	// Correct confirms a right answer.
	Correct
	// Wrong flags a wrong answer.
	Wrong
)

var cueFiles = map[Cue]string{
	Dot:     "dot.wav",
	Dash:    "dash.wav",
	Correct: "correct.wav",
	Wrong:   "wrong.wav",
}

func (c Cue) String() string {
	switch c {
	case Dot:
		return "dot"
	case Dash:
		return "dash"
	case Correct:
		return "correct"
	case Wrong:
		return "wrong"
	default:
		return "unknown"
	}
}

// CueForSymbol maps a Morse symbol to its cue.
func CueForSymbol(symbol string) (Cue, bool) {
	switch symbol {
	case ".":
		return Dot, true
	case "-":
		return Dash, true
	default:
		return 0, false
	}
}

// Player plays cues without blocking. Implementations never fail loudly.
type Player interface {
	Play(cue Cue)
}

// Nop is a silent Player.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Cue) {}

const (
	outputRate       = beep.SampleRate(44100)
	resampleQuality  = 4
	speakerBufferDur = time.Second / 20
)

// WavPlayer plays WAV clips loaded from a directory through the system speaker.
type WavPlayer struct {
	clips  map[Cue]*beep.Buffer
	log    *zap.Logger
	active bool
}

// NewWavPlayer loads every known clip from dir. Clips that are missing or
// undecodable are logged and play as no-ops; if the speaker cannot be
// initialised the whole player is silent.
func NewWavPlayer(dir string, log *zap.Logger) *WavPlayer {
	if log == nil {
		log = zap.NewNop()
	}
	p := &WavPlayer{clips: map[Cue]*beep.Buffer{}, log: log}
	for cue, name := range cueFiles {
		path := filepath.Join(dir, name)
		buf, err := loadClip(path)
		if err != nil {
			log.Warn("sound clip unavailable", zap.String("cue", cue.String()), zap.String("path", path), zap.Error(err))
			continue
		}
		p.clips[cue] = buf
	}
	if len(p.clips) == 0 {
		return p
	}
	if err := speaker.Init(outputRate, outputRate.N(speakerBufferDur)); err != nil {
		log.Warn("audio output unavailable", zap.Error(err))
		return p
	}
	p.active = true
	log.Debug("audio ready", zap.Int("clips", len(p.clips)), zap.String("dir", dir))
	return p
}

// Play queues the clip for cue. Unknown or unloaded clips are ignored.
func (p *WavPlayer) Play(cue Cue) {
	if p == nil || !p.active {
		return
	}
	buf, ok := p.clips[cue]
	if !ok {
		return
	}
	speaker.Play(buf.Streamer(0, buf.Len()))
}

// Loaded reports whether cue has a decoded clip.
func (p *WavPlayer) Loaded(cue Cue) bool {
	_, ok := p.clips[cue]
	return ok
}

// Close releases the audio device.
func (p *WavPlayer) Close() {
	if p == nil || !p.active {
		return
	}
	speaker.Close()
	p.active = false
}

func loadClip(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		if cerr := f.Close(); cerr != nil {
			// Best-effort close on decode failure.
			_ = cerr
		}
		return nil, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}
	defer func() {
		if cerr := streamer.Close(); cerr != nil {
			// Best-effort close for read-only clip.
			_ = cerr
		}
	}()

	buf := beep.NewBuffer(beep.Format{SampleRate: outputRate, NumChannels: 2, Precision: 2})
	if format.SampleRate == outputRate {
		buf.Append(streamer)
	} else {
		buf.Append(beep.Resample(resampleQuality, format.SampleRate, outputRate, streamer))
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("clip %s is empty", filepath.Base(path))
	}
	return buf, nil
}
