package sound

import (
	"fmt"
	"os"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"

	"notepad/internal/logger"
)

// Player plays the notification cue.
type Player interface {
	Play()
	Shutdown()
}

// NopPlayer is used when sound is disabled.
type NopPlayer struct{}

func (NopPlayer) Play()     {}
func (NopPlayer) Shutdown() {}

// BeepPlayer plays a WAV file through the system speaker. The file is decoded
// once on first use. A missing or unreadable file disables the player instead
// of failing the caller.
type BeepPlayer struct {
	path   string
	logger logger.Logger

	buffer   *beep.Buffer
	format   beep.Format
	ready    bool
	disabled bool
}

var _ Player = (*BeepPlayer)(nil)

func NewBeepPlayer(path string, log logger.Logger) *BeepPlayer {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &BeepPlayer{path: path, logger: log}
}

// Play blocks until the cue has finished.
func (p *BeepPlayer) Play() {
	if p.disabled {
		return
	}
	if p.buffer == nil {
		if err := p.load(); err != nil {
			p.disabled = true
			p.logger.Warning("SoundPlayer", "notification sound unavailable, continuing without sound", map[string]interface{}{
				"path":  p.path,
				"error": err.Error(),
			})
			return
		}
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(
		p.buffer.Streamer(0, p.buffer.Len()),
		beep.Callback(func() { close(done) }),
	))

	// Guard against a stalled audio device.
	timeout := p.format.SampleRate.D(p.buffer.Len()) + time.Second
	select {
	case <-done:
	case <-time.After(timeout):
		p.logger.Warning("SoundPlayer", "playback did not finish in time", map[string]interface{}{
			"timeout_ms": timeout.Milliseconds(),
		})
	}
}

func (p *BeepPlayer) load() error {
	f, err := os.Open(p.path)
	if err != nil {
		return err
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", p.path, err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	p.buffer = buffer
	p.format = format
	p.ready = true

	p.logger.Debug("SoundPlayer", "notification sound loaded", map[string]interface{}{
		"path":        p.path,
		"sample_rate": int(format.SampleRate),
		"samples":     buffer.Len(),
	})
	return nil
}

// Shutdown releases the audio device.
func (p *BeepPlayer) Shutdown() {
	if p.ready {
		speaker.Close()
		p.ready = false
	}
}
