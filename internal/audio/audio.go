// Package audio plays mono float64 buffers through the system output
// device via oto.
package audio

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const bytesPerSample = 2 // 16-bit PCM

// PCM16 converts samples in [-1, 1] to little-endian 16-bit PCM bytes.
// Out-of-range values are clipped.
func PCM16(samples []float64) []byte {
	out := make([]byte, len(samples)*bytesPerSample)
	for i, v := range samples {
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}

		s := int16(v * 32767)
		out[2*i] = byte(s)
		out[2*i+1] = byte(s >> 8)
	}

	return out
}

// Player owns an oto context configured for mono 16-bit output.
type Player struct {
	ctx        *oto.Context
	ready      chan struct{}
	sampleRate int
}

// NewPlayer opens the output device at the given sample rate. The device
// becomes usable asynchronously; Play waits for readiness.
func NewPlayer(sampleRate int) (*Player, error) {
	ctx, ready, err := oto.NewContext(sampleRate, 1, bytesPerSample)
	if err != nil {
		return nil, fmt.Errorf("audio: open device: %w", err)
	}

	return &Player{ctx: ctx, ready: ready, sampleRate: sampleRate}, nil
}

// Play renders the full buffer and blocks until playback finishes or ctx
// is cancelled.
func (p *Player) Play(ctx context.Context, samples []float64) error {
	select {
	case <-p.ready:
	case <-ctx.Done():
		return ctx.Err()
	}

	player := p.ctx.NewPlayer(bytes.NewReader(PCM16(samples)))
	defer player.Close()
	player.Play()

	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}

	return nil
}

// Null is a sink that discards buffers, for muted sessions.
type Null struct{}

// Play discards the buffer immediately.
func (Null) Play(context.Context, []float64) error { return nil }
