// Package wavio exports float64 buffers as 16-bit mono WAV files.
package wavio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Save writes samples as a 16-bit mono WAV file. Values outside [-1, 1]
// are clipped.
func Save(path string, samples []float64, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wavio: create %s: %w", path, err)
	}

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, len(samples)),
		SourceBitDepth: 16,
	}
	for i, v := range samples {
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		buf.Data[i] = int(v * 32767)
	}

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	if err := enc.Write(buf); err != nil {
		enc.Close()
		f.Close()
		return fmt.Errorf("wavio: write %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("wavio: finalize %s: %w", path, err)
	}

	return f.Close()
}

// Sink writes every played buffer as a numbered WAV file in a directory.
// It satisfies the quiz AudioSink contract, so sessions can be exported
// instead of (or in addition to) being played back.
type Sink struct {
	dir        string
	sampleRate int
	n          int
}

// NewSink creates the directory if needed and returns a sink writing
// clip_NNNN.wav files into it.
func NewSink(dir string, sampleRate int) (*Sink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("wavio: create dir %s: %w", dir, err)
	}

	return &Sink{dir: dir, sampleRate: sampleRate}, nil
}

// Play writes the buffer as the next numbered clip.
func (s *Sink) Play(_ context.Context, samples []float64) error {
	s.n++
	path := filepath.Join(s.dir, fmt.Sprintf("clip_%04d.wav", s.n))
	return Save(path, samples, s.sampleRate)
}
