package quiz

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-eartrain/dsp/core"
	"github.com/cwbudde/algo-eartrain/dsp/noise"
	"github.com/cwbudde/algo-eartrain/dsp/spectrum"
)

// nearSilenceFloor is the post-filter peak below which the filtered
// buffer is considered unplayable and the reference is substituted.
const nearSilenceFloor = 1e-6

// Prompter collects the listener's answers. Implementations re-prompt on
// invalid input and only return an error when input is no longer
// available.
type Prompter interface {
	GuessKind() (Kind, error)
	GuessCenter(catalog Catalog) (int, error)
	YesNo(prompt string) (bool, error)
}

// AudioSink receives the per-question buffers for playback or export.
type AudioSink interface {
	Play(ctx context.Context, samples []float64) error
}

// Config holds session settings. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	SampleRate float64
	Duration   float64
	Amplitude  float64
	Questions  int

	PauseBetweenSounds    time.Duration
	PauseBetweenQuestions time.Duration

	// AskPreferences asks the reveal questions interactively at session
	// start; otherwise ShowType/ShowDetails are taken as-is.
	AskPreferences bool
	ShowType       bool
	ShowDetails    bool

	// Analyze adds a measured band-level line to the detail reveal.
	Analyze bool

	Catalog Catalog
	Out     io.Writer
	Log     *logrus.Logger
}

// DefaultConfig returns the standard ten-question session at 44.1 kHz.
func DefaultConfig() Config {
	return Config{
		SampleRate:            DefaultSampleRate,
		Duration:              DefaultDuration,
		Amplitude:             DefaultAmplitude,
		Questions:             DefaultQuestions,
		PauseBetweenSounds:    500 * time.Millisecond,
		PauseBetweenQuestions: 1500 * time.Millisecond,
		AskPreferences:        true,
		Catalog:               DefaultCatalog(),
		Out:                   io.Discard,
	}
}

// Result summarizes a completed session.
type Result struct {
	Score     float64
	Questions int
}

// Session runs the question loop against a Prompter and an AudioSink.
type Session struct {
	cfg      Config
	rng      *rand.Rand
	gen      *noise.Generator
	analyzer *spectrum.Analyzer
	prompter Prompter
	sink     AudioSink
	log      *logrus.Logger
}

// NewSession creates a session. rng drives both the filter drawing and
// the per-question noise seeds, so a seeded rng reproduces a full run.
func NewSession(cfg Config, prompter Prompter, sink AudioSink, rng *rand.Rand) *Session {
	if cfg.Out == nil {
		cfg.Out = io.Discard
	}
	if len(cfg.Catalog) == 0 {
		cfg.Catalog = DefaultCatalog()
	}

	log := cfg.Log
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}

	coreOpts := []core.ProcessorOption{core.WithSampleRate(cfg.SampleRate)}

	return &Session{
		cfg:      cfg,
		rng:      rng,
		gen:      noise.NewGenerator(coreOpts...),
		analyzer: spectrum.NewAnalyzer(coreOpts),
		prompter: prompter,
		sink:     sink,
		log:      log,
	}
}

// Run executes the full session and returns the final result. It stops
// early when ctx is cancelled or the prompter fails.
func (s *Session) Run(ctx context.Context) (Result, error) {
	s.printIntro()

	showType, showDetails, err := s.revealPreferences()
	if err != nil {
		return Result{}, err
	}

	res := Result{Questions: s.cfg.Questions}

	for q := 0; q < s.cfg.Questions; q++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		fmt.Fprintf(s.cfg.Out, "\n--- Question %d/%d ---\n", q+1, s.cfg.Questions)

		spec := RandomSpec(s.rng, s.cfg.Catalog)
		original, filtered := s.prepareBuffers(spec)

		if err := s.playPair(ctx, original, filtered); err != nil {
			return res, fmt.Errorf("quiz: playback: %w", err)
		}

		guess, err := s.collectGuess(spec)
		if err != nil {
			return res, err
		}

		qr := ScoreAnswer(spec, guess)
		res.Score += qr.Points

		s.giveFeedback(spec, guess, qr, showType, showDetails, original, filtered)
		fmt.Fprintf(s.cfg.Out, "Current Score: %.1f/%d\n", res.Score, q+1)

		if q < s.cfg.Questions-1 {
			if err := sleep(ctx, s.cfg.PauseBetweenQuestions); err != nil {
				return res, err
			}
		}
	}

	fmt.Fprintf(s.cfg.Out, "\n%s\n", strings.Repeat("=", 30))
	fmt.Fprintf(s.cfg.Out, "      Quiz Complete!\n")
	fmt.Fprintf(s.cfg.Out, "      Final Score: %.1f/%d\n", res.Score, res.Questions)
	fmt.Fprintf(s.cfg.Out, "%s\n", strings.Repeat("=", 30))

	return res, nil
}

func (s *Session) printIntro() {
	out := s.cfg.Out
	rule := strings.Repeat("-", 30)

	names := make([]string, 0, len(Kinds()))
	for _, k := range Kinds() {
		names = append(names, k.String())
	}

	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, " Hearing Test Quiz")
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "Each question plays original pink noise, then filtered pink noise.")
	fmt.Fprintf(out, "1. Guess the filter type: %s\n", strings.Join(names, ", "))
	fmt.Fprintln(out, "2. If Notch or Bandpass, guess the center frequency.")
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "Scoring:")
	fmt.Fprintln(out, " - Lowpass/Highpass: 1 point for correct type.")
	fmt.Fprintln(out, " - Notch/Bandpass: 0.5 points for correct type, wrong frequency.")
	fmt.Fprintln(out, " - Notch/Bandpass: 1 point for correct type AND correct frequency.")
	fmt.Fprintln(out, rule)
}

func (s *Session) revealPreferences() (showType, showDetails bool, err error) {
	if !s.cfg.AskPreferences {
		return s.cfg.ShowType, s.cfg.ShowDetails, nil
	}

	showType, err = s.prompter.YesNo("Show correct FILTER TYPE after each guess? (y/n): ")
	if err != nil {
		return false, false, fmt.Errorf("quiz: reveal preference: %w", err)
	}

	showDetails, err = s.prompter.YesNo("Show filter DETAILS (Freq, BW, Gain) after each guess? (y/n): ")
	if err != nil {
		return false, false, fmt.Errorf("quiz: reveal preference: %w", err)
	}

	return showType, showDetails, nil
}

// prepareBuffers generates the reference clip, applies the drawn filter
// and substitutes the reference if the filtered clip came out near
// silent.
func (s *Session) prepareBuffers(spec FilterSpec) (original, filtered []float64) {
	seed := s.rng.Int63()
	s.gen.SetSeed(seed)

	original = s.gen.Pink(s.cfg.Amplitude, s.cfg.Duration)
	filtered = spec.Apply(original, s.cfg.SampleRate)

	peak := core.MaxAbs(filtered)
	if peak < nearSilenceFloor {
		s.log.WithFields(logrus.Fields{
			"kind": spec.Kind.String(),
			"peak": peak,
		}).Debug("filtered clip near silent, substituting reference")

		filtered = make([]float64, len(original))
		copy(filtered, original)
	}

	s.log.WithFields(logrus.Fields{
		"kind":    spec.Kind.String(),
		"details": spec.Details(s.cfg.Catalog),
		"seed":    seed,
		"samples": len(original),
		"peak":    peak,
	}).Debug("question prepared")

	return original, filtered
}

func (s *Session) playPair(ctx context.Context, original, filtered []float64) error {
	fmt.Fprintln(s.cfg.Out, "Playing ORIGINAL noise...")
	if err := s.sink.Play(ctx, original); err != nil {
		return err
	}

	if err := sleep(ctx, s.cfg.PauseBetweenSounds); err != nil {
		return err
	}

	fmt.Fprintln(s.cfg.Out, "Playing FILTERED noise...")
	return s.sink.Play(ctx, filtered)
}

func (s *Session) collectGuess(spec FilterSpec) (Guess, error) {
	kind, err := s.prompter.GuessKind()
	if err != nil {
		return Guess{}, fmt.Errorf("quiz: kind guess: %w", err)
	}

	guess := Guess{Kind: kind}
	if kind.UsesCenter() {
		center, err := s.prompter.GuessCenter(s.cfg.Catalog)
		if err != nil {
			return Guess{}, fmt.Errorf("quiz: frequency guess: %w", err)
		}
		guess.CenterHz = center
		guess.HasCenter = true
	}

	return guess, nil
}

func (s *Session) giveFeedback(spec FilterSpec, guess Guess, qr QuestionResult, showType, showDetails bool, original, filtered []float64) {
	out := s.cfg.Out

	switch {
	case !qr.KindCorrect:
		fmt.Fprintln(out, "Incorrect.")
	case spec.Kind.UsesCenter() && !qr.FreqCorrect:
		fmt.Fprintf(out, "Partially Correct. (Correct type '%s', but wrong frequency)\n", spec.Kind)
	case spec.Kind.UsesCenter():
		fmt.Fprintln(out, "Correct! (Type and Frequency)")
	default:
		fmt.Fprintln(out, "Correct!")
	}

	var reveal []string
	if showType {
		if !qr.KindCorrect {
			reveal = append(reveal, fmt.Sprintf("The correct filter type was: %s", spec.Kind))
		}
		if spec.Kind.UsesCenter() && !qr.FreqCorrect && guess.Kind == spec.Kind {
			label, _ := s.cfg.Catalog.Label(int(spec.CenterHz))
			reveal = append(reveal, fmt.Sprintf("The correct frequency was: %.0f Hz (%s)", spec.CenterHz, label))
		}
	}

	if showDetails {
		reveal = append(reveal, fmt.Sprintf("Filter Details: %s", spec.Details(s.cfg.Catalog)))
		if s.cfg.Analyze {
			if line, ok := s.measuredLevel(spec, original, filtered); ok {
				reveal = append(reveal, line)
			}
		}
	}

	if len(reveal) > 0 {
		fmt.Fprintln(out, strings.Join(reveal, " | "))
	}
}

// measuredLevel reports the filtered clip's band level relative to the
// reference over the band the filter acts on.
func (s *Session) measuredLevel(spec FilterSpec, original, filtered []float64) (string, bool) {
	lo, hi := spec.Band(s.cfg.SampleRate)

	db, err := s.analyzer.BandLevelDB(filtered, original, lo, hi)
	if err != nil {
		s.log.WithError(err).Debug("band level analysis failed")
		return "", false
	}

	return fmt.Sprintf("Measured: %+.1f dB in %.0f-%.0f Hz", db, lo, hi), true
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
