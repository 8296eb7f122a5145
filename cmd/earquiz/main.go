// Command earquiz runs the interactive pink-noise filter-audibility quiz.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-eartrain/internal/audio"
	"github.com/cwbudde/algo-eartrain/internal/wavio"
	"github.com/cwbudde/algo-eartrain/quiz"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "\nQuiz interrupted.")
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "earquiz: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	questions := flag.Int("questions", quiz.DefaultQuestions, "number of questions")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed (reproduces a full session)")
	sampleRate := flag.Float64("sample-rate", quiz.DefaultSampleRate, "sample rate in Hz")
	duration := flag.Float64("duration", quiz.DefaultDuration, "clip duration in seconds")
	amplitude := flag.Float64("amplitude", quiz.DefaultAmplitude, "peak amplitude of the noise clips")
	wavDir := flag.String("wav-dir", "", "also export every played clip as WAV into this directory")
	mute := flag.Bool("mute", false, "skip device playback (useful with -wav-dir)")
	analyze := flag.Bool("analyze", false, "include measured band levels in the detail reveal")
	showType := flag.Bool("show-type", false, "always reveal the correct filter type (skips the prompt)")
	showDetails := flag.Bool("show-details", false, "always reveal filter details (skips the prompt)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
	if *debug {
		log.SetLevel(logrus.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sink, err := buildSink(*mute, *wavDir, int(*sampleRate), log)
	if err != nil {
		return err
	}

	cfg := quiz.DefaultConfig()
	cfg.SampleRate = *sampleRate
	cfg.Duration = *duration
	cfg.Amplitude = *amplitude
	cfg.Questions = *questions
	cfg.Analyze = *analyze
	cfg.Out = os.Stdout
	cfg.Log = log
	if *showType || *showDetails {
		cfg.AskPreferences = false
		cfg.ShowType = *showType
		cfg.ShowDetails = *showDetails
	}

	prompter := &stdinPrompter{
		in:  bufio.NewScanner(os.Stdin),
		out: os.Stdout,
	}

	session := quiz.NewSession(cfg, prompter, sink, rand.New(rand.NewSource(*seed)))

	_, err = session.Run(ctx)
	return err
}

// buildSink composes the playback chain: the device player unless muted,
// plus a WAV exporter when requested. A device failure downgrades to the
// remaining sinks with a warning instead of aborting.
func buildSink(mute bool, wavDir string, sampleRate int, log *logrus.Logger) (quiz.AudioSink, error) {
	var sinks []quiz.AudioSink

	if !mute {
		player, err := audio.NewPlayer(sampleRate)
		if err != nil {
			log.WithError(err).Warn("audio device unavailable, continuing without playback")
			fmt.Fprintln(os.Stderr, "Warning: no audio output device; use -wav-dir to export clips instead.")
		} else {
			sinks = append(sinks, player)
		}
	}

	if wavDir != "" {
		ws, err := wavio.NewSink(wavDir, sampleRate)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, ws)
	}

	switch len(sinks) {
	case 0:
		return audio.Null{}, nil
	case 1:
		return sinks[0], nil
	default:
		return multiSink(sinks), nil
	}
}

// multiSink fans one buffer out to several sinks in order.
type multiSink []quiz.AudioSink

func (m multiSink) Play(ctx context.Context, samples []float64) error {
	for _, s := range m {
		if err := s.Play(ctx, samples); err != nil {
			return err
		}
	}
	return nil
}

// stdinPrompter reads answers line by line, re-prompting on invalid
// input.
type stdinPrompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func (p *stdinPrompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.in.Text(), nil
}

func (p *stdinPrompter) GuessKind() (quiz.Kind, error) {
	names := make([]string, 0, len(quiz.Kinds()))
	for _, k := range quiz.Kinds() {
		names = append(names, k.String())
	}
	prompt := fmt.Sprintf("Guess the filter type (%s): ", strings.Join(names, ", "))

	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}
		if kind, ok := quiz.ParseKind(line); ok {
			return kind, nil
		}
		fmt.Fprintf(p.out, "Invalid guess. Please enter one of: %s (or abbreviations like lp, hp, n, bp)\n",
			strings.Join(names, ", "))
	}
}

func (p *stdinPrompter) GuessCenter(catalog quiz.Catalog) (int, error) {
	choices := make([]string, 0, len(catalog))
	for _, b := range catalog {
		choices = append(choices, fmt.Sprintf("%d Hz (%s)", b.FreqHz, b.Label))
	}
	fmt.Fprintf(p.out, "Available frequencies: %s\n", strings.Join(choices, ", "))

	for {
		line, err := p.readLine("Guess the center frequency (enter just the number): ")
		if err != nil {
			return 0, err
		}
		if freq, ok := quiz.ParseCenterFrequency(line, catalog); ok {
			return freq, nil
		}
		fmt.Fprintf(p.out, "Invalid frequency. Please enter one of: %v\n", catalog.Frequencies())
	}
}

func (p *stdinPrompter) YesNo(prompt string) (bool, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		fmt.Fprintln(p.out, "Invalid input. Please enter 'y' or 'n'.")
	}
}
