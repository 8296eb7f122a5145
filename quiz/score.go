package quiz

// Guess holds the listener's answer to one question. HasCenter is false
// when no frequency guess was collected (lowpass/highpass guesses).
type Guess struct {
	Kind      Kind
	CenterHz  int
	HasCenter bool
}

// QuestionResult is the scored outcome of a single question.
type QuestionResult struct {
	Points      float64
	KindCorrect bool
	FreqCorrect bool
}

// ScoreAnswer scores one answer: lowpass/highpass award 1 point for the
// correct kind; notch/bandpass award 1 point for kind plus frequency and
// 0.5 for the kind alone.
func ScoreAnswer(spec FilterSpec, guess Guess) QuestionResult {
	res := QuestionResult{
		KindCorrect: guess.Kind == spec.Kind,
	}
	if !res.KindCorrect {
		return res
	}

	if !spec.Kind.UsesCenter() {
		res.Points = 1
		return res
	}

	if guess.HasCenter && guess.CenterHz == int(spec.CenterHz) {
		res.Points = 1
		res.FreqCorrect = true
	} else {
		res.Points = 0.5
	}

	return res
}
