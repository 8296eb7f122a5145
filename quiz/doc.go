// Package quiz implements the filter-audibility training session: it
// draws a random filter per question, synthesizes a reference and a
// filtered pink-noise clip, plays both, collects the listener's guess and
// keeps score.
//
// The DSP core under dsp/ stays free of presentation concerns: the
// catalog of labeled frequency bands, prompt parsing, scoring and
// feedback all live here, and playback is abstracted behind [AudioSink].
package quiz
