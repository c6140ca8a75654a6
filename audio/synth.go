// Package audio synthesises the short cues played on row clears and at the
// end of a game.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// DefaultSampleRate is used when a Synth is created with a zero rate.
const DefaultSampleRate = beep.SampleRate(44100)

const (
	noteLength     = 90 * time.Millisecond
	gameOverLength = 180 * time.Millisecond
	// maxChord caps the number of notes in a row clear cue.
	maxChord = 4
	volume   = 0.4
)

// Cue identifies a sound.
type Cue uint8

const (
	CueRowClear Cue = iota
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueRowClear:
		return "row clear"
	case CueGameOver:
		return "game over"
	default:
		return fmt.Sprintf("Cue(%d)", uint8(c))
	}
}

var (
	// C major arpeggio, one step per cleared row.
	rowClearNotes = [maxChord]float64{523.25, 659.25, 783.99, 1046.50}
	gameOverNotes = []float64{440, 349.23, 261.63}
)

// Synth builds cue streamers at a fixed sample rate.
type Synth struct {
	rate beep.SampleRate
}

func NewSynth(rate beep.SampleRate) *Synth {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	return &Synth{rate: rate}
}

func (s *Synth) SampleRate() beep.SampleRate { return s.rate }

// RowClear returns a rising arpeggio with one note per cleared row, up to
// four notes.
func (s *Synth) RowClear(rows int) beep.Streamer {
	rows = max(1, min(rows, maxChord))

	notes := make([]beep.Streamer, 0, rows)
	for _, freq := range rowClearNotes[:rows] {
		notes = append(notes, s.tone(freq, noteLength))
	}
	return beep.Seq(notes...)
}

// GameOver returns a slow descending phrase.
func (s *Synth) GameOver() beep.Streamer {
	notes := make([]beep.Streamer, 0, len(gameOverNotes))
	for _, freq := range gameOverNotes {
		notes = append(notes, s.tone(freq, gameOverLength))
	}
	return beep.Seq(notes...)
}

// Streamer returns the streamer for cue. rows only affects CueRowClear.
func (s *Synth) Streamer(cue Cue, rows int) (beep.Streamer, error) {
	switch cue {
	case CueRowClear:
		return s.RowClear(rows), nil
	case CueGameOver:
		return s.GameOver(), nil
	default:
		return nil, fmt.Errorf("unknown cue %s", cue)
	}
}

func (s *Synth) tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(s.rate, freq)
	if err != nil {
		// Above the Nyquist frequency of very low sample rates.
		return beep.Silence(s.rate.N(d))
	}
	return &effects.Volume{
		Streamer: beep.Take(s.rate.N(d), sine),
		Base:     2,
		Volume:   math.Log2(volume),
	}
}
