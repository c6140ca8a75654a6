package audio

import (
	"io"
	"log"

	"github.com/gopxl/beep"
)

// Sink plays streamers. audio/speakerout provides one backed by the sound
// device.
type Sink interface {
	Play(s beep.Streamer)
}

// Player turns game events into cues played on a Sink.
type Player struct {
	synth *Synth
	sink  Sink
	log   *log.Logger
}

func NewPlayer(synth *Synth, sink Sink, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Player{synth: synth, sink: sink, log: logger}
}

func (p *Player) RowsCleared(n int) {
	p.play(CueRowClear, n)
}

func (p *Player) GameOver() {
	p.play(CueGameOver, 0)
}

func (p *Player) play(cue Cue, rows int) {
	if p.sink == nil {
		return
	}
	s, err := p.synth.Streamer(cue, rows)
	if err != nil {
		p.log.Printf("audio: %v", err)
		return
	}
	p.sink.Play(s)
}
