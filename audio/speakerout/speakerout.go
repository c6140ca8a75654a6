// Package speakerout plays audio cues on the default sound device.
package speakerout

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const bufferLength = 100 * time.Millisecond

// Output mixes every played streamer into a single speaker stream.
type Output struct {
	mixer  *beep.Mixer
	closed bool
}

// Open initialises the speaker. Only one Output may be open at a time.
func Open(rate beep.SampleRate) (*Output, error) {
	if err := speaker.Init(rate, rate.N(bufferLength)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	o := &Output{mixer: &beep.Mixer{}}
	speaker.Play(o.mixer)
	return o, nil
}

// Play queues s next to whatever is already playing.
func (o *Output) Play(s beep.Streamer) {
	speaker.Lock()
	defer speaker.Unlock()

	if o.closed {
		return
	}
	o.mixer.Add(s)
}

// Close stops playback and releases the device.
func (o *Output) Close() error {
	speaker.Lock()
	o.closed = true
	o.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	return nil
}
