package loop

import "time"

// DefaultLinger is how long a lost game stays on screen.
const DefaultLinger = 2 * time.Second

// Linger keeps a finished game visible until Duration has passed or the
// player presses a key, whichever comes first.
type Linger struct {
	Duration time.Duration
	elapsed  float64
}

// Done advances the timer by dt seconds and reports whether the hold is over.
func (l *Linger) Done(dt float64, keyPressed bool) bool {
	if keyPressed {
		return true
	}
	d := l.Duration
	if d <= 0 {
		d = DefaultLinger
	}
	l.elapsed += dt
	return l.elapsed >= d.Seconds()
}
