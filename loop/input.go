package loop

import (
	"sync"

	"github.com/plus3/blockfall/game"
)

// IntentQueue is an InputSource fed by Push. It is safe to push from another
// goroutine than the one polling.
type IntentQueue struct {
	mu      sync.Mutex
	pending []game.Intent
}

// Push queues intents for the next Poll.
func (q *IntentQueue) Push(intents ...game.Intent) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, intents...)
}

// Poll returns and clears the queued intents.
func (q *IntentQueue) Poll() []game.Intent {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = nil
	return out
}
