package loop

// Commands buffers work that must wait until every system of a frame ran.
type Commands struct {
	defers []func()
	stop   bool
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run when the frame is flushed.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Stop ends the loop once the current frame is flushed.
func (c *Commands) Stop() {
	c.stop = true
}

// Flush runs deferred functions in order and resets the buffer. It reports
// whether a system asked the loop to stop.
func (c *Commands) Flush() bool {
	for _, fn := range c.defers {
		fn()
	}
	stop := c.stop

	c.defers = c.defers[:0]
	c.stop = false
	return stop
}
