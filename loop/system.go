package loop

// System is one step of a loop iteration. Systems run in registration order
// and may keep their own state between frames.
type System interface {
	Execute(frame *Frame)
}
