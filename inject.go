package carousel

type syntheticKind uint8

const (
	syntheticMove syntheticKind = iota
	syntheticWheel
)

// syntheticInput is a single injected input event, in screen coordinates.
type syntheticInput struct {
	kind  syntheticKind
	x, y  float64
	delta float64
}

// InjectMove queues a pointer move to (x, y). The event is consumed on the
// next frame's input processing and replaces real input for that frame.
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticInput{kind: syntheticMove, x: x, y: y})
}

// InjectWheel queues a wheel event with the given browser-style delta at the
// current pointer position.
func (s *Scene) InjectWheel(delta float64) {
	s.injectQueue = append(s.injectQueue, syntheticInput{kind: syntheticWheel, delta: delta})
}

// InjectSweep queues moves from (fromX, fromY) to (toX, toY) spread over
// frames frames, ending exactly on the destination. Minimum one frame.
func (s *Scene) InjectSweep(fromX, fromY, toX, toY float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	for i := 1; i <= frames; i++ {
		t := float64(i) / float64(frames)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// processInjectedInput pops one queued event and feeds it through the same
// path as real input. Returns true if an event was consumed.
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case syntheticMove:
		s.processPointer(evt.x, evt.y)
	case syntheticWheel:
		s.processPointer(s.pointer.x, s.pointer.y)
		s.processWheel(evt.delta)
	}
	return true
}
