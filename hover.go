package carousel

import "github.com/tanema/gween/ease"

type hoverState struct {
	hovered bool
	tween   *TweenGroup
}

// hoverTracker holds pointer-hover state per slide index and the scale tween
// that follows it.
type hoverTracker struct {
	scale    float64
	duration float32
	ease     ease.TweenFunc
	states   map[int]*hoverState
}

func newHoverTracker(cfg Config) *hoverTracker {
	return &hoverTracker{
		scale:    cfg.HoverScale,
		duration: cfg.HoverDuration,
		ease:     cfg.HoverEase,
		states:   make(map[int]*hoverState),
	}
}

func (h *hoverTracker) state(i int) *hoverState {
	st, ok := h.states[i]
	if !ok {
		st = &hoverState{}
		h.states[i] = st
	}
	return st
}

// enter starts scaling slide s up from wherever it currently is.
func (h *hoverTracker) enter(s *Slide) {
	st := h.state(s.Index)
	if st.hovered {
		return
	}
	st.hovered = true
	h.retarget(st, s, h.scale)
}

// leave starts scaling slide s back to its resting size.
func (h *hoverTracker) leave(s *Slide) {
	st := h.state(s.Index)
	if !st.hovered {
		return
	}
	st.hovered = false
	h.retarget(st, s, 1)
}

func (h *hoverTracker) retarget(st *hoverState, s *Slide, to float64) {
	if st.tween != nil {
		st.tween.Stop()
	}
	if h.duration <= 0 {
		s.Frame.SetScale(to, to)
		st.tween = nil
		return
	}
	st.tween = TweenScale(s.Frame, to, to, h.duration, h.ease)
}

func (h *hoverTracker) hovered(i int) bool {
	st, ok := h.states[i]
	return ok && st.hovered
}

func (h *hoverTracker) update(dt float32) {
	for _, st := range h.states {
		if st.tween == nil {
			continue
		}
		st.tween.Update(dt)
		if st.tween.Done {
			st.tween = nil
		}
	}
}
