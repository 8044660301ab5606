package carousel

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultWheelNotch is the browser-style wheel delta reported for one wheel
// notch. Ebitengine reports notches; the scroll math works in these pixels.
const DefaultWheelNotch = 120.0

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

type pointerState struct {
	x, y      float64
	hoverNode *Node
	seen      bool // a position has been observed at least once
}

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

type wheelHandler struct {
	id uint32
	fn func(WheelContext)
}

type handlerRegistry struct {
	pointerEnter []pointerHandler
	pointerLeave []pointerHandler
	pointerMove  []pointerHandler
	wheel        []wheelHandler
	nextID       uint32
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPointerEnter:
		h.reg.pointerEnter = removePointerHandler(h.reg.pointerEnter, h.id)
	case EventPointerLeave:
		h.reg.pointerLeave = removePointerHandler(h.reg.pointerLeave, h.id)
	case EventPointerMove:
		h.reg.pointerMove = removePointerHandler(h.reg.pointerMove, h.id)
	case EventWheel:
		for i := range h.reg.wheel {
			if h.reg.wheel[i].id == h.id {
				h.reg.wheel = append(h.reg.wheel[:i], h.reg.wheel[i+1:]...)
				return
			}
		}
	}
}

func removePointerHandler(s []pointerHandler, id uint32) []pointerHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (s *Scene) addPointerHandler(list *[]pointerHandler, event EventType, fn func(PointerContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	*list = append(*list, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: event}
}

// OnPointerEnter registers a callback fired when the pointer moves onto a new
// interactable node.
func (s *Scene) OnPointerEnter(fn func(PointerContext)) CallbackHandle {
	return s.addPointerHandler(&s.handlers.pointerEnter, EventPointerEnter, fn)
}

// OnPointerLeave registers a callback fired when the pointer leaves a node,
// either for another node or for empty space.
func (s *Scene) OnPointerLeave(fn func(PointerContext)) CallbackHandle {
	return s.addPointerHandler(&s.handlers.pointerLeave, EventPointerLeave, fn)
}

// OnPointerMove registers a callback fired when the pointer position changes.
// Node is the node under the pointer, or nil.
func (s *Scene) OnPointerMove(fn func(PointerContext)) CallbackHandle {
	return s.addPointerHandler(&s.handlers.pointerMove, EventPointerMove, fn)
}

// OnWheel registers a callback fired on frames with wheel movement.
func (s *Scene) OnWheel(fn func(WheelContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.wheel = append(s.handlers.wheel, wheelHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventWheel}
}

// --- Hit testing ---

// nodeContainsLocal tests whether (lx, ly) falls inside a node's hit region.
// Uses HitShape if set; otherwise the sprite's image bounds. Containers with no
// HitShape are not hit-testable.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	w, h := nodeDimensions(n)
	if w == 0 && h == 0 {
		return false
	}
	return lx >= 0 && lx <= w && ly >= 0 && ly <= h
}

// collectInteractable walks the tree in painter order, appending candidate
// nodes. Skips Visible=false or Interactable=false subtrees.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.HitShape != nil || n.Type != NodeTypeContainer {
		buf = append(buf, n)
	}
	for _, child := range n.children {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at (wx, wy), or nil.
func (s *Scene) hitTest(wx, wy float64) *Node {
	s.hitBuf = collectInteractable(s.root, s.hitBuf[:0])
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		lx, ly := n.WorldToLocal(wx, wy)
		if nodeContainsLocal(n, lx, ly) {
			return n
		}
	}
	return nil
}

// --- Input processing ---

// processInput handles one frame of pointer and wheel input. A queued
// synthetic event replaces real input for the frame.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	mx, my := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	s.processPointer(float64(mx), float64(my))
	s.processWheel(wy * s.WheelNotch)
}

// processPointer fires move, leave and enter events for a pointer at (x, y).
// The hover target is re-evaluated every frame, so nodes that slide under a
// stationary pointer still get enter and leave.
func (s *Scene) processPointer(x, y float64) {
	ps := &s.pointer
	moved := !ps.seen || x != ps.x || y != ps.y
	ps.x, ps.y, ps.seen = x, y, true

	target := s.hitTest(x, y)

	if moved {
		s.firePointer(s.handlers.pointerMove, target, x, y)
	}
	if target != ps.hoverNode {
		if ps.hoverNode != nil {
			s.firePointer(s.handlers.pointerLeave, ps.hoverNode, x, y)
		}
		if target != nil {
			s.firePointer(s.handlers.pointerEnter, target, x, y)
		}
		ps.hoverNode = target
	}
}

func (s *Scene) processWheel(delta float64) {
	if delta == 0 {
		return
	}
	ctx := WheelContext{Delta: delta, GlobalX: s.pointer.x, GlobalY: s.pointer.y}
	for _, h := range s.handlers.wheel {
		h.fn(ctx)
	}
}

func (s *Scene) firePointer(handlers []pointerHandler, node *Node, x, y float64) {
	ctx := PointerContext{Node: node, GlobalX: x, GlobalY: y}
	if node != nil {
		ctx.LocalX, ctx.LocalY = node.WorldToLocal(x, y)
	}
	for _, h := range handlers {
		h.fn(ctx)
	}
}

// HoveredNode returns the node currently under the pointer, or nil.
func (s *Scene) HoveredNode() *Node {
	return s.pointer.hoverNode
}
