package carousel

// Geometry is the slot layout derived from the viewport size and slide count.
type Geometry struct {
	ViewportW, ViewportH float64
	SlotW, SlotH         float64
	Margin               float64
	Top                  float64 // slot Y inside the viewport
	Count                int
}

// NewGeometry lays out count slots for a vw x vh viewport:
// SlotW = (vw - 2*margin) / visibleSlots, SlotH = vh * heightRatio and
// Top = SlotH / 10.
func NewGeometry(vw, vh float64, count int, cfg Config) Geometry {
	slotW := (vw - 2*cfg.Margin) / cfg.VisibleSlots
	slotH := vh * cfg.HeightRatio
	return Geometry{
		ViewportW: vw,
		ViewportH: vh,
		SlotW:     slotW,
		SlotH:     slotH,
		Margin:    cfg.Margin,
		Top:       slotH / 10,
		Count:     count,
	}
}

// Stride is the distance between the left edges of neighboring slots.
func (g Geometry) Stride() float64 {
	return g.SlotW + g.Margin
}

// WrapWidth is the length of one full cycle of slides.
func (g Geometry) WrapWidth() float64 {
	return float64(g.Count) * g.Stride()
}

// SlotX is the resting X of slot i before any scrolling.
func (g Geometry) SlotX(i int) float64 {
	return float64(i) * g.Stride()
}

// Valid reports whether the slots have a positive size.
func (g Geometry) Valid() bool {
	return g.SlotW > 0 && g.SlotH > 0 && g.Count > 0
}

// CoversViewport reports whether wrapping can keep the viewport filled: the
// cycle must span the viewport plus one stride on each side, otherwise a gap
// opens while a slide wraps.
func (g Geometry) CoversViewport() bool {
	return g.WrapWidth() >= g.ViewportW+2*g.Stride()
}
