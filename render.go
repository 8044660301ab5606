package carousel

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// drawStats holds per-frame draw metrics. Only read in debug mode.
type drawStats struct {
	drawCalls  int
	offscreens int
	culled     int
}

// geoM converts an affine matrix to an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// drawNode draws n and its subtree into target. transform maps n's parent
// space to target pixels.
func (s *Scene) drawNode(target *ebiten.Image, n *Node, parentTransform [6]float64, parentAlpha float64, stats *drawStats) {
	if !n.Visible {
		return
	}
	transform := multiplyAffine(parentTransform, computeLocalTransform(n))
	alpha := parentAlpha * n.Alpha

	// Masked and filtered nodes render their subtree offscreen and draw the
	// result as one image.
	if n.mask != nil || len(n.Filters) > 0 {
		s.drawSpecialNode(target, n, transform, alpha, stats)
		return
	}

	s.drawSprite(target, n, transform, alpha, stats)
	for _, child := range n.children {
		s.drawNode(target, child, transform, alpha, stats)
	}
}

// drawSprite draws a sprite node's own image. Containers draw nothing.
func (s *Scene) drawSprite(target *ebiten.Image, n *Node, transform [6]float64, alpha float64, stats *drawStats) {
	if n.Type != NodeTypeSprite || n.Image == nil {
		return
	}
	op := &s.drawOp
	op.GeoM = geoM(transform)
	op.ColorScale.Reset()
	a := float32(n.Color.A * alpha)
	op.ColorScale.Scale(float32(n.Color.R)*a, float32(n.Color.G)*a, float32(n.Color.B)*a, a)
	op.Blend = BlendNormal.EbitenBlend()
	op.Filter = ebiten.FilterLinear
	target.DrawImage(n.Image, op)
	stats.drawCalls++
}

// drawSpecialNode renders a masked or filtered node through pooled offscreen
// images: subtree, then mask, then filter chain, then one composite draw.
func (s *Scene) drawSpecialNode(target *ebiten.Image, n *Node, transform [6]float64, alpha float64, stats *drawStats) {
	bounds := subtreeBounds(n)
	padding := float64(filterChainPadding(n.Filters))
	bounds.X -= padding
	bounds.Y -= padding
	bounds.Width += padding * 2
	bounds.Height += padding * 2

	// Skip work for subtrees that land entirely outside the target.
	tb := target.Bounds()
	screen := transformRect(transform, bounds)
	if !screen.Intersects(Rect{X: float64(tb.Min.X), Y: float64(tb.Min.Y), Width: float64(tb.Dx()), Height: float64(tb.Dy())}) {
		stats.culled++
		return
	}

	w := int(math.Ceil(bounds.Width))
	h := int(math.Ceil(bounds.Height))
	if w <= 0 || h <= 0 {
		return
	}

	// RT pixel (0,0) is local (bounds.X, bounds.Y).
	offset := [6]float64{1, 0, 0, 1, -bounds.X, -bounds.Y}

	result := s.rtPool.Acquire(w, h)
	stats.offscreens++
	s.drawSprite(result, n, offset, 1, stats)
	for _, child := range n.children {
		s.drawNode(result, child, offset, 1, stats)
	}

	if n.mask != nil {
		maskRT := s.rtPool.Acquire(w, h)
		stats.offscreens++
		s.drawNode(maskRT, n.mask, offset, 1, stats)
		var op ebiten.DrawImageOptions
		op.Blend = BlendMask.EbitenBlend()
		result.DrawImage(maskRT, &op)
		s.rtPool.Release(maskRT)
	}

	if len(n.Filters) > 0 {
		filtered := applyFilters(n.Filters, result, &s.rtPool)
		if filtered != result {
			s.rtPool.Release(result)
			result = filtered
		}
	}

	composite := multiplyAffine(transform, [6]float64{1, 0, 0, 1, bounds.X, bounds.Y})
	op := &s.drawOp
	op.GeoM = geoM(composite)
	op.ColorScale.Reset()
	a := float32(alpha)
	op.ColorScale.Scale(a, a, a, a)
	op.Blend = BlendNormal.EbitenBlend()
	op.Filter = ebiten.FilterLinear
	target.DrawImage(result, op)
	stats.drawCalls++

	// Later draws into a reacquired image are ordered after this one.
	s.rtPool.Release(result)
}
