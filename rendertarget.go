package carousel

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// renderTexturePool manages reusable offscreen images keyed by power-of-two
// dimensions. After warmup, Acquire and Release do not allocate.
type renderTexturePool struct {
	buckets map[uint64][]*ebiten.Image
}

func poolKey(w, h int) uint64 {
	return uint64(w)<<32 | uint64(h)
}

// Acquire returns a cleared offscreen image with at least (w, h) pixels.
func (p *renderTexturePool) Acquire(w, h int) *ebiten.Image {
	pw := nextPowerOfTwo(w)
	ph := nextPowerOfTwo(h)
	key := poolKey(pw, ph)

	if p.buckets != nil {
		if stack := p.buckets[key]; len(stack) > 0 {
			img := stack[len(stack)-1]
			p.buckets[key] = stack[:len(stack)-1]
			img.Clear()
			return img
		}
	}

	return ebiten.NewImageWithOptions(
		image.Rect(0, 0, pw, ph),
		&ebiten.NewImageOptions{Unmanaged: true},
	)
}

// Release returns an image to the pool. It is cleared on the next Acquire.
func (p *renderTexturePool) Release(img *ebiten.Image) {
	if img == nil {
		return
	}
	b := img.Bounds()
	key := poolKey(b.Dx(), b.Dy())

	if p.buckets == nil {
		p.buckets = make(map[uint64][]*ebiten.Image)
	}
	p.buckets[key] = append(p.buckets[key], img)
}

// pooled returns the number of idle images held by the pool.
func (p *renderTexturePool) pooled() int {
	n := 0
	for _, stack := range p.buckets {
		n += len(stack)
	}
	return n
}

// nextPowerOfTwo returns the smallest power of two >= n (minimum 1).
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << int(math.Ceil(math.Log2(float64(n))))
}

// subtreeBounds computes the bounding rectangle of a node and all its
// descendants in the node's local coordinate space. A masked node is bounded
// by its mask, since nothing outside the mask is visible.
func subtreeBounds(n *Node) Rect {
	if n.mask != nil {
		return maskBounds(n.mask)
	}
	var r Rect
	first := true
	subtreeBoundsWalk(n, identityTransform, &r, &first)
	return r
}

func maskBounds(m *Node) Rect {
	var r Rect
	first := true
	subtreeBoundsWalk(m, computeLocalTransform(m), &r, &first)
	return r
}

func subtreeBoundsWalk(n *Node, localTransform [6]float64, bounds *Rect, first *bool) {
	if w, h := nodeDimensions(n); w > 0 && h > 0 {
		addBounds(bounds, first, transformRect(localTransform, Rect{Width: w, Height: h}))
	}

	for _, child := range n.children {
		if !child.Visible {
			continue
		}
		childTransform := multiplyAffine(localTransform, computeLocalTransform(child))
		if child.mask != nil {
			addBounds(bounds, first, transformRect(childTransform, maskBounds(child.mask)))
			continue
		}
		subtreeBoundsWalk(child, childTransform, bounds, first)
	}
}

func addBounds(bounds *Rect, first *bool, r Rect) {
	if *first {
		*bounds = r
		*first = false
		return
	}
	*bounds = rectUnion(*bounds, r)
}

// transformRect returns the axis-aligned box of r after applying m.
func transformRect(m [6]float64, r Rect) Rect {
	x0, y0 := transformPoint(m, r.X, r.Y)
	x1, y1 := transformPoint(m, r.X+r.Width, r.Y)
	x2, y2 := transformPoint(m, r.X, r.Y+r.Height)
	x3, y3 := transformPoint(m, r.X+r.Width, r.Y+r.Height)
	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

func rectUnion(a, b Rect) Rect {
	minX := math.Min(a.X, b.X)
	minY := math.Min(a.Y, b.Y)
	maxX := math.Max(a.X+a.Width, b.X+b.Width)
	maxY := math.Max(a.Y+a.Height, b.Y+b.Height)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
