package carousel

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color reaches Ebitengine.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint and the default background.
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A)*255 + 0.5),
		G: uint8(clamp01(c.G*c.A)*255 + 0.5),
		B: uint8(clamp01(c.B*c.A)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// WhitePixel is a 1x1 white image. Scaled sprites of it draw solid rectangles,
// which is how slot masks are built.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}

// Rect is an axis-aligned rectangle. Origin top-left, Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// BlendMode selects a compositing operation.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota // source-over
	BlendMask                    // clip destination to source alpha
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendMask:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorZero,
			BlendFactorSourceAlpha:      ebiten.BlendFactorZero,
			BlendFactorDestinationRGB:   ebiten.BlendFactorSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	default:
		return ebiten.BlendSourceOver
	}
}

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypeSprite                    // renders an image
)

// EventType identifies a kind of interaction event.
type EventType uint8

const (
	EventPointerEnter EventType = iota // pointer entered a node's bounds
	EventPointerLeave                  // pointer left a node's bounds
	EventPointerMove                   // pointer moved
	EventWheel                         // wheel scrolled
)

// Variant selects which of the three gallery behaviors is active.
type Variant uint8

const (
	VariantGrid    Variant = iota // static row of cover-cropped slides
	VariantScroll                 // infinite wheel scrolling with hover scaling
	VariantDistort                // VariantScroll plus velocity-driven displacement
)

// String returns the flag spelling of the variant.
func (v Variant) String() string {
	switch v {
	case VariantGrid:
		return "grid"
	case VariantScroll:
		return "scroll"
	case VariantDistort:
		return "distort"
	default:
		return "unknown"
	}
}

// ParseVariant maps "grid", "scroll" or "distort" to a Variant.
func ParseVariant(s string) (Variant, bool) {
	switch s {
	case "grid":
		return VariantGrid, true
	case "scroll":
		return VariantScroll, true
	case "distort":
		return VariantDistort, true
	}
	return 0, false
}

// scrolls reports whether the variant reacts to wheel input.
func (v Variant) scrolls() bool {
	return v == VariantScroll || v == VariantDistort
}
