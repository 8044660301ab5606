package carousel

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Filter is the interface for visual effects applied to a node's rendered output.
type Filter interface {
	// Apply renders src into dst with the filter effect.
	Apply(src, dst *ebiten.Image)
	// Padding returns the extra pixels needed around the source to accommodate
	// the effect. Zero means no padding.
	Padding() int
}

// Ebitengine uses premultiplied alpha; the map is un-premultiplied before its
// channels are read as offsets.
const displacementShaderSrc = `//kage:unit pixels
package main

var Scale vec2

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	m := imageSrc1At(src)
	if m.a > 0 {
		m.rgb = m.rgb / m.a
	}
	offset := (m.rg - 0.5) * Scale
	return imageSrc0At(src + offset)
}
`

// Compiled lazily; the scene graph is single-threaded.
var displacementShader *ebiten.Shader

func ensureDisplacementShader() *ebiten.Shader {
	if displacementShader == nil {
		s, err := ebiten.NewShader([]byte(displacementShaderSrc))
		if err != nil {
			panic("carousel: failed to compile displacement shader: " + err.Error())
		}
		displacementShader = s
	}
	return displacementShader
}

// DisplacementFilter offsets every source pixel by the red (x) and green (y)
// channels of a displacement map, scaled by ScaleX and ScaleY pixels. A
// channel value of 0.5 means no offset. The map is tiled at its native size
// across the filtered area, so the effect stays fixed in screen space.
type DisplacementFilter struct {
	Map            *ebiten.Image
	ScaleX, ScaleY float64

	padding    int
	tiled      *ebiten.Image
	tiledFrom  *ebiten.Image
	texW, texH int
	uniforms   map[string]any
	scaleF32   [2]float32
	scaleSlice []float32
	shaderOp   ebiten.DrawRectShaderOptions
	imgOp      ebiten.DrawImageOptions
}

// NewDisplacementFilter creates a displacement filter over the given map.
// padding grows the offscreen area so displaced edges are not clipped.
func NewDisplacementFilter(displacementMap *ebiten.Image, padding int) *DisplacementFilter {
	if padding < 0 {
		padding = 0
	}
	f := &DisplacementFilter{
		Map:      displacementMap,
		padding:  padding,
		uniforms: make(map[string]any, 1),
	}
	f.scaleSlice = f.scaleF32[:]
	f.uniforms["Scale"] = f.scaleSlice
	return f
}

// Active reports whether Apply would displace anything.
func (f *DisplacementFilter) Active() bool {
	return f.Map != nil && (f.ScaleX != 0 || f.ScaleY != 0)
}

// ensureTiled rebuilds the tiled map to match the given dimensions.
// DrawRectShader requires all source images to have the same size.
func (f *DisplacementFilter) ensureTiled(w, h int) {
	if f.tiled != nil && f.texW == w && f.texH == h && f.tiledFrom == f.Map {
		return
	}
	if f.tiled != nil {
		f.tiled.Deallocate()
	}
	f.tiled = ebiten.NewImage(w, h)
	f.texW, f.texH = w, h
	f.tiledFrom = f.Map

	mb := f.Map.Bounds()
	mw, mh := mb.Dx(), mb.Dy()
	if mw <= 0 || mh <= 0 {
		return
	}
	op := &f.imgOp
	for y := 0; y < h; y += mh {
		for x := 0; x < w; x += mw {
			op.GeoM.Reset()
			op.ColorScale.Reset()
			op.GeoM.Translate(float64(x), float64(y))
			f.tiled.DrawImage(f.Map, op)
		}
	}
}

// Apply renders src into dst, displaced by the map. With no map or a zero
// scale it copies src unchanged.
func (f *DisplacementFilter) Apply(src, dst *ebiten.Image) {
	if !f.Active() {
		f.imgOp.GeoM.Reset()
		f.imgOp.ColorScale.Reset()
		dst.DrawImage(src, &f.imgOp)
		return
	}
	shader := ensureDisplacementShader()
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	f.ensureTiled(w, h)
	f.scaleF32[0] = float32(f.ScaleX)
	f.scaleF32[1] = float32(f.ScaleY)
	f.shaderOp.Images[0] = src
	f.shaderOp.Images[1] = f.tiled
	f.shaderOp.Uniforms = f.uniforms
	dst.DrawRectShader(w, h, shader, &f.shaderOp)
}

// Padding returns the padding set at construction time.
func (f *DisplacementFilter) Padding() int { return f.padding }

// filterChainPadding returns the cumulative padding required by a filter chain.
func filterChainPadding(filters []Filter) int {
	pad := 0
	for _, f := range filters {
		pad += f.Padding()
	}
	return pad
}

// applyFilters runs a filter chain on src, ping-ponging between src and one
// pooled scratch image. Returns whichever image holds the final result.
func applyFilters(filters []Filter, src *ebiten.Image, pool *renderTexturePool) *ebiten.Image {
	if len(filters) == 0 {
		return src
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	current := src
	var scratch *ebiten.Image

	for _, f := range filters {
		if scratch == nil {
			scratch = pool.Acquire(w, h)
		} else {
			scratch.Clear()
		}
		f.Apply(current, scratch)
		current, scratch = scratch, current
	}
	if scratch != src {
		pool.Release(scratch)
	}

	return current
}
