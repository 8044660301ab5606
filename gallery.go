package carousel

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

var (
	// ErrNoImages is returned when a gallery is built from an empty list.
	ErrNoImages = errors.New("carousel: no images")
	// ErrTooFewSlides is returned by the scrolling variants when the slides
	// cannot span the viewport plus one slot on each side.
	ErrTooFewSlides = errors.New("carousel: too few slides to fill the viewport")
)

// defaultMapSize is the edge length of the generated displacement map.
const defaultMapSize = 256

// Gallery is a horizontal row of cover-cropped slides attached to a Scene.
// In the scrolling variants the wheel drives a smoothed velocity that moves
// every slide, and slides wrap around so the row never ends. The distort
// variant also displaces the whole view in proportion to the velocity.
type Gallery struct {
	scene *Scene
	cfg   Config
	geom  Geometry

	view     *Node
	viewMask *Node
	backdrop *Node
	filter   *DisplacementFilter

	slides []*Slide
	byNode map[*Node]*Slide

	scroll     ScrollState
	smoothing  SmoothingParams
	distortion float64
	hover      *hoverTracker
	handles    []CallbackHandle
}

// NewGallery lays images out in slots for a vw x vh viewport and adds the
// gallery to scene's root. Zero Config fields take their defaults.
func NewGallery(scene *Scene, images []*ebiten.Image, vw, vh float64, cfg Config) (*Gallery, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, ErrNoImages
	}
	geom, err := checkGeometry(vw, vh, len(images), cfg)
	if err != nil {
		return nil, err
	}

	g := &Gallery{
		scene:     scene,
		cfg:       cfg,
		geom:      geom,
		byNode:    make(map[*Node]*Slide, len(images)),
		smoothing: cfg.smoothing(),
		hover:     newHoverTracker(cfg),
	}

	g.view = NewContainer("gallery")
	g.view.Interactable = true
	g.view.OnUpdate = func(dt float64) { g.Update(float32(dt)) }

	if cfg.Background.A > 0 {
		g.backdrop = NewRect("gallery-background", vw, vh, cfg.Background)
		g.view.AddChild(g.backdrop)
	}

	if cfg.Variant == VariantDistort {
		dm := cfg.DisplacementMap
		if dm == nil {
			dm = ebiten.NewImageFromImage(NewDisplacementMap(defaultMapSize, defaultMapSize, 1))
		}
		// The view is clipped to the viewport so the filter works on a
		// screen-sized image however long the row is.
		g.viewMask = NewRect("gallery-viewport", vw, vh, ColorWhite)
		g.view.SetMask(g.viewMask)
		g.filter = NewDisplacementFilter(dm, 0)
		g.view.Filters = []Filter{g.filter}
	}

	g.slides = make([]*Slide, len(images))
	for i, img := range images {
		s := newSlide(i, img)
		s.layout(geom)
		s.Node.X = geom.SlotX(i)
		if cfg.FadeIn > 0 {
			s.Node.Alpha = 0
			s.fade = TweenAlpha(s.Node, 1, cfg.FadeIn, ease.OutQuad)
		}
		g.slides[i] = s
		g.byNode[s.Node] = s
		g.view.AddChild(s.Node)
	}

	if cfg.Variant.scrolls() {
		scene.WheelNotch = cfg.WheelNotch
		g.handles = append(g.handles,
			scene.OnWheel(func(ctx WheelContext) { g.Impulse(ctx.Delta) }),
			scene.OnPointerEnter(func(ctx PointerContext) {
				if s := g.byNode[ctx.Node]; s != nil {
					g.hover.enter(s)
				}
			}),
			scene.OnPointerLeave(func(ctx PointerContext) {
				if s := g.byNode[ctx.Node]; s != nil {
					g.hover.leave(s)
				}
			}),
		)
	}

	scene.Root().AddChild(g.view)
	return g, nil
}

func checkGeometry(vw, vh float64, count int, cfg Config) (Geometry, error) {
	geom := NewGeometry(vw, vh, count, cfg)
	if !geom.Valid() {
		return geom, fmt.Errorf("%w: viewport %vx%v leaves no room for slots", ErrInvalidConfig, vw, vh)
	}
	if cfg.Variant.scrolls() && !geom.CoversViewport() {
		return geom, fmt.Errorf("%w: %d slides span %.0fpx, need %.0fpx",
			ErrTooFewSlides, count, geom.WrapWidth(), geom.ViewportW+2*geom.Stride())
	}
	return geom, nil
}

// Impulse feeds a wheel delta, in wheel pixels, into the scroll. The grid
// variant ignores it.
func (g *Gallery) Impulse(wheelDelta float64) {
	if !g.cfg.Variant.scrolls() {
		return
	}
	g.scroll.Impulse(wheelDelta, g.cfg.WheelDivisor)
}

// Update advances the gallery by one frame. It is called from the scene's
// update pass; callers driving a Gallery without a Scene loop may call it
// directly.
func (g *Gallery) Update(dt float32) {
	for _, s := range g.slides {
		if s.fade == nil {
			continue
		}
		s.fade.Update(dt)
		if s.fade.Done {
			s.fade = nil
		}
	}
	if !g.cfg.Variant.scrolls() {
		return
	}

	v := g.scroll.Step(g.smoothing)
	W := g.geom.WrapWidth()
	for _, s := range g.slides {
		s.Node.X = Wrap(v, s.Node.X, g.geom.SlotW, g.geom.Margin, W)
		s.Node.MarkDirty()
	}

	g.distortion = Distortion(v, g.cfg.DistortionGain)
	if g.filter != nil {
		g.filter.ScaleX = g.distortion
	}

	g.hover.update(dt)
}

// Resize recomputes the layout for a new viewport. Slides keep their place
// in the cycle: positions are rescaled by the ratio of the new stride to the
// old. On error the previous layout is kept.
func (g *Gallery) Resize(vw, vh float64) error {
	geom, err := checkGeometry(vw, vh, len(g.slides), g.cfg)
	if err != nil {
		return fmt.Errorf("resize gallery: %w", err)
	}
	ratio := geom.Stride() / g.geom.Stride()
	for _, s := range g.slides {
		s.layout(geom)
		if g.cfg.Variant.scrolls() {
			s.Node.X *= ratio
		} else {
			s.Node.X = geom.SlotX(s.Index)
		}
	}
	if g.backdrop != nil {
		g.backdrop.SetScale(vw, vh)
	}
	if g.viewMask != nil {
		g.viewMask.SetScale(vw, vh)
	}
	g.geom = geom
	return nil
}

// SetDisplacementMap replaces the map used by the distort variant. It has
// no effect in the other variants.
func (g *Gallery) SetDisplacementMap(img *ebiten.Image) {
	if g.filter != nil {
		g.filter.Map = img
	}
}

// Velocity returns the current scroll velocity in pixels per frame.
func (g *Gallery) Velocity() float64 { return g.scroll.Velocity }

// Distortion returns the displacement applied on the last frame.
func (g *Gallery) Distortion() float64 { return g.distortion }

// Slides returns the slides in input order. The slice must not be modified.
func (g *Gallery) Slides() []*Slide { return g.slides }

// Geometry returns the current slot layout.
func (g *Gallery) Geometry() Geometry { return g.geom }

// Config returns the configuration with defaults applied.
func (g *Gallery) Config() Config { return g.cfg }

// View returns the container holding every slide.
func (g *Gallery) View() *Node { return g.view }

// Hovered reports whether slide i is under the pointer.
func (g *Gallery) Hovered(i int) bool { return g.hover.hovered(i) }

// Dispose detaches the gallery from its scene and unregisters its input
// handlers.
func (g *Gallery) Dispose() {
	for _, h := range g.handles {
		h.Remove()
	}
	g.handles = nil
	g.view.Dispose()
	g.slides = nil
	clear(g.byNode)
}
