package carousel

import (
	"errors"
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	testVW = 1300.0
	testVH = 720.0
	testDT = float32(1.0 / 60)
)

func testImages(n int) []*ebiten.Image {
	imgs := make([]*ebiten.Image, n)
	for i := range imgs {
		if i%2 == 0 {
			imgs[i] = ebiten.NewImage(64, 96)
		} else {
			imgs[i] = ebiten.NewImage(120, 70)
		}
	}
	return imgs
}

func newTestGallery(t *testing.T, v Variant, n int) (*Scene, *Gallery) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Variant = v
	cfg.FadeIn = -1
	s := NewScene()
	g, err := NewGallery(s, testImages(n), testVW, testVH, cfg)
	if err != nil {
		t.Fatalf("NewGallery: %v", err)
	}
	return s, g
}

// frame runs one scene frame. Without injected input the pointer stays
// where it was, like a mouse left alone.
func frame(s *Scene) {
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	if !s.processInjectedInput() && s.pointer.seen {
		s.processPointer(s.pointer.x, s.pointer.y)
	}
	updateNodes(s.root, float64(testDT))
}

// Tweens run in float32.
const tweenEpsilon = 1e-6

func TestNewGalleryLayout(t *testing.T) {
	_, g := newTestGallery(t, VariantScroll, 10)
	if len(g.Slides()) != 10 {
		t.Fatalf("len(Slides()) = %d, want 10", len(g.Slides()))
	}
	for i, sl := range g.Slides() {
		if sl.Index != i {
			t.Errorf("slide %d: Index = %d", i, sl.Index)
		}
		assertNear(t, "X", sl.X(), 450*float64(i))
		assertNear(t, "Y", sl.Node.Y, 57.6)
		hr, ok := sl.Node.HitShape.(HitRect)
		if !ok || hr.Width != 400 || hr.Height != 576 {
			t.Errorf("slide %d: HitShape = %#v", i, sl.Node.HitShape)
		}
		if m := sl.Node.Mask(); m == nil || m.ScaleX != 400 || m.ScaleY != 576 {
			t.Errorf("slide %d: mask not slot sized", i)
		}
		assertNear(t, "PivotX", sl.Frame.PivotX, 200)
		assertNear(t, "PivotY", sl.Frame.PivotY, 288)
		if sl.Cover.Width < 400-epsilon || sl.Cover.Height < 576-epsilon {
			t.Errorf("slide %d: cover %+v does not fill slot", i, sl.Cover)
		}
		assertNear(t, "sprite scale", sl.Sprite.ScaleX, sl.Cover.Scale)
		assertNear(t, "sprite left", sl.Sprite.X, sl.Cover.Left)
	}
}

func TestNewGalleryErrors(t *testing.T) {
	s := NewScene()
	tests := []struct {
		name string
		imgs []*ebiten.Image
		cfg  Config
		vw   float64
		want error
	}{
		{"no images", nil, DefaultConfig(), testVW, ErrNoImages},
		{"too few to scroll", testImages(3), Config{Variant: VariantScroll}, testVW, ErrTooFewSlides},
		{"too few to distort", testImages(4), Config{Variant: VariantDistort}, testVW, ErrTooFewSlides},
		{"bad config", testImages(10), Config{Variant: VariantScroll, Lerp: 2}, testVW, ErrInvalidConfig},
		{"viewport too narrow", testImages(10), Config{Variant: VariantGrid}, 80, ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGallery(s, tt.imgs, tt.vw, testVH, tt.cfg)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
	if s.Root().NumChildren() != 0 {
		t.Errorf("failed builds attached %d nodes", s.Root().NumChildren())
	}
}

func TestGridAllowsFewSlides(t *testing.T) {
	_, g := newTestGallery(t, VariantGrid, 3)
	if len(g.Slides()) != 3 {
		t.Fatalf("len(Slides()) = %d", len(g.Slides()))
	}
}

func TestGridIgnoresWheel(t *testing.T) {
	s, g := newTestGallery(t, VariantGrid, 10)
	s.InjectWheel(-300)
	frame(s)
	assertNear(t, "Velocity", g.Velocity(), 0)
	for i, sl := range g.Slides() {
		assertNear(t, "X", sl.X(), 450*float64(i))
	}
}

func TestScrollFirstFrame(t *testing.T) {
	s, g := newTestGallery(t, VariantScroll, 10)
	s.InjectWheel(-300)
	frame(s)
	assertNear(t, "Velocity", g.Velocity(), -9)
	assertNear(t, "slide 0", g.Slides()[0].X(), -9)
	assertNear(t, "slide 9", g.Slides()[9].X(), 4041)
	// Only the distort variant reports a filter, but the value is tracked.
	assertNear(t, "Distortion", g.Distortion(), -18)
}

func TestScrollWrapsEveryFrame(t *testing.T) {
	s, g := newTestGallery(t, VariantScroll, 10)
	geom := g.Geometry()
	lo, hi := -geom.SlotW-geom.Margin, geom.WrapWidth()-geom.SlotW-geom.Margin
	for f := 0; f < 400; f++ {
		if f%20 == 0 {
			s.InjectWheel(-1200)
		}
		frame(s)
		for _, sl := range g.Slides() {
			if sl.X() < lo || sl.X() >= hi {
				t.Fatalf("frame %d: slide %d at %v outside [%v, %v)", f, sl.Index, sl.X(), lo, hi)
			}
		}
	}
}

func TestScrollKeepsSpacing(t *testing.T) {
	s, g := newTestGallery(t, VariantScroll, 10)
	s.InjectWheel(-2400)
	for f := 0; f < 60; f++ {
		frame(s)
	}
	W := g.Geometry().WrapWidth()
	for i, sl := range g.Slides() {
		next := g.Slides()[(i+1)%10]
		gap := math.Mod(next.X()-sl.X()+W, W)
		if math.Abs(gap-450) > 1e-6 {
			t.Errorf("gap between %d and %d = %v, want 450", i, (i+1)%10, gap)
		}
	}
}

func TestScrollComesToRest(t *testing.T) {
	s, g := newTestGallery(t, VariantScroll, 10)
	s.InjectWheel(360)
	for f := 0; f < 300; f++ {
		frame(s)
	}
	if g.Velocity() != 0 {
		t.Errorf("Velocity = %v, want 0", g.Velocity())
	}
	before := g.Slides()[0].X()
	frame(s)
	assertNear(t, "X at rest", g.Slides()[0].X(), before)
}

func TestDistortDrivesFilter(t *testing.T) {
	s, g := newTestGallery(t, VariantDistort, 10)
	if g.filter == nil || len(g.View().Filters) != 1 {
		t.Fatal("distort variant has no displacement filter")
	}
	if g.View().Mask() == nil {
		t.Fatal("distort view is not clipped to the viewport")
	}
	s.InjectWheel(-300)
	frame(s)
	assertNear(t, "ScaleX", g.filter.ScaleX, -18)
	assertNear(t, "ScaleY", g.filter.ScaleY, 0)
	for f := 0; f < 300; f++ {
		frame(s)
	}
	assertNear(t, "ScaleX at rest", g.filter.ScaleX, 0)
	if g.filter.Active() {
		t.Error("filter still active at rest")
	}
}

func TestScrollVariantHasNoFilter(t *testing.T) {
	_, g := newTestGallery(t, VariantScroll, 10)
	if g.filter != nil || len(g.View().Filters) != 0 {
		t.Error("scroll variant should not filter")
	}
}

func TestHoverScalesSlide(t *testing.T) {
	s, g := newTestGallery(t, VariantScroll, 10)
	sl := g.Slides()[1] // x 450..850

	s.InjectMove(600, 300)
	frame(s)
	if !g.Hovered(1) {
		t.Fatal("slide 1 not hovered")
	}
	if g.Hovered(0) || g.Hovered(2) {
		t.Error("neighbors hovered")
	}

	for f := 0; f < 120; f++ {
		frame(s)
	}
	if math.Abs(sl.Frame.ScaleX-1.1) > tweenEpsilon {
		t.Errorf("hover ScaleX = %v, want 1.1", sl.Frame.ScaleX)
	}

	s.InjectMove(10, 700) // below the slots
	frame(s)
	if g.Hovered(1) {
		t.Fatal("slide 1 still hovered")
	}
	mid := sl.Frame.ScaleX
	if mid <= 1 || mid > 1.1+tweenEpsilon {
		t.Errorf("leave should start from the hovered scale, got %v", mid)
	}
	for f := 0; f < 120; f++ {
		frame(s)
	}
	assertNear(t, "rest ScaleX", sl.Frame.ScaleX, 1)
}

func TestHoverReverseMidway(t *testing.T) {
	s, g := newTestGallery(t, VariantScroll, 10)
	sl := g.Slides()[0]
	s.InjectMove(100, 300)
	for f := 0; f < 20; f++ {
		frame(s)
	}
	peak := sl.Frame.ScaleX
	if peak <= 1 || peak >= 1.1 {
		t.Fatalf("mid-tween scale = %v", peak)
	}
	s.InjectMove(10, 700)
	frame(s)
	if sl.Frame.ScaleX > peak {
		t.Errorf("scale jumped from %v to %v on leave", peak, sl.Frame.ScaleX)
	}
}

func TestHoverFollowsSlidesUnderStillPointer(t *testing.T) {
	s, g := newTestGallery(t, VariantScroll, 10)
	s.InjectMove(100, 300)
	frame(s)
	if !g.Hovered(0) {
		t.Fatal("slide 0 not hovered")
	}
	s.InjectWheel(-3000)
	for f := 0; f < 60 && g.Hovered(0); f++ {
		frame(s)
	}
	if g.Hovered(0) {
		t.Fatal("slide 0 still hovered after scrolling away")
	}
	hovered := 0
	for i := range g.Slides() {
		if g.Hovered(i) {
			hovered++
		}
	}
	if hovered > 1 {
		t.Errorf("%d slides hovered at once", hovered)
	}
}

func TestGridHasNoHover(t *testing.T) {
	s, g := newTestGallery(t, VariantGrid, 10)
	s.InjectMove(600, 300)
	frame(s)
	if g.Hovered(1) {
		t.Error("grid variant reacted to hover")
	}
}

func TestResizeKeepsPhase(t *testing.T) {
	s, g := newTestGallery(t, VariantScroll, 10)
	s.InjectWheel(-600)
	for f := 0; f < 10; f++ {
		frame(s)
	}
	before := make([]float64, 10)
	for i, sl := range g.Slides() {
		before[i] = sl.X()
	}
	if err := g.Resize(2600, 1440); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	geom := g.Geometry()
	assertNear(t, "SlotW", geom.SlotW, 833.3333333333334)
	ratio := geom.Stride() / 450
	for i, sl := range g.Slides() {
		assertNear(t, "X", sl.X(), before[i]*ratio)
		if m := sl.Node.Mask(); m.ScaleX != geom.SlotW || m.ScaleY != geom.SlotH {
			t.Errorf("slide %d mask = %vx%v", i, m.ScaleX, m.ScaleY)
		}
	}
}

func TestResizeGridResetsSlots(t *testing.T) {
	_, g := newTestGallery(t, VariantGrid, 4)
	if err := g.Resize(700, 400); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	for i, sl := range g.Slides() {
		assertNear(t, "X", sl.X(), g.Geometry().SlotX(i))
		assertNear(t, "Y", sl.Node.Y, g.Geometry().Top)
	}
}

func TestResizeFailureKeepsLayout(t *testing.T) {
	_, g := newTestGallery(t, VariantScroll, 10)
	old := g.Geometry()
	err := g.Resize(80, 720)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
	if g.Geometry() != old {
		t.Error("geometry changed after a failed resize")
	}
}

func TestFadeIn(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FadeIn = 0.5
	s := NewScene()
	g, err := NewGallery(s, testImages(10), testVW, testVH, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if a := g.Slides()[0].Node.Alpha; a != 0 {
		t.Fatalf("initial alpha = %v, want 0", a)
	}
	for f := 0; f < 60; f++ {
		frame(s)
	}
	for i, sl := range g.Slides() {
		if math.Abs(sl.Node.Alpha-1) > 1e-3 {
			t.Errorf("slide %d alpha = %v after fade", i, sl.Node.Alpha)
		}
	}
}

func TestBackgroundBackdrop(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Variant = VariantGrid
	cfg.Background = Color{R: 0.1, G: 0.1, B: 0.1, A: 1}
	s := NewScene()
	g, err := NewGallery(s, testImages(3), testVW, testVH, cfg)
	if err != nil {
		t.Fatal(err)
	}
	first := g.View().Children()[0]
	if first != g.backdrop || first.ScaleX != testVW || first.ScaleY != testVH {
		t.Error("backdrop is not the first, viewport-sized child")
	}
}

func TestWheelNotchFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WheelNotch = 100
	s := NewScene()
	if _, err := NewGallery(s, testImages(10), testVW, testVH, cfg); err != nil {
		t.Fatal(err)
	}
	assertNear(t, "WheelNotch", s.WheelNotch, 100)
}

func TestDispose(t *testing.T) {
	s, g := newTestGallery(t, VariantScroll, 10)
	view := g.View()
	g.Dispose()
	if !view.IsDisposed() || s.Root().NumChildren() != 0 {
		t.Error("view not removed from scene")
	}
	if len(s.handlers.wheel) != 0 || len(s.handlers.pointerEnter) != 0 || len(s.handlers.pointerLeave) != 0 {
		t.Error("handlers still registered")
	}
	s.InjectWheel(-300)
	frame(s)
	assertNear(t, "Velocity", g.Velocity(), 0)
}
