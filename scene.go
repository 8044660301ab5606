package carousel

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene owns the node tree, input state, automation queues and the offscreen
// image pool. It is driven by calling Update and Draw once per frame.
type Scene struct {
	root  *Node
	debug bool

	// ClearColor fills the screen before drawing. A zero alpha skips the fill.
	ClearColor Color

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	// WheelNotch converts one Ebitengine wheel notch into wheel pixels.
	WheelNotch float64

	rtPool renderTexturePool
	drawOp ebiten.DrawImageOptions

	handlers handlerRegistry
	pointer  pointerState
	hitBuf   []*Node

	injectQueue     []syntheticInput
	testRunner      *TestRunner
	screenshotQueue []string

	lastStats drawStats
	lastDraw  time.Duration
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	root := NewContainer("root")
	root.Interactable = true
	return &Scene{
		root:          root,
		ClearColor:    ColorWhite,
		ScreenshotDir: "screenshots",
		WheelNotch:    DefaultWheelNotch,
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Update advances automation, processes input and runs node OnUpdate
// callbacks, in that order.
func (s *Scene) Update() {
	dt := 1.0 / float64(ebiten.TPS())

	if s.testRunner != nil {
		s.testRunner.step(s)
	}

	// Hit testing needs this frame's transforms.
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	s.processInput()
	updateNodes(s.root, dt)
}

// Draw renders the tree to screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}

	var stats drawStats
	s.drawNode(screen, s.root, identityTransform, 1.0, &stats)
	s.lastStats = stats

	if s.debug {
		s.lastDraw = time.Since(t0)
		s.debugLog(stats, s.lastDraw)
	}

	s.flushScreenshots(screen)
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are printed, and
// per-frame draw stats are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so node
// operations, which lack a Scene pointer, can check it.
var globalDebug bool
