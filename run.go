package carousel

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// Resizable lets the user resize the window; the gallery is laid out
	// again on every size change.
	Resizable bool
}

// game adapts a Scene and its Gallery to ebiten.Game.
type game struct {
	scene   *Scene
	gallery *Gallery
	w, h    int
}

func (g *game) Update() error {
	g.scene.Update()
	// Screenshots queued by the last step are written by the next Draw.
	if r := g.scene.testRunner; r != nil && r.Done() && len(g.scene.screenshotQueue) == 0 {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		if g.gallery != nil {
			if err := g.gallery.Resize(float64(outsideWidth), float64(outsideHeight)); err != nil {
				// Keep the previous layout; a too-narrow window is transient.
				_, _ = fmt.Fprintf(os.Stderr, "[carousel] %v\n", err)
			}
		}
		g.w, g.h = outsideWidth, outsideHeight
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and drives scene until the window closes or an attached
// test script finishes. gallery may be nil.
func Run(scene *Scene, gallery *Gallery, cfg RunConfig) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	g := &game{scene: scene, gallery: gallery}
	if gallery != nil {
		geom := gallery.Geometry()
		g.w, g.h = int(geom.ViewportW), int(geom.ViewportH)
	}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
