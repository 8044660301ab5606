package carousel

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// NewStatsWidget creates a sprite that shows FPS, TPS and, when g is not nil,
// the gallery's scroll velocity and distortion. It redraws about twice a
// second and is not interactable.
func NewStatsWidget(g *Gallery) *Node {
	img := ebiten.NewImage(160, 64)
	node := NewSprite("stats_widget", img)

	var elapsed float64
	node.OnUpdate = func(dt float64) {
		elapsed += dt
		if elapsed < 0.5 {
			return
		}
		elapsed = 0

		img.Clear()
		img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(img, statsText(ebiten.ActualFPS(), ebiten.ActualTPS(), g))
	}
	return node
}

func statsText(fps, tps float64, g *Gallery) string {
	text := fmt.Sprintf("FPS: %.1f\nTPS: %.1f", fps, tps)
	if g != nil {
		text += fmt.Sprintf("\nVel: %.2f\nDist: %.2f", g.Velocity(), g.Distortion())
	}
	return text
}
