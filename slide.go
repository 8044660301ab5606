package carousel

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Slide is one slot of the gallery. Node is the slot container positioned by
// the scroll; it clips to the slot and receives pointer events. Frame is
// scaled around the slot center on hover and holds the cover-fitted Sprite.
type Slide struct {
	Index  int
	Node   *Node
	Frame  *Node
	Sprite *Node
	Cover  Cover

	mask *Node
	fade *TweenGroup
}

func newSlide(i int, img *ebiten.Image) *Slide {
	s := &Slide{Index: i}
	s.Node = NewContainer(fmt.Sprintf("slide-%d", i))
	s.Node.Interactable = true
	s.Frame = NewContainer(fmt.Sprintf("slide-%d-frame", i))
	s.Sprite = NewSprite(fmt.Sprintf("slide-%d-image", i), img)
	s.mask = NewRect(fmt.Sprintf("slide-%d-mask", i), 1, 1, ColorWhite)

	s.Frame.AddChild(s.Sprite)
	s.Node.AddChild(s.Frame)
	s.Node.SetMask(s.mask)
	return s
}

// layout sizes the slot to g and re-fits the image. X is left to the caller.
func (s *Slide) layout(g Geometry) {
	s.Node.Y = g.Top
	s.Node.HitShape = HitRect{Width: g.SlotW, Height: g.SlotH}
	s.mask.SetScale(g.SlotW, g.SlotH)
	s.Frame.SetPivot(g.SlotW/2, g.SlotH/2)

	var iw, ih float64
	if img := s.Sprite.Image; img != nil {
		b := img.Bounds()
		iw, ih = float64(b.Dx()), float64(b.Dy())
	}
	s.Cover = CoverFit(iw, ih, g.SlotW, g.SlotH)
	s.Sprite.SetPosition(s.Cover.Left, s.Cover.Top)
	s.Sprite.SetScale(s.Cover.Scale, s.Cover.Scale)
	s.Node.MarkDirty()
}

// X returns the slot's current horizontal position.
func (s *Slide) X() float64 {
	return s.Node.X
}
