package carousel

import (
	"math"
	"testing"
)

func TestCoverFit(t *testing.T) {
	tests := []struct {
		name         string
		imgW, imgH   float64
		slotW, slotH float64
		want         Cover
	}{
		{"wide image crops sides", 1200, 700, 400, 576, Cover{
			Scale: 576.0 / 700, Left: (400 - 1200*576.0/700) / 2, Top: 0,
			Width: 1200 * 576.0 / 700, Height: 576,
		}},
		{"tall image crops top and bottom", 640, 960, 400, 200, Cover{
			Scale: 400.0 / 640, Left: 0, Top: (200 - 960*400.0/640) / 2,
			Width: 400, Height: 600,
		}},
		{"exact fit", 400, 576, 400, 576, Cover{Scale: 1, Width: 400, Height: 576}},
		{"upscale small image", 100, 100, 400, 200, Cover{Scale: 4, Top: -100, Width: 400, Height: 400}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CoverFit(tt.imgW, tt.imgH, tt.slotW, tt.slotH)
			assertNear(t, "Scale", got.Scale, tt.want.Scale)
			assertNear(t, "Left", got.Left, tt.want.Left)
			assertNear(t, "Top", got.Top, tt.want.Top)
			assertNear(t, "Width", got.Width, tt.want.Width)
			assertNear(t, "Height", got.Height, tt.want.Height)
		})
	}
}

func TestCoverFitFillsSlot(t *testing.T) {
	const slotW, slotH = 400.0, 576.0
	for iw := 50.0; iw <= 4000; iw += 173 {
		for ih := 50.0; ih <= 4000; ih += 191 {
			c := CoverFit(iw, ih, slotW, slotH)
			if c.Width < slotW-1e-9 || c.Height < slotH-1e-9 {
				t.Fatalf("%vx%v: scaled %vx%v does not cover %vx%v", iw, ih, c.Width, c.Height, slotW, slotH)
			}
			if math.Abs(c.Width-slotW) > 1e-9 && math.Abs(c.Height-slotH) > 1e-9 {
				t.Fatalf("%vx%v: neither axis fits exactly (%vx%v)", iw, ih, c.Width, c.Height)
			}
			// Centered: equal overflow on both sides.
			if math.Abs(c.Left*2+c.Width-slotW) > 1e-9 || math.Abs(c.Top*2+c.Height-slotH) > 1e-9 {
				t.Fatalf("%vx%v: not centered: %+v", iw, ih, c)
			}
			if math.Abs(c.Width/c.Height-iw/ih) > 1e-9 {
				t.Fatalf("%vx%v: aspect ratio changed", iw, ih)
			}
		}
	}
}

func TestCoverFitDegenerate(t *testing.T) {
	for _, in := range [][4]float64{
		{0, 100, 400, 576},
		{100, 0, 400, 576},
		{100, 100, 0, 576},
		{100, 100, 400, -1},
	} {
		if got := CoverFit(in[0], in[1], in[2], in[3]); got != (Cover{}) {
			t.Errorf("CoverFit%v = %+v, want zero", in, got)
		}
	}
}
