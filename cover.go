package carousel

import "math"

// Cover is a cover-fit placement: the image scaled by Scale to Width x Height
// and drawn at (Left, Top) inside its slot.
type Cover struct {
	Scale         float64
	Left, Top     float64
	Width, Height float64
}

// CoverFit scales an image of size (imgW, imgH) to fill a slot of size
// (slotW, slotH) while keeping its aspect ratio. The overflow is split evenly
// on both sides of the cropped axis, so the image stays centered. Non-positive
// sizes yield the zero Cover.
func CoverFit(imgW, imgH, slotW, slotH float64) Cover {
	if imgW <= 0 || imgH <= 0 || slotW <= 0 || slotH <= 0 {
		return Cover{}
	}
	scale := math.Max(slotW/imgW, slotH/imgH)
	w := imgW * scale
	h := imgH * scale
	return Cover{
		Scale:  scale,
		Left:   (slotW - w) / 2,
		Top:    (slotH - h) / 2,
		Width:  w,
		Height: h,
	}
}
