package carousel

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// ErrInvalidConfig is returned (wrapped) by Config.Validate.
var ErrInvalidConfig = errors.New("carousel: invalid config")

// Config controls gallery layout and motion. Zero fields take the values of
// DefaultConfig.
type Config struct {
	Variant Variant

	// Layout
	Margin       float64 // gap between slots and at the viewport edges
	VisibleSlots float64 // slots that fit across the viewport
	HeightRatio  float64 // slot height as a fraction of the viewport height

	// Scrolling
	Lerp          float64 // see SmoothingParams.Lerp
	Friction      float64 // see SmoothingParams.Friction
	RestThreshold float64 // see SmoothingParams.RestThreshold
	WheelDivisor  float64 // target velocity = wheel delta / WheelDivisor
	WheelNotch    float64 // wheel pixels per Ebitengine wheel notch

	// Distortion
	DistortionGain float64

	// Hover
	HoverScale    float64
	HoverDuration float32 // seconds
	HoverEase     ease.TweenFunc

	// Background fills the screen behind the slots. A zero alpha keeps the
	// scene's clear color.
	Background Color

	// DisplacementMap drives the distort variant. Nil uses a generated noise
	// map.
	DisplacementMap *ebiten.Image

	// FadeIn is the duration, in seconds, of the slide fade-in after
	// construction. Negative disables it.
	FadeIn float32
}

// DefaultConfig returns the distort variant with the stock layout: a 50px
// margin, three slots across, slots 80% of the viewport height.
func DefaultConfig() Config {
	sm := DefaultSmoothing()
	return Config{
		Variant:        VariantDistort,
		Margin:         50,
		VisibleSlots:   3,
		HeightRatio:    0.8,
		Lerp:           sm.Lerp,
		Friction:       sm.Friction,
		RestThreshold:  sm.RestThreshold,
		WheelDivisor:   3,
		WheelNotch:     DefaultWheelNotch,
		DistortionGain: DefaultDistortionGain,
		HoverScale:     1.1,
		HoverDuration:  1.5,
		HoverEase:      ease.OutCubic,
		FadeIn:         0.5,
	}
}

// withDefaults fills zero fields from DefaultConfig. Variant is kept as is;
// its zero value is the grid variant.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Margin == 0 {
		c.Margin = d.Margin
	}
	if c.VisibleSlots == 0 {
		c.VisibleSlots = d.VisibleSlots
	}
	if c.HeightRatio == 0 {
		c.HeightRatio = d.HeightRatio
	}
	if c.Lerp == 0 {
		c.Lerp = d.Lerp
	}
	if c.Friction == 0 {
		c.Friction = d.Friction
	}
	if c.RestThreshold == 0 {
		c.RestThreshold = d.RestThreshold
	}
	if c.WheelDivisor == 0 {
		c.WheelDivisor = d.WheelDivisor
	}
	if c.WheelNotch == 0 {
		c.WheelNotch = d.WheelNotch
	}
	if c.DistortionGain == 0 {
		c.DistortionGain = d.DistortionGain
	}
	if c.HoverScale == 0 {
		c.HoverScale = d.HoverScale
	}
	if c.HoverDuration == 0 {
		c.HoverDuration = d.HoverDuration
	}
	if c.HoverEase == nil {
		c.HoverEase = d.HoverEase
	}
	if c.FadeIn == 0 {
		c.FadeIn = d.FadeIn
	}
	return c
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.Margin < 0:
		return fmt.Errorf("%w: margin %v < 0", ErrInvalidConfig, c.Margin)
	case c.VisibleSlots <= 0:
		return fmt.Errorf("%w: visible slots %v <= 0", ErrInvalidConfig, c.VisibleSlots)
	case c.HeightRatio <= 0 || c.HeightRatio > 1:
		return fmt.Errorf("%w: height ratio %v outside (0, 1]", ErrInvalidConfig, c.HeightRatio)
	case c.Lerp <= 0 || c.Lerp > 1:
		return fmt.Errorf("%w: lerp %v outside (0, 1]", ErrInvalidConfig, c.Lerp)
	case c.Friction < 0 || c.Friction > 1:
		return fmt.Errorf("%w: friction %v outside [0, 1]", ErrInvalidConfig, c.Friction)
	case c.WheelDivisor == 0:
		return fmt.Errorf("%w: wheel divisor is zero", ErrInvalidConfig)
	case c.HoverScale <= 0:
		return fmt.Errorf("%w: hover scale %v <= 0", ErrInvalidConfig, c.HoverScale)
	case c.HoverDuration < 0:
		return fmt.Errorf("%w: hover duration %v < 0", ErrInvalidConfig, c.HoverDuration)
	case c.WheelNotch <= 0:
		return fmt.Errorf("%w: wheel notch %v <= 0", ErrInvalidConfig, c.WheelNotch)
	case c.Variant > VariantDistort:
		return fmt.Errorf("%w: unknown variant %d", ErrInvalidConfig, c.Variant)
	}
	return nil
}

// smoothing returns the scroll parameters carried by the config.
func (c Config) smoothing() SmoothingParams {
	return SmoothingParams{Lerp: c.Lerp, Friction: c.Friction, RestThreshold: c.RestThreshold}
}
