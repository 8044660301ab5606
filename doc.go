// Package carousel is a horizontal image carousel for [Ebitengine].
//
// Images are laid out in equal slots, three across the viewport by default,
// and cropped to fill their slot without distortion (cover fit). Three
// variants build on each other:
//
//   - [VariantGrid]: a static row of cover-cropped slides.
//   - [VariantScroll]: the mouse wheel drives a smoothed velocity that moves
//     every slide. Slides wrap around so the row never ends. Hovering a slide
//     scales its image up, and leaving scales it back.
//   - [VariantDistort]: as VariantScroll, plus a displacement shader whose
//     strength follows the velocity, so fast scrolling smears the view and
//     the effect settles as the scroll comes to rest.
//
// # Quick start
//
//	imgs, err := carousel.LoadImages(ctx, os.DirFS("photos"), paths)
//	if err != nil {
//		log.Fatal(err)
//	}
//	scene := carousel.NewScene()
//	g, err := carousel.NewGallery(scene, carousel.ToEbiten(imgs), 1280, 720, carousel.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	carousel.Run(scene, g, carousel.RunConfig{Title: "Gallery", Width: 1280, Height: 720})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly. The gallery advances from the
// scene's update pass; call [Gallery.Resize] when the viewport changes.
//
// # Scroll model
//
// A wheel event sets a one-shot target velocity of delta / 3, where delta
// is in wheel pixels (120 per notch). Each frame the velocity moves 10% of
// the way to the target and then loses 10% to friction, and every slide is
// moved by it and wrapped with [Wrap]. The pure pieces ([Wrap],
// [ScrollState], [CoverFit], [Distortion]) have no Ebitengine dependency
// beyond the package and can be tested on their own.
//
// # Scene graph
//
// Rendering goes through a small retained-mode scene graph. Every visual
// element is a [Node]: containers group children, sprites draw an image.
// Masked and filtered nodes are rendered offscreen on pooled images and
// composited in one draw. Scene-level pointer and wheel handlers
// ([Scene.OnPointerEnter], [Scene.OnWheel]) report hits in reverse painter
// order.
//
// # Automation
//
// [Scene.InjectWheel], [Scene.InjectMove] and JSON scripts loaded with
// [LoadTestScript] drive the carousel without a mouse. [Scene.Screenshot]
// writes PNGs for visual checks. [Scene.SetDebugMode] logs per-frame draw
// stats to stderr.
//
// [Ebitengine]: https://ebitengine.org
package carousel
