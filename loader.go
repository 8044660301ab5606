package carousel

import (
	"context"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"math"
	"math/rand/v2"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp" // Register BMP decoder
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // Register WebP decoder
	"golang.org/x/sync/errgroup"
)

// ImageExtensions lists the file extensions ScanImages accepts.
var ImageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	".webp": true, ".bmp": true,
}

// ScanImages returns the paths of the image files directly inside dir, in
// lexical order.
func ScanImages(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ImageExtensions[strings.ToLower(path.Ext(e.Name()))] {
			paths = append(paths, path.Join(dir, e.Name()))
		}
	}
	return paths, nil
}

// LoadImages decodes every path concurrently and returns the images in the
// order of paths. The first failure cancels the loads that have not started
// and is returned wrapped with its path.
func LoadImages(ctx context.Context, fsys fs.FS, paths []string) ([]image.Image, error) {
	if len(paths) == 0 {
		return nil, ErrNoImages
	}
	imgs := make([]image.Image, len(paths))
	eg, ctx := errgroup.WithContext(ctx)
	for i, p := range paths {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := decodeFile(fsys, p)
			if err != nil {
				return err
			}
			imgs[i] = img
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return imgs, nil
}

func decodeFile(fsys fs.FS, p string) (image.Image, error) {
	f, err := fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", p, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", p, err)
	}
	return img, nil
}

// LoadDisplacementMap decodes a single displacement map.
func LoadDisplacementMap(fsys fs.FS, p string) (image.Image, error) {
	return decodeFile(fsys, p)
}

// FitWithin returns img downscaled so neither edge exceeds maxEdge, keeping
// the aspect ratio. Smaller images, and maxEdge <= 0, return img unchanged.
// Slots are a fraction of the viewport, so multi-megapixel photos only cost
// texture memory.
func FitWithin(img image.Image, maxEdge int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxEdge <= 0 || (w <= maxEdge && h <= maxEdge) {
		return img
	}
	scale := float64(maxEdge) / float64(max(w, h))
	nw := max(int(math.Round(float64(w)*scale)), 1)
	nh := max(int(math.Round(float64(h)*scale)), 1)
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// ToEbiten uploads decoded images to the GPU. It must be called from the
// goroutine that runs the game, or before the game starts.
func ToEbiten(imgs []image.Image) []*ebiten.Image {
	out := make([]*ebiten.Image, len(imgs))
	for i, img := range imgs {
		out[i] = ebiten.NewImageFromImage(img)
	}
	return out
}

// NewDisplacementMap generates a smooth w x h displacement map that tiles
// seamlessly. Red and green carry the x and y offsets around the neutral
// 0.5; the same seed always yields the same map.
func NewDisplacementMap(w, h int, seed uint64) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	if w <= 0 || h <= 0 {
		return img
	}

	// Integer frequencies keep every wave periodic over the map.
	type wave struct{ fx, fy, phase float64 }
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	var waves [2][4]wave
	for c := range waves {
		for k := range waves[c] {
			waves[c][k] = wave{
				fx:    float64(rng.IntN(4) + 1),
				fy:    float64(rng.IntN(4) + 1),
				phase: rng.Float64() * 2 * math.Pi,
			}
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			u := float64(x) / float64(w) * 2 * math.Pi
			v := float64(y) / float64(h) * 2 * math.Pi
			var ch [2]float64
			for c := range waves {
				for _, wv := range waves[c] {
					ch[c] += math.Sin(wv.fx*u + wv.fy*v + wv.phase)
				}
				ch[c] = 0.5 + ch[c]/float64(2*len(waves[c]))
			}
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(math.Round(clamp01(ch[0]) * 255)),
				G: uint8(math.Round(clamp01(ch[1]) * 255)),
				B: 128,
				A: 255,
			})
		}
	}
	return img
}
