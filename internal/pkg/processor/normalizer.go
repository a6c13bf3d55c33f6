package processor

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/grandmixture/profile-card/internal/entity"
)

// chromaThreshold: pixels with all channels above it count as background.
const chromaThreshold = 240

// Options controls normalization of a fetched layer image.
type Options struct {
	// Width/Height resample the image to exactly this size when both are > 0.
	Width  int
	Height int
	// RemoveBackground applies the near-white chroma key.
	RemoveBackground bool
}

// Normalize converts img to NRGBA, optionally strips a near-white background
// and optionally resizes with Lanczos. Pure function of its inputs.
func Normalize(img image.Image, opts Options) *image.NRGBA {
	out := imaging.Clone(img)

	if opts.RemoveBackground {
		removeBackground(out)
	}

	if opts.Width > 0 && opts.Height > 0 {
		out = imaging.Resize(out, opts.Width, opts.Height, imaging.Lanczos)
	}

	return out
}

// removeBackground makes every near-white or already-transparent pixel fully
// transparent white. This is a crude per-pixel chroma key, not an edge-aware
// matte: light areas inside the subject are stripped too.
func removeBackground(img *image.NRGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		r, g, b, a := img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]
		if (r > chromaThreshold && g > chromaThreshold && b > chromaThreshold) || a == 0 {
			img.Pix[i] = 255
			img.Pix[i+1] = 255
			img.Pix[i+2] = 255
			img.Pix[i+3] = 0
		}
	}
}

// FitRect contain-fits an image of the given size inside box: the result
// preserves aspect ratio, touches the box on one axis and is centered on the
// other.
func FitRect(imgW, imgH int, box entity.LayerRect) entity.LayerRect {
	origRatio := float64(imgW) / float64(imgH)
	boxRatio := float64(box.W) / float64(box.H)

	var w, h int
	if origRatio > boxRatio {
		w = box.W
		h = int(float64(w) / origRatio)
	} else {
		h = box.H
		w = int(float64(h) * origRatio)
	}

	return entity.LayerRect{
		X: box.X + (box.W-w)/2,
		Y: box.Y + (box.H-h)/2,
		W: w,
		H: h,
	}
}
