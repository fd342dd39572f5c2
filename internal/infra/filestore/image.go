package filestore

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"math"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	maxImageSide = 1600
	webpQuality  = 80
)

// Normalize re-encodes JPEG and PNG images as WebP, downscaled to fit
// maxImageSide. Anything else is returned untouched.
func Normalize(name, contentType string, data []byte) (string, string, []byte, error) {
	var (
		img image.Image
		err error
	)

	switch contentType {
	case "image/jpeg":
		img, err = jpeg.Decode(bytes.NewReader(data))
	case "image/png":
		img, err = png.Decode(bytes.NewReader(data))
	default:
		return name, contentType, data, nil
	}
	if err != nil {
		return "", "", nil, fmt.Errorf("decode %s: %w", contentType, err)
	}

	buf := new(bytes.Buffer)
	opts := &webp.Options{Lossless: false, Quality: webpQuality}
	if err := webp.Encode(buf, downscale(img, maxImageSide), opts); err != nil {
		return "", "", nil, fmt.Errorf("encode webp: %w", err)
	}

	base := strings.TrimSuffix(name, filepath.Ext(name))
	return base + ".webp", "image/webp", buf.Bytes(), nil
}

func downscale(src image.Image, maxSide int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxSide && h <= maxSide {
		return src
	}

	scale := math.Min(float64(maxSide)/float64(w), float64(maxSide)/float64(h))
	nw := int(math.Max(1, math.Round(float64(w)*scale)))
	nh := int(math.Max(1, math.Round(float64(h)*scale)))

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
