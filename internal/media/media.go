package media

import (
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

// Bounds for the intermediate fitted variant and the final thumbnail.
const (
	FitWidth    = 800
	FitHeight   = 600
	ThumbWidth  = 400
	ThumbHeight = 300
)

// JPEGQuality is the compression quality for JPEG output.
const JPEGQuality = 85

// ThumbPrefix is prepended to a stored upload's filename to name its thumbnail.
const ThumbPrefix = "thumb_"

// SaveUpload stores an uploaded file in dir under a random
// collision-resistant filename, preserving the original extension.
// The bytes are written unmodified. Returns the stored filename.
func SaveUpload(dir, originalName string, r io.Reader) (string, error) {
	name := uuid.NewString() + filepath.Ext(originalName)
	path := filepath.Join(dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}

	if _, err := io.Copy(dst, r); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("writing upload file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("closing upload file: %w", err)
	}

	return name, nil
}

// Thumbnail derives the thumbnail for a stored upload. Two variants are
// produced from the original: a bounded-fit resize to at most
// FitWidth×FitHeight written to a temporary name, and a cropped-cover
// resize to exactly ThumbWidth×ThumbHeight written to the final
// thumbnail filename. The fitted variant is an artifact of the upstream
// pipeline and is discarded; its removal is guaranteed on every exit
// path, so the end state is always the original plus at most one
// thumbnail. Returns the thumbnail filename.
func Thumbnail(dir, name string) (string, error) {
	src, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("opening original: %w", err)
	}
	img, format, err := image.Decode(src)
	src.Close()
	if err != nil {
		return "", fmt.Errorf("decoding image: %w", err)
	}

	thumbName := ThumbPrefix + name
	thumbPath := filepath.Join(dir, thumbName)
	tmpPath := thumbPath + ".tmp"

	defer os.Remove(tmpPath)
	if err := encodeFile(tmpPath, fit(img, FitWidth, FitHeight), format); err != nil {
		return "", fmt.Errorf("writing fitted variant: %w", err)
	}

	if err := encodeFile(thumbPath, cover(img, ThumbWidth, ThumbHeight), format); err != nil {
		return "", fmt.Errorf("writing thumbnail: %w", err)
	}

	return thumbName, nil
}

// fit resizes the image so it fits within maxW×maxH preserving aspect
// ratio. Uses high-quality Catmull-Rom interpolation. Returns the
// original image if already within bounds.
func fit(img image.Image, maxW, maxH int) image.Image {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	if w <= maxW && h <= maxH {
		return img
	}

	scaleW := float64(maxW) / float64(w)
	scaleH := float64(maxH) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}

	newW := int(float64(w) * scale)
	newH := int(float64(h) * scale)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// cover resizes and center-crops the image to exactly w×h, discarding
// overflow on the longer axis.
func cover(img image.Image, w, h int) image.Image {
	bounds := img.Bounds()
	srcW := bounds.Dx()
	srcH := bounds.Dy()

	// Largest centered region matching the target aspect ratio.
	cropW := srcW
	cropH := srcH
	if srcW*h > srcH*w {
		cropW = srcH * w / h
	} else {
		cropH = srcW * h / w
	}
	if cropW < 1 {
		cropW = 1
	}
	if cropH < 1 {
		cropH = 1
	}

	x0 := bounds.Min.X + (srcW-cropW)/2
	y0 := bounds.Min.Y + (srcH-cropH)/2
	crop := image.Rect(x0, y0, x0+cropW, y0+cropH)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, crop, draw.Over, nil)
	return dst
}

// encodeFile writes img to path, keeping the source format for PNG and
// encoding everything else as JPEG. Partial files are removed on failure.
func encodeFile(path string, img image.Image, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	if format == "png" {
		err = png.Encode(f, img)
	} else {
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: JPEGQuality})
	}
	if err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("encoding image: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("closing file: %w", err)
	}
	return nil
}
