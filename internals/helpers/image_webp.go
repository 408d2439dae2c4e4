package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const (
	webpMaxWidth  = 1600
	webpMaxHeight = 1600
	webpQuality   = 80
)

// ConvertImageToWebP decodes an uploaded JPEG/PNG, downsizes it to fit the
// max bounds (keeping aspect ratio) and re-encodes as lossy WebP.
func ConvertImageToWebP(fileHeader *multipart.FileHeader) ([]byte, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > webpMaxWidth || bounds.Dy() > webpMaxHeight {
		img = imaging.Fit(img, webpMaxWidth, webpMaxHeight, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

// IsImageContentType reports whether the upload should go through the
// WebP conversion path.
func IsImageContentType(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/png", "image/webp":
		return true
	default:
		return false
	}
}
