// Package imaging implements the avatar compression pipeline: decode an
// arbitrary raster image, clamp its longer side to 800px preserving aspect
// ratio, and re-encode it as a JPEG data URL bounded in size by the fixed
// quality factor.
package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"strings"

	_ "image/gif"
	_ "image/png"

	xdraw "golang.org/x/image/draw"

	"github.com/trananh2004/shopfront/internal/common"
)

const (
	// MaxDimension is the bound for the longer side of the re-encoded image.
	MaxDimension = 800

	// Quality is the JPEG quality factor (0.7 on the canvas scale).
	Quality = 70

	dataURLPrefix = "data:image/jpeg;base64,"
)

// Compress reads one image (jpeg, png or gif), scales it down so neither
// dimension exceeds MaxDimension, and returns the result as a JPEG data URL.
// Images already within bounds keep their dimensions and are only re-encoded.
//
// A decode failure returns an error wrapping common.ErrImageDecode; the
// caller treats it as recoverable and keeps the previous avatar.
func Compress(r io.Reader) (string, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrImageDecode, err)
	}

	b := img.Bounds()
	w, h := TargetSize(b.Dx(), b.Dy())

	if w != b.Dx() || h != b.Dy() {
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.BiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: Quality}); err != nil {
		return "", fmt.Errorf("jpeg encode: %w", err)
	}

	return dataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// TargetSize computes the output dimensions for a w×h source: the longer
// side is clamped to MaxDimension and the shorter side scales with it.
// Sources within bounds are returned unchanged.
func TargetSize(w, h int) (int, int) {
	if w > h {
		if w > MaxDimension {
			h = h * MaxDimension / w
			w = MaxDimension
		}
	} else {
		if h > MaxDimension {
			w = w * MaxDimension / h
			h = MaxDimension
		}
	}
	return w, h
}

// DecodeDataURL decodes a data URL produced by Compress back into an image.
// Used by the shell to inspect stored avatars and by tests.
func DecodeDataURL(s string) (image.Image, error) {
	idx := strings.Index(s, ",")
	if idx < 0 {
		return nil, fmt.Errorf("%w: missing data URL payload", common.ErrImageDecode)
	}
	raw, err := base64.StdEncoding.DecodeString(s[idx+1:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrImageDecode, err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrImageDecode, err)
	}
	return img, nil
}
