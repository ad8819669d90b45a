// Package qr issues validation codes for printed notas and renders them as
// scannable rasters.
package qr

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// RasterSize is the fixed square edge, in pixels, of every issued raster. The
// image is scaled into the 1.5 cm slot on the form, so the pixel size never
// varies between notes.
const RasterSize = 256

// ValidationURL builds the scan target for one printed artifact. A negative
// itemIndex yields the consolidated, suffix-free URL; otherwise the 1-based
// suffix ties the printed page to the item at that position in the
// transaction, keeping per-item URLs pairwise distinct.
func ValidationURL(baseURL, transactionCode string, itemIndex int) string {
	base := strings.TrimRight(baseURL, "/")
	if itemIndex < 0 {
		return fmt.Sprintf("%s/validate/%s", base, transactionCode)
	}
	return fmt.Sprintf("%s/validate/%s-%d", base, transactionCode, itemIndex+1)
}

// Encoder renders a URL into a raster image suitable for embedding in the
// generated page.
type Encoder interface {
	Encode(ctx context.Context, url string, sizePx int) ([]byte, error)
}

type pngEncoder struct{}

// NewEncoder returns the PNG QR encoder used in production.
func NewEncoder() Encoder {
	return pngEncoder{}
}

func (pngEncoder) Encode(_ context.Context, url string, sizePx int) ([]byte, error) {
	q, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	// Tight fit: the quiet zone comes from the white area of the form, so the
	// raster can be scaled exactly into its 1.5 cm slot.
	q.DisableBorder = true
	return q.PNG(sizePx)
}

// DataURL wraps PNG bytes for direct use in an <img> src attribute.
func DataURL(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}
