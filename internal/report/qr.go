package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

const qrSizePx = 256
const qrSizeMM = 30.0

// PermalinkQR creates a QR code PNG encoding the given permalink.
func PermalinkQR(permalink string, size int) ([]byte, error) {
	if permalink == "" {
		return nil, fmt.Errorf("permalink is empty")
	}
	if size <= 0 {
		size = qrSizePx
	}
	return qrcode.Encode(permalink, qrcode.Medium, size)
}

// addPermalinkQR places the permalink QR in the bottom-right corner of the
// current page.
func addPermalinkQR(pdf *gofpdf.Fpdf, permalink string) error {
	if permalink == "" {
		return nil
	}
	png, err := PermalinkQR(permalink, qrSizePx)
	if err != nil {
		return fmt.Errorf("failed to render permalink QR: %w", err)
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("permalink-qr", opts, bytes.NewReader(png))

	w, h := pdf.GetPageSize()
	pdf.ImageOptions("permalink-qr", w-15-qrSizeMM, h-20-qrSizeMM, qrSizeMM, qrSizeMM, false, opts, 0, "")
	return nil
}
