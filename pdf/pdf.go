// Package pdf renders stored QR code images as downloadable PDF documents.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// Render produces a single-page PDF embedding the PNG at pngPath with a
// short caption underneath. The page is 360x420 pt with the image drawn
// at 300x300.
func Render(pngPath string) ([]byte, error) {
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: 360, Ht: 420},
	})
	doc.AddPage()
	doc.ImageOptions(pngPath, 30, 30, 300, 300, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.Text(30, 350, "Generated QR")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
