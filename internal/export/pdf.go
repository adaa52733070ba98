package export

import (
	"bytes"

	gofpdf "github.com/lvillar/gofpdf"
)

// encodePDF embeds a capture into a portrait A4 PDF in point units. The
// image spans the full page width and keeps the capture's aspect ratio.
func encodePDF(capture *Capture) ([]byte, error) {
	if capture == nil || len(capture.PNG) == 0 || capture.Width == 0 {
		return nil, &EncodingError{Message: "empty capture"}
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("capture", opts, bytes.NewReader(capture.PNG))

	pageWidth, _ := pdf.GetPageSize()
	imageHeight := float64(capture.Height) * pageWidth / float64(capture.Width)
	pdf.ImageOptions("capture", 0, 0, pageWidth, imageHeight, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &EncodingError{Message: "failed to encode PDF", Cause: err}
	}
	return buf.Bytes(), nil
}
