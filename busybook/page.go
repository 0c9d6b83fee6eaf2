package busybook

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/engrrio07/busybook/bedrock"
)

// Letter pages in points. Layout constants follow the print design: one inch
// margins, the fun fact box bottom-anchored one inch up, the footer half an
// inch from the bottom edge.
const (
	inch = 72.0

	factHeader     = "Fun Fact:"
	headerFontSize = 16.0
	bodyFontSize   = 12.0
	headerLineHt   = headerFontSize * 1.2
	bodyLineHt     = bodyFontSize * 1.2
	boxPadding     = 0.3 * inch
)

// renderPage lays out one busy book page: the illustration top-anchored and
// scaled to the printable width, the auto-sized fun fact box underneath, and a
// centered page number footer. The box grows with the fact text; there is no
// overflow check against the image, so a very long fact can overlap it.
func (b *Book) renderPage(art *bedrock.Artifact, fact string, pageNumber int) {
	b.pdf.AddPage()
	pageW, pageH := b.pdf.GetPageSize()

	displayW, displayH := scaledImageSize(pageW, art.Width, art.Height)
	b.drawArtifact(fmt.Sprintf("%s_page_%d.png", b.theme, pageNumber), art, inch, inch, displayW, displayH)

	boxH := b.factBoxHeight(pageW, fact)
	boxTop := pageH - inch - boxH
	b.pdf.SetFillColor(255, 255, 224) // light yellow
	b.pdf.Rect(inch, boxTop, pageW-2*inch, boxH, "F")

	textW := pageW - 2.2*inch
	b.pdf.SetTextColor(0, 0, 0)
	b.pdf.SetFont("Arial", "B", headerFontSize)
	b.pdf.SetXY(1.1*inch, boxTop+boxPadding/2)
	b.pdf.MultiCell(textW, headerLineHt, factHeader, "", "L", false)
	if fact != "" {
		b.pdf.SetFont("Arial", "", bodyFontSize)
		b.pdf.SetX(1.1 * inch)
		b.pdf.MultiCell(textW, bodyLineHt, fact, "", "L", false)
	}

	b.pdf.SetFont("Arial", "", bodyFontSize)
	b.pdf.SetXY(0, pageH-0.5*inch)
	b.pdf.CellFormat(pageW, bodyLineHt, fmt.Sprintf("Page %d", pageNumber), "", 0, "C", false, 0, "")
}

// scaledImageSize fits a raster of pixel size w×h to the printable width,
// preserving aspect ratio. The drawn width is fixed; only the height varies.
func scaledImageSize(pageW float64, w, h int) (displayW, displayH float64) {
	displayW = pageW - 2*inch
	displayH = displayW * float64(h) / float64(w)
	return displayW, displayH
}

// factBoxHeight computes the wrapped height of the header plus the fact body at
// the available text width, plus padding. Longer facts never shrink the box.
func (b *Book) factBoxHeight(pageW float64, fact string) float64 {
	textW := pageW - 2.2*inch

	b.pdf.SetFont("Arial", "B", headerFontSize)
	headerH := headerLineHt * float64(len(b.pdf.SplitText(factHeader, textW)))

	var bodyH float64
	if fact != "" {
		b.pdf.SetFont("Arial", "", bodyFontSize)
		bodyH = bodyLineHt * float64(len(b.pdf.SplitText(fact, textW)))
	}

	return headerH + bodyH + boxPadding
}

// drawArtifact registers the artifact's PNG bytes under name and draws it at
// the given rectangle. Names are unique per page so gofpdf caches never
// collide.
func (b *Book) drawArtifact(name string, art *bedrock.Artifact, x, y, w, h float64) {
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	b.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(art.PNG))
	b.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
}
