package busybook

import (
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
)

func layoutBook() *Book {
	b := New("Animals", 0, "", nil, nil)
	b.pdf = gofpdf.New("P", "pt", "Letter", "")
	b.pdf.AddPage()
	return b
}

func TestScaledImageSize(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		wantW float64
		wantH float64
	}{
		{name: "landscape", w: 400, h: 300, wantW: 612 - 2*inch, wantH: (612 - 2*inch) * 0.75},
		{name: "square", w: 512, h: 512, wantW: 612 - 2*inch, wantH: 612 - 2*inch},
		{name: "portrait", w: 300, h: 600, wantW: 612 - 2*inch, wantH: (612 - 2*inch) * 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotW, gotH := scaledImageSize(612, tt.w, tt.h)
			assert.InDelta(t, tt.wantW, gotW, 1e-9)
			assert.InDelta(t, tt.wantH, gotH, 1e-9)
		})
	}
}

func TestFactBoxHeightEmptyFact(t *testing.T) {
	b := layoutBook()

	got := b.factBoxHeight(612, "")
	assert.InDelta(t, headerLineHt+boxPadding, got, 1e-9)
}

func TestFactBoxHeightMonotonic(t *testing.T) {
	b := layoutBook()

	sentence := "Sharks existed before trees and have survived five mass extinctions. "
	var prev float64
	for i := 0; i <= 8; i++ {
		fact := strings.Repeat(sentence, i)
		h := b.factBoxHeight(612, fact)
		assert.GreaterOrEqual(t, h, prev, "box shrank at %d repetitions", i)
		prev = h
	}
}

func TestFactBoxHeightGrowsPastOneLine(t *testing.T) {
	b := layoutBook()

	short := b.factBoxHeight(612, "Bees dance.")
	long := b.factBoxHeight(612, strings.Repeat("Bees dance to tell each other where the flowers are. ", 6))
	assert.Greater(t, long, short)
}
