// Package busybook lays out generated illustrations and fun facts into a
// printable PDF, one themed book per run: a cover page followed by up to
// numPages illustrated pages.
package busybook

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"github.com/engrrio07/busybook/bedrock"
)

// AssetSource produces the generated assets a book consumes. *bedrock.Client
// satisfies it; tests substitute a fake.
type AssetSource interface {
	GenerateImage(ctx context.Context, prompt, negativePrompt, stylePreset string) (*bedrock.Artifact, error)
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Book assembles one themed busy book. It owns the PDF handle for the duration
// of a single Generate call; pages are appended strictly in order and the
// document is finalized exactly once.
type Book struct {
	theme     string
	numPages  int
	outputDir string
	assets    AssetSource
	log       *slog.Logger
	pdf       *gofpdf.Fpdf
}

// New creates a book for one theme. A nil logger falls back to slog.Default.
func New(theme string, numPages int, outputDir string, assets AssetSource, logger *slog.Logger) *Book {
	if logger == nil {
		logger = slog.Default()
	}
	return &Book{
		theme:     theme,
		numPages:  numPages,
		outputDir: outputDir,
		assets:    assets,
		log:       logger,
	}
}

// Generate renders the cover and pages 1..numPages into
// <outputDir>/<theme>_busybook.pdf, saving each generated raster under
// <outputDir>/<theme>/. A page whose image generation fails is skipped with a
// warning; the finished PDF keeps whatever pages succeeded, so its page count
// can fall short of numPages+1 and printed page numbers can have gaps.
func (b *Book) Generate(ctx context.Context) error {
	themeDir := filepath.Join(b.outputDir, b.theme)
	if err := os.MkdirAll(themeDir, 0o755); err != nil {
		return fmt.Errorf("error creating theme folder: %w", err)
	}

	b.pdf = gofpdf.New("P", "pt", "Letter", "")
	b.pdf.SetAutoPageBreak(false, 0)

	b.renderCover(ctx, themeDir)

	for page := 1; page <= b.numPages; page++ {
		art, imgErr := b.assets.GenerateImage(ctx,
			pageImagePrompt(b.theme, page), pageNegativePrompt, bedrock.StyleLineArt)
		fact, factErr := b.assets.GenerateText(ctx, factPrompt(b.theme, page))
		if factErr != nil {
			// An empty fact still gets drawn inside an empty-sized box.
			b.log.Error("fun fact generation failed", "theme", b.theme, "page", page, "error", factErr)
		}

		if imgErr != nil {
			b.log.Warn("skipping page due to image generation failure",
				"theme", b.theme, "page", page, "error", imgErr)
			continue
		}

		name := fmt.Sprintf("%s_page_%d.png", b.theme, page)
		if err := os.WriteFile(filepath.Join(themeDir, name), art.PNG, 0o644); err != nil {
			return fmt.Errorf("error saving %s: %w", name, err)
		}
		b.renderPage(art, fact, page)
	}

	outPath := filepath.Join(b.outputDir, fmt.Sprintf("%s_busybook.pdf", b.theme))
	if err := b.pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("error writing %s: %w", outPath, err)
	}

	b.log.Info("busy book created", "theme", b.theme, "path", outPath)
	return nil
}
