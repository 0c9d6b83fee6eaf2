package busybook

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/engrrio07/busybook/bedrock"
)

// coverWashAlpha is the opacity of the white wash drawn over the cover so any
// future title text stays legible on top of a busy illustration.
const coverWashAlpha = 0.3

// renderCover draws the themed cover as the first page: a full-bleed generated
// image under a translucent white wash. The wash is drawn even when image
// generation fails, leaving a blank-ish but printable cover.
func (b *Book) renderCover(ctx context.Context, themeDir string) {
	b.pdf.AddPage()
	pageW, pageH := b.pdf.GetPageSize()

	art, err := b.assets.GenerateImage(ctx, coverPrompt(b.theme), coverNegativePrompt, bedrock.StyleDigitalArt)
	if err != nil {
		b.log.Warn("cover image generation failed", "theme", b.theme, "error", err)
	} else {
		name := fmt.Sprintf("%s_cover.png", b.theme)
		if err := os.WriteFile(filepath.Join(themeDir, name), art.PNG, 0o644); err != nil {
			b.log.Error("saving cover image failed", "theme", b.theme, "error", err)
		}
		b.drawArtifact(name, art, 0, 0, pageW, pageH)
	}

	b.pdf.SetAlpha(coverWashAlpha, "Normal")
	b.pdf.SetFillColor(255, 255, 255)
	b.pdf.Rect(0, 0, pageW, pageH, "F")
	b.pdf.SetAlpha(1, "Normal")
}
