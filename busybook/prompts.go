package busybook

import "fmt"

// Prompt templates for the generation models. The negative prompts steer SDXL
// away from output that prints badly in a coloring book: color, shading,
// embedded text.

func coverPrompt(theme string) string {
	return fmt.Sprintf("A vibrant and colorful %s themed children's coloring book cover", theme)
}

const coverNegativePrompt = "blurry, distorted, texts, words, letters"

func pageImagePrompt(theme string, page int) string {
	return fmt.Sprintf("Generate a simple clear with thick lines black and white line random drawing of %s suitable for a childrens coloring book, page %d.", theme, page)
}

const pageNegativePrompt = "blurry, blackout, distorted, shading, texts, words, color, details, realism, photorealistic, complex details"

func factPrompt(theme string, page int) string {
	return fmt.Sprintf("Generate a unique short, random fun fact about %s for children aged 5-7, related to page %d of a coloring book. Keep it under 50 words.", theme, page)
}
