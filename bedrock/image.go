package bedrock

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"

	_ "image/png"
)

const imageModelID = "stability.stable-diffusion-xl-v1"

// Style presets accepted by the SDXL model.
const (
	StyleDigitalArt = "digital-art"
	StyleLineArt    = "line-art"
)

const (
	imageCFGScale = 10
	imageSteps    = 50
	imageSamples  = 1
)

// stabilityRequest is the request body for the Stability SDXL model.
type stabilityRequest struct {
	TextPrompts []weightedPrompt `json:"text_prompts"`
	CFGScale    float64          `json:"cfg_scale"`
	Seed        uint32           `json:"seed"`
	Steps       int              `json:"steps"`
	Samples     int              `json:"samples"`
	StylePreset string           `json:"style_preset"`
}

type weightedPrompt struct {
	Text   string  `json:"text"`
	Weight float64 `json:"weight"`
}

type stabilityResponse struct {
	Artifacts []stabilityArtifact `json:"artifacts"`
}

type stabilityArtifact struct {
	Base64       string `json:"base64"`
	Seed         int64  `json:"seed"`
	FinishReason string `json:"finishReason"`
}

// Artifact is one decoded image payload returned by the image model. The PNG
// bytes are kept as returned so they can be written to disk and embedded in the
// PDF without re-encoding.
type Artifact struct {
	PNG    []byte
	Width  int
	Height int
}

// Aspect returns height over width of the raster.
func (a *Artifact) Aspect() float64 {
	return float64(a.Height) / float64(a.Width)
}

// GenerateImage requests one image from the SDXL model: the prompt weighted
// positively, the negative prompt weighted negatively, a fixed guidance scale
// and step count, and a fresh 32-bit seed per call. Returns ErrNoArtifacts when
// the model answers without content.
func (c *Client) GenerateImage(ctx context.Context, prompt, negativePrompt, stylePreset string) (*Artifact, error) {
	body, err := json.Marshal(stabilityRequest{
		TextPrompts: []weightedPrompt{
			{Text: prompt, Weight: 1},
			{Text: negativePrompt, Weight: -1},
		},
		CFGScale:    imageCFGScale,
		Seed:        c.seed(),
		Steps:       imageSteps,
		Samples:     imageSamples,
		StylePreset: stylePreset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	respBody, err := c.invokeModel(ctx, imageModelID, body)
	if err != nil {
		return nil, err
	}

	var resp stabilityResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(resp.Artifacts) == 0 {
		return nil, ErrNoArtifacts
	}

	data, err := base64.StdEncoding.DecodeString(resp.Artifacts[0].Base64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to read image dimensions: %w", err)
	}

	return &Artifact{
		PNG:    data,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}
