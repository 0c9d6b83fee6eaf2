package bedrock

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

const textModelID = "anthropic.claude-3-haiku-20240307-v1:0"

const (
	anthropicVersion = "bedrock-2023-05-31"
	textMaxTokens    = 1000
)

// textFraming anchors every fact request to the busy book persona. It travels
// inside the single user message, not a separate system field.
const textFraming = "You are a helpful assistant creating content for children's busy books."

// claudeRequest is the Anthropic messages body Bedrock expects.
type claudeRequest struct {
	AnthropicVersion string          `json:"anthropic_version"`
	MaxTokens        int             `json:"max_tokens"`
	Messages         []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeResponse struct {
	Content []claudeContent `json:"content"`
}

type claudeContent struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// GenerateText sends a single-turn chat request to the Claude model and returns
// the first content block, cleaned of any conversational lead-in.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(claudeRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        textMaxTokens,
		Messages: []claudeMessage{
			{Role: "user", Content: textFraming + " " + prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	respBody, err := c.invokeModel(ctx, textModelID, body)
	if err != nil {
		return "", err
	}

	var resp claudeResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if len(resp.Content) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	return cleanFact(strings.TrimSpace(resp.Content[0].Text)), nil
}

var leadInPhrase = regexp.MustCompile(`(?i)^(Here's a|Here is a|Sure,|Certainly,)\s*`)

// cleanFact strips the conversational lead-in the model tends to produce:
// everything up to and including the first colon when there is one, otherwise a
// known introductory phrase.
func cleanFact(text string) string {
	if _, after, found := strings.Cut(text, ":"); found {
		return strings.TrimSpace(after)
	}
	return leadInPhrase.ReplaceAllString(text, "")
}
