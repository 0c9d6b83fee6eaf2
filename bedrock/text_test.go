package bedrock

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateText(t *testing.T) {
	var gotPath string
	var gotReq claudeRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(claudeResponse{
			Content: []claudeContent{
				{Type: "text", Text: "Here is a fun fact: Sharks never stop swimming. "},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 1)

	text, err := client.GenerateText(context.Background(), "Tell me about sharks")
	require.NoError(t, err)

	assert.Equal(t, "/model/anthropic.claude-3-haiku-20240307-v1:0/invoke", gotPath)
	assert.Equal(t, "bedrock-2023-05-31", gotReq.AnthropicVersion)
	assert.Equal(t, 1000, gotReq.MaxTokens)
	require.Len(t, gotReq.Messages, 1)
	assert.Equal(t, "user", gotReq.Messages[0].Role)
	assert.Equal(t, textFraming+" Tell me about sharks", gotReq.Messages[0].Content)

	assert.Equal(t, "Sharks never stop swimming.", text)
}

func TestGenerateTextEmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":[]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 1)

	_, err := client.GenerateText(context.Background(), "Tell me about sharks")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}

func TestCleanFact(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "text after first colon",
			in:   "Here's a fun fact: Sharks are older than trees.",
			want: "Sharks are older than trees.",
		},
		{
			name: "only the first colon is consumed",
			in:   "Fun fact: sharks: they never sleep",
			want: "sharks: they never sleep",
		},
		{
			name: "leading phrase without colon",
			in:   "Here's a fun fact about sharks",
			want: "fun fact about sharks",
		},
		{
			name: "leading phrase is case-insensitive",
			in:   "HERE IS A story about whales",
			want: "story about whales",
		},
		{
			name: "sure prefix",
			in:   "Sure, octopuses have three hearts",
			want: "octopuses have three hearts",
		},
		{
			name: "certainly prefix",
			in:   "Certainly, bees dance to talk",
			want: "bees dance to talk",
		},
		{
			name: "plain fact passes through",
			in:   "Dolphins sleep with one eye open",
			want: "Dolphins sleep with one eye open",
		},
		{
			name: "whitespace after colon is trimmed",
			in:   "Fact:   penguins propose with pebbles  ",
			want: "penguins propose with pebbles",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanFact(tt.in))
		})
	}
}
