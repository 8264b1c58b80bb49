package ai

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GenerativeClient is the slice of the model API the extraction service
// needs; satisfied by GeminiClient and by test fakes.
type GenerativeClient interface {
	Generate(ctx context.Context, systemPrompt string, parts ...genai.Part) (string, error)
}

type GeminiClient struct {
	client *genai.Client
}

func NewGeminiClient(apiKey string) (*GeminiClient, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client}, nil
}

// Generate runs one generation call with the given system prompt and content
// parts (text, optionally an image) and concatenates the text of the reply.
func (g *GeminiClient) Generate(ctx context.Context, systemPrompt string, parts ...genai.Part) (string, error) {
	model := g.client.GenerativeModel("models/gemini-1.5-pro")
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}
