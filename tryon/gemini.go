package tryon

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiGenerator implements Generator against the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a generator authenticated with the given API
// key. The key is the process-wide credential; there is no per-request
// auth.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerator{client: client, model: model}, nil
}

// GenerateTryOn issues one multimodal request: person image, garment
// image, instruction text, in that order, declaring that both image and
// text replies are accepted. Only the first candidate is consumed.
func (g *GeminiGenerator) GenerateTryOn(ctx context.Context, person, garment *ImageAsset, instruction string) (*GenerateResponse, error) {
	parts := []*genai.Part{
		{InlineData: &genai.Blob{MIMEType: person.MIMEType, Data: person.Data}},
		{InlineData: &genai.Blob{MIMEType: garment.MIMEType, Data: garment.Data}},
		genai.NewPartFromText(instruction),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	out := &GenerateResponse{}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		// No candidates reads the same as an empty reply; the pipeline
		// classifies it.
		return out, nil
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData != nil && out.Image == nil {
			out.Image = part.InlineData.Data
			out.ImageMIME = part.InlineData.MIMEType
		} else if part.Text != "" && out.Text == "" {
			out.Text = part.Text
		}
	}
	return out, nil
}
