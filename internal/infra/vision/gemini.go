package vision

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

const extractionPrompt = `Please analyze this prescription image and extract the following information in this exact format:

Patient: [Patient Name]
Doctor: [Doctor Name]
Medicine: [Medicine Name]
Dosage: [Dosage]
Quantity: [Quantity]
Instructions: [Instructions if any]

If any field is not visible or unclear, use "Not found" for that field.`

// GeminiProducer extracts prescription text with a Gemini vision model and
// serves plain text prompts for the recommendation path.
type GeminiProducer struct {
	client      *genai.Client
	visionModel string
	textModel   string
}

func NewGeminiProducer(ctx context.Context, apiKey, visionModel, textModel string) (*GeminiProducer, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}
	if visionModel == "" {
		visionModel = "gemini-1.5-flash"
	}
	if textModel == "" {
		textModel = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiProducer{
		client:      client,
		visionModel: visionModel,
		textModel:   textModel,
	}, nil
}

func (p *GeminiProducer) Produce(ctx context.Context, image []byte) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromBytes(image, "image/jpeg"),
		genai.NewPartFromText(extractionPrompt),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	result, err := p.client.Models.GenerateContent(ctx, p.visionModel, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	text := result.Text()
	if text == "" {
		return "", errors.New("gemini returned no text")
	}
	return text, nil
}

func (p *GeminiProducer) GenerateText(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	result, err := p.client.Models.GenerateContent(ctx, p.textModel, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	text := result.Text()
	if text == "" {
		return "", errors.New("gemini returned no text")
	}
	return text, nil
}
