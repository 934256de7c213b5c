package vision

import "context"

// TextProducer turns a prescription image into freeform text. Producers may
// fail; callers decide whether a fallback applies.
type TextProducer interface {
	Produce(ctx context.Context, image []byte) (string, error)
}

// TextGenerator answers a plain text prompt. Used for the recommendation
// path, which shares the Gemini client with vision extraction.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

var (
	_ TextProducer = (*GeminiProducer)(nil)
	_ TextProducer = (*TesseractProducer)(nil)
	_ TextProducer = (*FallbackProducer)(nil)

	_ TextGenerator = (*GeminiProducer)(nil)
)
