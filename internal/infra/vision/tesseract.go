package vision

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// TesseractProducer runs local OCR. The text it returns has no guaranteed
// structure; the parser copes with that. Requires the tesseract binary and
// language data to be installed on the host.
type TesseractProducer struct {
	lang string
}

func NewTesseractProducer(lang string) *TesseractProducer {
	if lang == "" {
		lang = "eng"
	}
	return &TesseractProducer{lang: lang}
}

func (p *TesseractProducer) Produce(_ context.Context, image []byte) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(p.lang); err != nil {
		return "", fmt.Errorf("tesseract language %q: %w", p.lang, err)
	}
	if err := client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("tesseract set image: %w", err)
	}
	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("tesseract: %w", err)
	}
	return text, nil
}
