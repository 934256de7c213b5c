package vision

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// FallbackProducer tries the primary producer and falls back to the
// secondary when it fails. There is no third stage: when both fail the
// combined error propagates.
type FallbackProducer struct {
	primary   TextProducer
	secondary TextProducer
}

func NewFallbackProducer(primary, secondary TextProducer) *FallbackProducer {
	return &FallbackProducer{primary: primary, secondary: secondary}
}

func (p *FallbackProducer) Produce(ctx context.Context, image []byte) (string, error) {
	text, primaryErr := p.primary.Produce(ctx, image)
	if primaryErr == nil {
		return text, nil
	}
	perr := &ProducerError{Stage: "primary", Err: primaryErr}
	logger.Warn().Err(perr).Msg("primary text producer failed, falling back to OCR")

	text, secondaryErr := p.secondary.Produce(ctx, image)
	if secondaryErr != nil {
		serr := &ProducerError{Stage: "fallback", Err: secondaryErr}
		return "", fmt.Errorf("all producers failed: %v; %w", perr, serr)
	}
	return text, nil
}
