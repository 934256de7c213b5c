package vision

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubProducer struct {
	text string
	err  error
	hits int
}

func (s *stubProducer) Produce(ctx context.Context, image []byte) (string, error) {
	s.hits++
	return s.text, s.err
}

func TestFallbackProducer_PrimarySucceeds(t *testing.T) {
	primary := &stubProducer{text: "Patient: Alice"}
	secondary := &stubProducer{text: "ocr text"}

	p := NewFallbackProducer(primary, secondary)
	text, err := p.Produce(context.Background(), []byte("img"))

	assert.NoError(t, err)
	assert.Equal(t, "Patient: Alice", text)
	assert.Zero(t, secondary.hits)
}

func TestFallbackProducer_FallsBackOnPrimaryFailure(t *testing.T) {
	primary := &stubProducer{err: errors.New("api unavailable")}
	secondary := &stubProducer{text: "ocr text"}

	p := NewFallbackProducer(primary, secondary)
	text, err := p.Produce(context.Background(), []byte("img"))

	assert.NoError(t, err)
	assert.Equal(t, "ocr text", text)
	assert.Equal(t, 1, primary.hits)
	assert.Equal(t, 1, secondary.hits)
}

func TestFallbackProducer_BothFail(t *testing.T) {
	primary := &stubProducer{err: errors.New("api unavailable")}
	secondary := &stubProducer{err: errors.New("tesseract missing")}

	p := NewFallbackProducer(primary, secondary)
	_, err := p.Produce(context.Background(), []byte("img"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "api unavailable")
	assert.Contains(t, err.Error(), "tesseract missing")

	var perr *ProducerError
	assert.ErrorAs(t, err, &perr)
	assert.Equal(t, "fallback", perr.Stage)
}
