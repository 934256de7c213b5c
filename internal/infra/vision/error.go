package vision

import "fmt"

// ProducerError records which stage of the extraction pipeline failed.
type ProducerError struct {
	Stage string
	Err   error
}

func (e *ProducerError) Error() string {
	return fmt.Sprintf("%s producer: %v", e.Stage, e.Err)
}

func (e *ProducerError) Unwrap() error { return e.Err }
