package generator

// Pipeline abstracts the loaded text-generation model. One Sample call
// produces one independently sampled continuation.
type Pipeline interface {
	Sample(prompt string, params SampleParams) (string, error)
	// Close releases model resources.
	Close() error
}

// SampleParams captures generation parameters passed to the pipeline.
type SampleParams struct {
	MaxTokens     int
	Temperature   float32
	TopP          float32
	TopK          int
	RepeatPenalty float32
	// RepeatLastN is the window the repeat penalty looks back over.
	RepeatLastN int
}
