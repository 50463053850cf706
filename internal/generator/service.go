package generator

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"suggestd/pkg/types"
)

// Defaults applied when the request leaves the corresponding field unset.
const (
	defaultMaxTokens      = 5
	defaultNumSuggestions = 3
	defaultTemperature    = 0.1
)

// Fixed sampling bounds and repetition-avoidance settings for the in-process
// pipeline. Not request-tunable.
const (
	fixedTopK          = 20
	fixedTopP          = 0.95
	fixedRepeatPenalty = 1.1
	fixedRepeatLastN   = 64
)

// Result is what Complete hands back to the HTTP layer; the caller measures
// total request time around it.
type Result struct {
	Suggestions []string
	// GenerationTime is the pure pipeline time, excluding message assembly
	// and post-processing.
	GenerationTime time.Duration
}

// Service owns the loaded pipeline for the process lifetime. It is
// constructed once during bootstrap and handed to the request layer; a load
// failure there is fatal, so a Service always wraps a working pipeline.
type Service struct {
	// mu serializes generation: one execution resource, no queueing. A
	// concurrent request simply waits.
	mu       sync.Mutex
	pipeline Pipeline
	zlog     zerolog.Logger
	modelID  string
}

// NewService wraps an already-loaded pipeline.
func NewService(p Pipeline, modelID string, logger zerolog.Logger) *Service {
	return &Service{pipeline: p, zlog: logger, modelID: modelID}
}

// ModelID reports which model file the pipeline was loaded from.
func (s *Service) ModelID() string { return s.modelID }

// Ready reports whether the pipeline can serve requests.
func (s *Service) Ready() bool { return s.pipeline != nil }

// Close releases the pipeline.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pipeline == nil {
		return nil
	}
	err := s.pipeline.Close()
	s.pipeline = nil
	return err
}

// Complete generates the requested number of independently sampled
// continuations. Empty text is passed through to the pipeline as-is. There is
// no cancellation: once a sample is issued it runs to completion, so ctx only
// gates the gaps between samples.
func (s *Service) Complete(ctx context.Context, req types.CompleteRequest) (Result, error) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	n := req.NumSuggestions
	if n <= 0 {
		n = defaultNumSuggestions
	}
	temperature := req.Temperature
	if temperature <= 0 {
		temperature = defaultTemperature
	}

	prompt := BuildPrompt(req.SystemPrompt, req.Text)
	params := SampleParams{
		MaxTokens:     maxTokens,
		Temperature:   float32(temperature),
		TopP:          fixedTopP,
		TopK:          fixedTopK,
		RepeatPenalty: fixedRepeatPenalty,
		RepeatLastN:   fixedRepeatLastN,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pipeline == nil {
		return Result{}, ErrDependencyUnavailable("pipeline not loaded")
	}

	suggestions := make([]string, 0, n)
	genStart := time.Now()
	for i := 0; i < n; i++ {
		if i > 0 && ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		out, err := s.pipeline.Sample(prompt, params)
		if err != nil {
			generationFailures.Inc()
			return Result{}, err
		}
		suggestions = append(suggestions, ExtractNew(prompt, out))
	}
	genTime := time.Since(genStart)

	generationDuration.Observe(genTime.Seconds())
	suggestionsTotal.Add(float64(len(suggestions)))
	s.zlog.Debug().Int("suggestions", len(suggestions)).Dur("generation", genTime).Msg("generation done")

	return Result{Suggestions: suggestions, GenerationTime: genTime}, nil
}
