package types

// CompleteRequest is the payload accepted by POST /api/complete.
type CompleteRequest struct {
	// Text to complete. Passed through to the generator as-is, including empty text.
	// example: I need to buy
	Text string `json:"text" example:"I need to buy"`
	// Optional instruction steering the generator. Empty means the server default.
	// example: You are an autocomplete assistant.
	SystemPrompt string `json:"system_prompt,omitempty" example:"You are an autocomplete assistant."`
	// Maximum number of new tokens per suggestion. Defaults to 5.
	// example: 5
	MaxTokens int `json:"max_tokens,omitempty" example:"5"`
	// Number of independently sampled suggestions. Defaults to 3.
	// example: 3
	NumSuggestions int `json:"num_suggestions,omitempty" example:"3"`
	// Sampling temperature. Defaults to 0.1.
	// example: 0.1
	Temperature float64 `json:"temperature,omitempty" example:"0.1"`
}

// CompleteResponse is returned by POST /api/complete.
type CompleteResponse struct {
	// Suggestions in generation order, surrounding whitespace stripped.
	Suggestions []string `json:"suggestions"`
	// Total request processing time in milliseconds, including message
	// assembly and post-processing.
	// example: 142.7
	LatencyMS float64 `json:"latency_ms" example:"142.7"`
	// Pure generation time in milliseconds (pipeline call only).
	// example: 131.2
	ServerProcessingTimeMS float64 `json:"server_processing_time_ms" example:"131.2"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: pipeline not loaded
	Detail string `json:"detail" example:"pipeline not loaded"`
}

// CompletionResult is what the completion client hands back to its callers.
// Completions are in backend order; latency is the network round trip in
// milliseconds, zero for cache hits and failures.
type CompletionResult struct {
	Completions []string `json:"completions"`
	LatencyMS   float64  `json:"latency_ms"`
}
