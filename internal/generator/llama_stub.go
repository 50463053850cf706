//go:build !llama

package generator

// This file provides a no-CGO stub for the llama pipeline. It is compiled
// when the 'llama' build tag is NOT set, keeping default builds and CI
// CGO-free. The real pipeline lives in llama.go (tagged 'llama').

// llamaBuilt indicates this binary was compiled with real llama support.
var llamaBuilt = false

// NewPipeline fails fast: the llama runtime is not available in this build.
// Startup treats this as fatal, matching the no-fallback-backend policy.
func NewPipeline(modelPath string, ctxSize, threads int, backend Backend) (Pipeline, error) {
	return nil, ErrDependencyUnavailable("llama support not built (missing 'llama' build tag)")
}
