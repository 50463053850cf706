//go:build llama

package generator

import (
	"errors"
	"strings"

	llama "github.com/go-skynet/go-llama.cpp"
)

// llamaBuilt indicates this binary was compiled with real llama support.
var llamaBuilt = true

// llamaPipeline runs generation in-process via go-llama.cpp.
type llamaPipeline struct {
	model   *llama.LLama
	threads int
}

// NewPipeline loads the model file and returns a ready pipeline. The load
// happens here, once; callers treat an error as fatal.
func NewPipeline(modelPath string, ctxSize, threads int, backend Backend) (Pipeline, error) {
	if strings.TrimSpace(modelPath) == "" {
		return nil, errors.New("model path is empty")
	}
	mo := []llama.ModelOption{
		llama.SetContext(ctxSize),
	}
	if layers := backend.GPULayers(); layers > 0 {
		mo = append(mo, llama.SetGPULayers(layers))
	}
	m, err := llama.New(modelPath, mo...)
	if err != nil {
		return nil, err
	}
	return &llamaPipeline{model: m, threads: threads}, nil
}

func (p *llamaPipeline) Sample(prompt string, params SampleParams) (string, error) {
	if p.model == nil {
		return "", errors.New("llama model not initialized")
	}
	po := []llama.PredictOption{
		llama.SetTokens(max(1, params.MaxTokens)),
		llama.SetThreads(max(1, p.threads)),
		llama.SetTemperature(zf(params.Temperature, llama.DefaultOptions.Temperature)),
		llama.SetTopP(zf(params.TopP, llama.DefaultOptions.TopP)),
		llama.SetTopK(zn(params.TopK, llama.DefaultOptions.TopK)),
		llama.SetPenalty(zf(params.RepeatPenalty, llama.DefaultOptions.Penalty)),
	}
	if params.RepeatLastN > 0 {
		po = append(po, llama.SetRepeat(params.RepeatLastN))
	}
	return p.model.Predict(prompt, po...)
}

func (p *llamaPipeline) Close() error {
	if p.model != nil {
		p.model.Free()
		p.model = nil
	}
	return nil
}

// helpers
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
func zn(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
func zf(v, def float32) float32 {
	if v > 0 {
		return v
	}
	return def
}
