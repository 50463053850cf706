package generator

import (
	"os"
	"os/exec"
	"runtime"
)

// Backend identifies the accelerator the pipeline runs on.
type Backend string

const (
	BackendCUDA  Backend = "cuda"
	BackendMetal Backend = "metal"
	BackendCPU   Backend = "cpu"
)

// DetectBackend probes available hardware acceleration in a fixed preference
// order (CUDA, then Metal, then CPU). Chosen once at startup.
func DetectBackend() Backend {
	if hasCUDA() {
		return BackendCUDA
	}
	if runtime.GOOS == "darwin" {
		return BackendMetal
	}
	return BackendCPU
}

// GPULayers returns how many model layers to offload for this backend.
func (b Backend) GPULayers() int {
	switch b {
	case BackendCUDA, BackendMetal:
		return 32
	default:
		return 0
	}
}

func hasCUDA() bool {
	if _, err := os.Stat("/proc/driver/nvidia/version"); err == nil {
		return true
	}
	_, err := exec.LookPath("nvidia-smi")
	return err == nil
}
