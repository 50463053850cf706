package modelfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ModelFile describes the resolved generation model on disk.
type ModelFile struct {
	// ID is the file name, e.g. "phi-2.Q4_K_M.gguf".
	ID string
	// Path is the absolute path to the model file.
	Path string
}

// Resolve turns a user-supplied path into a concrete model file.
// A path to a *.gguf file is used directly; a directory is scanned and the
// first *.gguf file (sorted by name) is picked.
func Resolve(path string) (ModelFile, error) {
	base, err := expandHome(path)
	if err != nil {
		return ModelFile{}, err
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return ModelFile{}, fmt.Errorf("abs path: %w", err)
	}
	fi, err := os.Stat(abs)
	if err != nil {
		return ModelFile{}, fmt.Errorf("stat model path: %w", err)
	}
	if !fi.IsDir() {
		if !strings.HasSuffix(strings.ToLower(abs), ".gguf") {
			return ModelFile{}, fmt.Errorf("model file is not a .gguf: %s", abs)
		}
		return ModelFile{ID: filepath.Base(abs), Path: abs}, nil
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return ModelFile{}, fmt.Errorf("read dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() { continue }
		if strings.HasSuffix(strings.ToLower(e.Name()), ".gguf") {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return ModelFile{}, fmt.Errorf("no .gguf model files in %s", abs)
	}
	sort.Strings(names)
	return ModelFile{ID: names[0], Path: filepath.Join(abs, names[0])}, nil
}

// expandHome expands a leading '~' to the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" { return path, nil }
	if path[0] != '~' { return path, nil }
	home, err := os.UserHomeDir()
	if err != nil { return "", fmt.Errorf("home dir: %w", err) }
	if path == "~" { return home, nil }
	// handle cases like ~/models/llm
	return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
}
