package modelfile

import (
	"os"
	"path/filepath"
	"testing"
)

func writeEmpty(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(""), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestResolveFile(t *testing.T) {
	d := t.TempDir()
	p := writeEmpty(t, d, "phi-2.Q4_K_M.gguf")
	mf, err := Resolve(p)
	if err != nil { t.Fatalf("resolve: %v", err) }
	if mf.ID != "phi-2.Q4_K_M.gguf" { t.Fatalf("id=%q", mf.ID) }
	if mf.Path != p { t.Fatalf("path=%q want %q", mf.Path, p) }
}

func TestResolveFileWrongExtension(t *testing.T) {
	d := t.TempDir()
	p := writeEmpty(t, d, "weights.bin")
	if _, err := Resolve(p); err == nil {
		t.Fatalf("expected error for non-gguf file")
	}
}

func TestResolveDirPicksFirstSorted(t *testing.T) {
	d := t.TempDir()
	writeEmpty(t, d, "zeta.gguf")
	writeEmpty(t, d, "alpha.gguf")
	writeEmpty(t, d, "notes.txt")
	mf, err := Resolve(d)
	if err != nil { t.Fatalf("resolve: %v", err) }
	if mf.ID != "alpha.gguf" { t.Fatalf("id=%q, want alpha.gguf", mf.ID) }
}

func TestResolveDirEmpty(t *testing.T) {
	d := t.TempDir()
	if _, err := Resolve(d); err == nil {
		t.Fatalf("expected error for dir without gguf files")
	}
}

func TestResolveMissingPath(t *testing.T) {
	if _, err := Resolve("/definitely/not/a/real/model.gguf"); err == nil {
		t.Fatalf("expected error for missing path")
	}
}

func TestExpandHomePassthrough(t *testing.T) {
	for _, p := range []string{"", "/abs/path.gguf", "rel/path.gguf"} {
		got, err := expandHome(p)
		if err != nil { t.Fatalf("expandHome(%q): %v", p, err) }
		if got != p { t.Fatalf("expandHome(%q) = %q", p, got) }
	}
}
