package utils

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestReadSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.c")
	if err := os.WriteFile(path, []byte("int main(void x) { return 0; }"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	src, err := ReadSource(path)
	if err != nil {
		t.Fatalf("ReadSource failed: %v", err)
	}
	if src != "int main(void x) { return 0; }" {
		t.Errorf("ReadSource = %q", src)
	}
}

func TestReadSource_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.c")

	_, err := ReadSource(path)
	var readErr *ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("expected *ReadError, got %T (%v)", err, err)
	}
	if readErr.Path != path {
		t.Errorf("Path = %q, want %q", readErr.Path, path)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected error to wrap fs.ErrNotExist, got %v", err)
	}
}

func TestGetPathInfo(t *testing.T) {
	full, dir, err := GetPathInfo(filepath.Join("a", "b", "..", "c.c"))
	if err != nil {
		t.Fatalf("GetPathInfo failed: %v", err)
	}
	if !filepath.IsAbs(full) {
		t.Errorf("fullPath %q is not absolute", full)
	}
	if filepath.Base(full) != "c.c" || filepath.Base(dir) != "a" {
		t.Errorf("GetPathInfo = (%q, %q)", full, dir)
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		in, ext, want string
	}{
		{"main.c", ".s", "main.s"},
		{"dir/prog.src.c", ".s", "dir/prog.src.s"},
		{"noext", ".s", "noext.s"},
	}
	for _, tc := range tests {
		if got := OutputPath(tc.in, tc.ext); got != tc.want {
			t.Errorf("OutputPath(%q, %q) = %q; want %q", tc.in, tc.ext, got, tc.want)
		}
	}
}
