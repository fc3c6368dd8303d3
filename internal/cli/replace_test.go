package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"repalette/internal/util"
)

// helper to write an edit-rule file that changes nothing
func writeEmptyRules(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("dark = []\nlight = []\n"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReplace_EmptyDiffStillGuardsDestination(t *testing.T) {
	dir := t.TempDir()
	conf := writeEmptyRules(t, dir)

	src := filepath.Join(dir, "theme.css")
	if err := os.WriteFile(src, []byte("color: #1e1e2e;\n"), 0644); err != nil {
		t.Fatal(err)
	}
	dst := filepath.Join(dir, "out.css")
	if err := os.WriteFile(dst, []byte("precious"), 0644); err != nil {
		t.Fatal(err)
	}

	rootCmd.SetArgs([]string{"replace", src, dst, "--conf", conf})
	err := rootCmd.Execute()
	if !errors.Is(err, util.ErrDestinationExists) {
		t.Fatalf("expected ErrDestinationExists, got %v", err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "precious" {
		t.Fatalf("existing destination was touched: %q", data)
	}
}

func TestReplace_EmptyDiffWritesUnmodifiedCopy(t *testing.T) {
	dir := t.TempDir()
	conf := writeEmptyRules(t, dir)

	src := filepath.Join(dir, "theme.css")
	content := "color: #1e1e2e;\n"
	if err := os.WriteFile(src, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	rootCmd.SetArgs([]string{"replace", src, "--conf", conf})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "theme-replaced.css"))
	if err != nil {
		t.Fatalf("derived destination missing: %v", err)
	}
	if string(data) != content {
		t.Fatalf("copy content = %q, want the unmodified source", data)
	}
}
