//go:build integration

package md2html

// Notes:
// - Requires Pandoc on PATH; tests skip otherwise.
// - We check the produced document's structure loosely: exact markup depends
//   on the installed Pandoc version.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func requirePandoc(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath(DefaultExecutable); err != nil {
		t.Skip("pandoc not found in PATH")
	}
}

func writeMarkdown(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func quietService(opts ...Option) *Service {
	runner := &ExecRunner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	return New(append([]Option{WithRunner(runner)}, opts...)...)
}

func TestService_Convert_Integration(t *testing.T) {
	requirePandoc(t)
	t.Parallel()

	dir := t.TempDir()
	input := writeMarkdown(t, dir, "guide.md", "# Hello\n\nline one\nline two\n\n```go\nfunc main() {}\n```\n")
	outDir := filepath.Join(dir, "nested", "dist")

	result, err := quietService().Convert(Options{
		Input:     input,
		OutputDir: outDir,
		Title:     "Guide",
		Lang:      "en",
		GitHub:    true,
		Breaks:    true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := filepath.Join(outDir, "guide.html")
	if result.Paths.Output != want {
		t.Errorf("output = %q, want %q", result.Paths.Output, want)
	}

	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	html := string(data)

	for _, fragment := range []string{
		"<!DOCTYPE html>",
		`lang="en"`,
		"<title>Guide</title>",
		`<article class="markdown-body">`,
		"</article>",
		"<br",
	} {
		if !strings.Contains(html, fragment) {
			t.Errorf("output should contain %q", fragment)
		}
	}
}

func TestService_Convert_MissingSource_Integration(t *testing.T) {
	requirePandoc(t)
	t.Parallel()

	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")

	_, err := quietService().Convert(Options{
		Input:     filepath.Join(dir, "absent.md"),
		OutputDir: outDir,
	})
	if !errors.Is(err, ErrConverterFailed) {
		t.Fatalf("expected ErrConverterFailed, got %v", err)
	}

	var exitErr *ConverterExitError
	if errors.As(err, &exitErr) && exitErr.Code == 0 {
		t.Error("exit status should be non-zero")
	}

	// The output directory is created before Pandoc runs and is not removed.
	if info, statErr := os.Stat(outDir); statErr != nil || !info.IsDir() {
		t.Errorf("output directory should remain after failure: %v", statErr)
	}
}

func TestService_Convert_ExecutableNotFound_Integration(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")

	_, err := quietService(WithExecutable("md2html-no-such-converter")).Convert(Options{
		Input:     "a.md",
		OutputDir: outDir,
	})
	if !errors.Is(err, ErrConverterNotFound) {
		t.Fatalf("expected ErrConverterNotFound, got %v", err)
	}
	if _, statErr := os.Stat(outDir); !os.IsNotExist(statErr) {
		t.Error("no directory should be created when the converter is missing")
	}
}
