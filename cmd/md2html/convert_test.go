package main

// Notes:
// - mergeOptions: we test precedence between flags and config values.
// - Config loading is exercised through runMain with config files written
//   to a temp dir, so named lookups in the user config dir are not covered here.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
)

// ---------------------------------------------------------------------------
// TestMergeOptions - Flag and config precedence
// ---------------------------------------------------------------------------

func TestMergeOptions(t *testing.T) {
	t.Parallel()

	full := &config.Config{
		Output:   config.OutputConfig{DefaultDir: "public"},
		Document: config.DocumentConfig{Title: "Config Title", Lang: "fr"},
		Style: config.StyleConfig{
			CSS: "config.css", GitHub: true, Highlight: "tango", NoHighlight: false,
		},
		Markdown: config.MarkdownConfig{Breaks: true},
	}

	tests := []struct {
		name  string
		flags convertFlags
		cfg   *config.Config
		want  md2html.Options
	}{
		{
			name:  "flags only",
			flags: convertFlags{in: "a.md", outDir: "dist", title: "T", lang: "en", css: "s.css", highlight: "kate", github: true},
			cfg:   config.DefaultConfig(),
			want: md2html.Options{
				Input: "a.md", OutputDir: "dist", Title: "T", Lang: "en",
				CSS: "s.css", Highlight: "kate", GitHub: true,
			},
		},
		{
			name:  "config fills gaps",
			flags: convertFlags{in: "a.md"},
			cfg:   full,
			want: md2html.Options{
				Input: "a.md", OutputDir: "public", Title: "Config Title", Lang: "fr",
				CSS: "config.css", Highlight: "tango", GitHub: true, Breaks: true,
			},
		},
		{
			name:  "flags override config",
			flags: convertFlags{in: "a.md", outDir: "dist", title: "T", lang: "en", css: "s.css", highlight: "kate"},
			cfg:   full,
			want: md2html.Options{
				Input: "a.md", OutputDir: "dist", Title: "T", Lang: "en",
				CSS: "s.css", Highlight: "kate", GitHub: true, Breaks: true,
			},
		},
		{
			name:  "explicit out kept alongside config dir",
			flags: convertFlags{in: "a.md", out: "x.html"},
			cfg:   &config.Config{Output: config.OutputConfig{DefaultDir: "public"}},
			want:  md2html.Options{Input: "a.md", Output: "x.html", OutputDir: "public"},
		},
		{
			name:  "no-highlight flag wins over config theme",
			flags: convertFlags{in: "a.md", noHighlight: true},
			cfg:   full,
			want: md2html.Options{
				Input: "a.md", OutputDir: "public", Title: "Config Title", Lang: "fr",
				CSS: "config.css", Highlight: "tango", NoHighlight: true, GitHub: true, Breaks: true,
			},
		},
		{
			name:  "config no-highlight applies without theme flag",
			flags: convertFlags{in: "a.md"},
			cfg:   &config.Config{Style: config.StyleConfig{NoHighlight: true}},
			want:  md2html.Options{Input: "a.md", NoHighlight: true},
		},
		{
			name:  "theme flag overrides config no-highlight",
			flags: convertFlags{in: "a.md", highlight: "zenburn"},
			cfg:   &config.Config{Style: config.StyleConfig{NoHighlight: true}},
			want:  md2html.Options{Input: "a.md", Highlight: "zenburn"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags := tt.flags
			got := mergeOptions(&flags, tt.cfg)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mergeOptions() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFirstNonEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		values []string
		want   string
	}{
		{nil, ""},
		{[]string{"", ""}, ""},
		{[]string{"a", "b"}, "a"},
		{[]string{"", "b"}, "b"},
	}

	for _, tt := range tests {
		if got := firstNonEmpty(tt.values...); got != tt.want {
			t.Errorf("firstNonEmpty(%q) = %q, want %q", tt.values, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestRunConvert_Config - Config file applied through the CLI
// ---------------------------------------------------------------------------

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "md2html.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestRunConvert_Config(t *testing.T) {
	t.Parallel()

	cfgPath := writeConfig(t, `
output:
  defaultDir: public
document:
  title: Handbook
  lang: en-US
style:
  github: true
markdown:
  breaks: true
`)

	env := newTestEnv(t)
	code := runMain([]string{"--in", "guide.md", "--config", cfgPath, "--title", "Guide"}, env.Environment)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want 0; stderr: %s", code, env.stderr)
	}

	want := []string{
		"/usr/bin/pandoc", "-f", "gfm+hard_line_breaks", "-t", "html5", "-s",
		"-V", "lang=en-US",
		"-V", "pagetitle=Guide",
		"-V", `include-before=<article class="markdown-body">`,
		"-V", "include-after=</article>",
		"guide.md", "-o", filepath.Join("public", "guide.html"),
	}
	if diff := cmp.Diff(want, env.runner.calls[0]); diff != "" {
		t.Errorf("command mismatch (-want +got):\n%s", diff)
	}
}

func TestRunConvert_ConfigExecutable(t *testing.T) {
	t.Parallel()

	cfgPath := writeConfig(t, "converter:\n  executable: pandoc-3\n")

	env := newTestEnv(t)
	env.LookPath = func(file string) (string, error) {
		return "/opt/bin/" + file, nil
	}

	code := runMain([]string{"--in", "a.md", "-c", cfgPath}, env.Environment)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want 0; stderr: %s", code, env.stderr)
	}
	if got := env.runner.calls[0][0]; got != "/opt/bin/pandoc-3" {
		t.Errorf("executable = %q, want /opt/bin/pandoc-3", got)
	}
}

func TestRunConvert_ConfigErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown field", "style:\n  colour: red\n", "failed to parse config"},
		{"bad lang", "document:\n  lang: \"not a tag\"\n", "invalid language tag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(t)
			code := runMain([]string{"--in", "a.md", "--config", writeConfig(t, tt.content)}, env.Environment)

			if code != ExitUsage {
				t.Errorf("exit code = %d, want %d", code, ExitUsage)
			}
			if !strings.Contains(env.stderr.String(), tt.want) {
				t.Errorf("stderr should contain %q, got %q", tt.want, env.stderr)
			}
			if len(env.runner.calls) != 0 {
				t.Error("converter should not run")
			}
		})
	}
}

func TestRunConvert_ConfigNotFound(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	missing := filepath.Join(t.TempDir(), "absent.yaml")

	code := runMain([]string{"--in", "a.md", "--config", missing}, env.Environment)
	if code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(env.stderr.String(), "config file not found") {
		t.Errorf("stderr = %q", env.stderr)
	}
}

func TestRunConvert_MissingInputSkipsConfig(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	missing := filepath.Join(t.TempDir(), "absent.yaml")

	code := runMain([]string{"--config", missing}, env.Environment)
	if code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
	if strings.Contains(env.stderr.String(), "config file not found") {
		t.Error("missing --in should be reported before config is loaded")
	}
}
