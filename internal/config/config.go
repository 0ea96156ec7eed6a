package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"

	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidLang     = errors.New("invalid language tag")
)

// Field length limits.
const (
	MaxTitleLength      = 200  // Document title
	MaxLangLength       = 35   // RFC 5646 recommends supporting at least 35 chars
	MaxURLLength        = 2048 // Browser limit, for css
	MaxHighlightLength  = 256  // Style name or .theme path
	MaxPathLength       = 4096 // PATH_MAX on Linux
	MaxExecutableLength = 4096
)

// userConfigSubdir is the directory under os.UserConfigDir searched for named configs.
const userConfigSubdir = "go-md2html"

// Config holds defaults applied to every conversion. CLI flags win over it.
type Config struct {
	Output    OutputConfig    `yaml:"output"`
	Document  DocumentConfig  `yaml:"document"`
	Style     StyleConfig     `yaml:"style"`
	Markdown  MarkdownConfig  `yaml:"markdown"`
	Converter ConverterConfig `yaml:"converter"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Used when neither --out nor --out-dir is given
}

// DocumentConfig defines document metadata.
type DocumentConfig struct {
	Title string `yaml:"title"`
	Lang  string `yaml:"lang"` // Empty = pt-BR
}

// StyleConfig defines presentation options.
type StyleConfig struct {
	CSS         string `yaml:"css"`         // Stylesheet URL or path
	GitHub      bool   `yaml:"github"`      // Wrap body in markdown-body article
	Highlight   string `yaml:"highlight"`   // Highlight theme name
	NoHighlight bool   `yaml:"noHighlight"` // Disable highlighting
}

// MarkdownConfig defines input reader options.
type MarkdownConfig struct {
	Breaks bool `yaml:"breaks"` // Single newlines become <br>
}

// ConverterConfig defines the external converter.
type ConverterConfig struct {
	Executable string `yaml:"executable"` // Name or path; empty = "pandoc"
}

// Validate checks field lengths and the language tag.
// Called automatically by LoadConfig, but available for callers
// who construct Config manually.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"document.title", c.Document.Title, MaxTitleLength},
		{"document.lang", c.Document.Lang, MaxLangLength},
		{"style.css", c.Style.CSS, MaxURLLength},
		{"style.highlight", c.Style.Highlight, MaxHighlightLength},
		{"converter.executable", c.Converter.Executable, MaxExecutableLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Document.Lang != "" {
		if err := ValidateLang(c.Document.Lang); err != nil {
			return fmt.Errorf("document.lang: %w", err)
		}
	}

	return nil
}

// ValidateLang checks that lang is a well-formed BCP 47 language tag.
// Private-use ("x-klingon") and grandfathered ("i-klingon") tags are valid,
// and so are subtags missing from the registry. The tag is only parsed:
// callers keep passing the original string to the converter.
func ValidateLang(lang string) error {
	if strings.TrimSpace(lang) == "" {
		return fmt.Errorf("%w: %q (expected a tag like pt-BR or en)", ErrInvalidLang, lang)
	}
	if _, err := language.Parse(lang); err != nil {
		var unknown language.ValueError
		if !errors.As(err, &unknown) {
			return fmt.Errorf("%w: %q (expected a tag like pt-BR or en)", ErrInvalidLang, lang)
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration: every field unset, so the
// built-in defaults apply.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s%s", ErrConfigNotFound, configPath, hints.ForConfigNotFound(nil))
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.DecodeStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrConfigParse, configPath, yamlutil.FormatError(err))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/go-md2html/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, userConfigSubdir, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s%s", ErrConfigNotFound, strings.Join(triedPaths, ", "), hints.ForConfigNotFound(triedPaths))
}
