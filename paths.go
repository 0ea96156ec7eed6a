package md2html

import (
	"path/filepath"
	"strings"
)

// htmlExt is appended to derived output names.
const htmlExt = ".html"

// ResolvePaths derives the output location from opts.
// It is pure: it neither touches the filesystem nor depends on the working
// directory. OutputDir is always the parent of Output.
func ResolvePaths(opts Options) Paths {
	out := OutputPath(opts.Input, opts.Output, opts.OutputDir)
	return Paths{
		Input:     opts.Input,
		Output:    out,
		OutputDir: filepath.Dir(out),
	}
}

// OutputPath returns the destination for input.
//
// Priority:
//  1. out, used as-is
//  2. outDir joined with the input stem plus ".html"
//  3. the input stem plus ".html", relative to the current directory
func OutputPath(input, out, outDir string) string {
	if out != "" {
		return out
	}
	name := stem(input) + htmlExt
	if outDir != "" {
		return filepath.Join(outDir, name)
	}
	return name
}

// stem returns the base name of path without its final extension.
// A leading dot does not start an extension: ".md" stays ".md".
func stem(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == base {
		return base
	}
	return strings.TrimSuffix(base, ext)
}
