package md2html

// Pandoc formats, extensions and template variables used by BuildArgs.
const (
	inputFormat       = "gfm"
	hardLineBreaksExt = "+hard_line_breaks"
	outputFormat      = "html5"

	githubOpen  = `<article class="markdown-body">`
	githubClose = `</article>`
)

// InputFormat returns the Pandoc reader for the given line-break mode.
// With breaks the hard_line_breaks extension is folded into the same token.
func InputFormat(breaks bool) string {
	if breaks {
		return inputFormat + hardLineBreaksExt
	}
	return inputFormat
}

// BuildArgs returns the Pandoc argument list for opts and paths.
// The result depends only on its inputs: identical inputs always yield
// identical lists. Input, "-o" and the output path are always last.
func BuildArgs(opts Options, paths Paths) []string {
	args := make([]string, 0, 20)

	args = append(args, "-f", InputFormat(opts.Breaks), "-t", outputFormat)
	args = append(args, "-s")

	lang := opts.Lang
	if lang == "" {
		lang = DefaultLang
	}
	args = append(args, "-V", "lang="+lang)
	if opts.Title != "" {
		args = append(args, "-V", "pagetitle="+opts.Title)
	}

	if opts.CSS != "" {
		args = append(args, "--css", opts.CSS)
	}

	switch {
	case opts.NoHighlight:
		args = append(args, "--no-highlight")
	case opts.Highlight != "":
		args = append(args, "--highlight-style", opts.Highlight)
	}

	// include-before/include-after are the template variables Pandoc's
	// HTML template emits around $body$.
	if opts.GitHub {
		args = append(args, "-V", "include-before="+githubOpen)
		args = append(args, "-V", "include-after="+githubClose)
	}

	return append(args, paths.Input, "-o", paths.Output)
}
