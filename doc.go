// Package md2html converts a single Markdown file to a standalone HTML5
// document by running Pandoc as a child process.
//
// # Quick Start
//
// Create a service and convert a file:
//
//	svc := md2html.New()
//	result, err := svc.Convert(md2html.Options{Input: "README.md"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Created", result.Paths.Output)
//
// Pandoc inherits the process's standard streams, so its diagnostics reach
// the terminal unchanged.
//
// # Conversion Pipeline
//
// Convert runs these stages once each, in order:
//
//  1. Validate options (Input is required)
//  2. Locate the converter executable on PATH
//  3. Resolve the output path (explicit Output, else OutputDir, else current directory)
//  4. Create the output directory
//  5. Build the Pandoc argument list
//  6. Run Pandoc and wait for it to exit
//
// A failing stage stops the pipeline. Nothing is retried.
//
// # Output Location
//
// The output file name is the input's base name with its final extension
// replaced by ".html":
//
//	README.md                 -> README.html
//	docs/guide.md, out-dir    -> out-dir/guide.html
//	notes.v2.md               -> notes.v2.html
//
// An explicit Output is used verbatim.
//
// # Pandoc Arguments
//
// BuildArgs is pure and deterministic. Input is read as GitHub-Flavored
// Markdown ("gfm", or "gfm+hard_line_breaks" when Breaks is set) and written
// as standalone HTML5 with the document language set. Optional title, CSS,
// highlighting and the GitHub "markdown-body" wrapper follow. The input path,
// "-o" and the output path always come last.
//
// # Error Handling
//
// Errors wrap sentinels that can be checked with errors.Is:
//
//	result, err := svc.Convert(opts)
//	switch {
//	case errors.Is(err, md2html.ErrConverterNotFound):
//	    // Pandoc is not installed or not on PATH
//	case errors.Is(err, md2html.ErrConverterFailed):
//	    var exitErr *md2html.ConverterExitError
//	    errors.As(err, &exitErr)
//	    os.Exit(exitErr.Code)
//	}
//
// # Testing
//
// Inject a CommandRunner and LookPathFunc to test without Pandoc:
//
//	svc := md2html.New(
//	    md2html.WithRunner(fakeRunner),
//	    md2html.WithLookPath(func(string) (string, error) { return "/usr/bin/pandoc", nil }),
//	)
package md2html
