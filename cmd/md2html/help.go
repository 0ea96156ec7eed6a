package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "md2html - export Markdown to standalone HTML5 via Pandoc")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  md2html --in <file.md> [--out <file.html>] [flags]")
	fmt.Fprintln(w, "  md2html --in <file.md> --out-dir <dir> [flags]")
	fmt.Fprintln(w, "  md2html <command>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "      --in <path>           Markdown source (required)")
	fmt.Fprintln(w, "      --out <path>          Output file (wins over --out-dir)")
	fmt.Fprintln(w, "      --out-dir <dir>       Output directory; file is <name>.html")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>           Document <title>")
	fmt.Fprintln(w, "      --lang <tag>          <html lang> attribute (default: pt-BR)")
	fmt.Fprintln(w, "      --css <url|path>      Add <link rel=\"stylesheet\">")
	fmt.Fprintln(w, "      --github              Wrap body in <article class=\"markdown-body\">")
	fmt.Fprintln(w, "      --breaks              Single line breaks become <br> (GFM style)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Highlighting:")
	fmt.Fprintln(w, "      --highlight <theme>   kate, pygments, tango, espresso, zenburn, haddock,")
	fmt.Fprintln(w, "                            monochrome, breezedark, or a .theme file")
	fmt.Fprintln(w, "      --no-highlight        Disable highlighting (wins over --highlight)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Log pipeline details to stderr")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  doctor [--json]           Check that Pandoc is installed and usable")
	fmt.Fprintln(w, "  version                   Show version information")
	fmt.Fprintln(w, "  help                      Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  md2html --in README.md --out README.html --title \"Docs\" --lang en")
	fmt.Fprintln(w, "  md2html --in src/page.md --out-dir dist --css https://cdn.jsdelivr.net/npm/github-markdown-css@5.8.1/github-markdown.css --github")
	fmt.Fprintln(w, "  md2html --in src/page.md --out-dir dist --highlight kate")
	fmt.Fprintln(w, "  md2html --in src/page.md --out-dir dist --no-highlight")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Requires Pandoc on PATH: https://pandoc.org/installing.html")
}
