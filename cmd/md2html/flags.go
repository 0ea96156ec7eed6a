package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Sentinel errors for flag parsing. All of them are usage errors.
var (
	ErrInvalidFlag        = errors.New("invalid flag")
	ErrMissingFlagValue   = errors.New("flag needs a value")
	ErrUnexpectedArgument = errors.New("unexpected argument")
)

// convertFlags holds all flags for a conversion.
type convertFlags struct {
	in     string
	out    string
	outDir string

	title string
	lang  string
	css   string

	highlight   string
	noHighlight bool
	github      bool
	breaks      bool

	help    bool
	config  string
	quiet   bool
	verbose bool
}

// newConvertFlagSet registers every conversion flag on a fresh FlagSet.
// Errors are returned, never printed: the caller owns all output.
func newConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("md2html", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	// I/O
	fs.StringVar(&f.in, "in", "", "markdown source path (required)")
	fs.StringVar(&f.out, "out", "", "output file path (wins over --out-dir)")
	fs.StringVar(&f.outDir, "out-dir", "", "output directory; file name derived from --in")

	// Document
	fs.StringVar(&f.title, "title", "", "document title")
	fs.StringVar(&f.lang, "lang", "", "document language tag (default: pt-BR)")
	fs.StringVar(&f.css, "css", "", "stylesheet URL or path")

	// Rendering
	fs.StringVar(&f.highlight, "highlight", "", "syntax highlight theme")
	fs.BoolVar(&f.noHighlight, "no-highlight", false, "disable syntax highlighting")
	fs.BoolVar(&f.github, "github", false, "wrap body in <article class=\"markdown-body\">")
	fs.BoolVar(&f.breaks, "breaks", false, "convert single line breaks to <br>")

	// Common
	fs.BoolVarP(&f.help, "help", "h", false, "show help")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log pipeline details to stderr")

	return fs
}

// parseConvertFlags parses conversion flags. Help short-circuits parsing and
// returns flags with only help set.
func parseConvertFlags(args []string) (*convertFlags, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet(f)

	help, err := scanArgs(fs, args)
	if err != nil {
		return nil, err
	}
	if help {
		return &convertFlags{help: true}, nil
	}

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: %q (use --in <file.md>)", ErrUnexpectedArgument, fs.Arg(0))
	}

	return f, nil
}

// scanArgs walks the tokens in order before pflag sees them. It reports help
// as soon as --help or -h appears, even where a flag value is expected, and
// rejects a value flag whose value is missing or looks like another long flag
// ("--title --github"). pflag alone would silently take "--github" as the title.
func scanArgs(fs *flag.FlagSet, args []string) (help bool, err error) {
	for i := 0; i < len(args); i++ {
		tok := args[i]

		if tok == "--" {
			return false, nil
		}
		if isHelpToken(tok) {
			return true, nil
		}

		fl := lookupToken(fs, tok)
		if fl == nil || fl.Value.Type() == "bool" {
			continue
		}

		if i+1 < len(args) && isHelpToken(args[i+1]) {
			return true, nil
		}
		if i+1 >= len(args) || strings.HasPrefix(args[i+1], "--") {
			return false, fmt.Errorf("%w: %s", ErrMissingFlagValue, tok)
		}
		i++ // value consumed
	}
	return false, nil
}

func isHelpToken(tok string) bool {
	return tok == "--help" || tok == "-h"
}

// lookupToken returns the flag named by a bare "--name" or "-x" token.
// Tokens carrying their own value ("--name=v", "-xv") and non-flags return nil.
func lookupToken(fs *flag.FlagSet, tok string) *flag.Flag {
	switch {
	case strings.HasPrefix(tok, "--"):
		name := tok[2:]
		if name == "" || strings.Contains(name, "=") {
			return nil
		}
		return fs.Lookup(name)
	case strings.HasPrefix(tok, "-") && len(tok) == 2:
		return fs.ShorthandLookup(tok[1:])
	}
	return nil
}
