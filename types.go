package md2html

import (
	"io"
	"log/slog"
)

// Defaults applied when an option is not set.
const (
	DefaultExecutable = "pandoc"
	DefaultLang       = "pt-BR"
)

// FallbackExitCode is reported when the converter terminates without a
// normal exit status (killed by a signal, for example).
const FallbackExitCode = 1

// Options describes a single conversion. Empty strings mean "not set".
type Options struct {
	Input     string // Markdown source path (required)
	Output    string // Explicit output path, wins over OutputDir
	OutputDir string // Output directory; file name derived from Input
	Title     string // Document title (pagetitle variable)
	Lang      string // Document language tag (default: DefaultLang)
	CSS       string // Stylesheet URL or path

	Highlight   string // Syntax highlight theme
	NoHighlight bool   // Disable highlighting (wins over Highlight)
	GitHub      bool   // Wrap the body in GitHub markdown-body markup
	Breaks      bool   // Treat single newlines as hard line breaks
}

// Validate checks that required options are present.
func (o Options) Validate() error {
	if o.Input == "" {
		return ErrMissingInput
	}
	return nil
}

// Paths holds the resolved input and output locations of a conversion.
type Paths struct {
	Input     string
	Output    string
	OutputDir string
}

// Invocation is the converter command line: the executable and its
// arguments, in order.
type Invocation struct {
	Executable string
	Args       []string
}

// Result describes a successful conversion.
type Result struct {
	Paths      Paths
	Invocation Invocation
}

// LookPathFunc resolves an executable name to a path, like exec.LookPath.
type LookPathFunc func(file string) (string, error)

// DirCreator creates a directory tree if it does not exist.
type DirCreator func(dir string) error

// Option configures a Service.
type Option func(*Service)

// WithExecutable sets the converter executable name or path.
// An empty name keeps DefaultExecutable.
func WithExecutable(name string) Option {
	return func(s *Service) {
		if name != "" {
			s.executable = name
		}
	}
}

// WithRunner sets the command runner used to invoke the converter.
func WithRunner(r CommandRunner) Option {
	if r == nil {
		panic("md2html: WithRunner runner must not be nil")
	}
	return func(s *Service) {
		s.runner = r
	}
}

// WithLookPath sets the executable lookup used to locate the converter.
func WithLookPath(fn LookPathFunc) Option {
	if fn == nil {
		panic("md2html: WithLookPath func must not be nil")
	}
	return func(s *Service) {
		s.lookPath = fn
	}
}

// WithDirCreator sets the function used to create the output directory.
func WithDirCreator(fn DirCreator) Option {
	if fn == nil {
		panic("md2html: WithDirCreator func must not be nil")
	}
	return func(s *Service) {
		s.mkdirAll = fn
	}
}

// WithLogger sets the logger for pipeline diagnostics.
// A nil logger discards all records.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l == nil {
			l = slog.New(slog.NewTextHandler(io.Discard, nil))
		}
		s.logger = l
	}
}
