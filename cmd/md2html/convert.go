package main

import (
	"errors"
	"fmt"
	"log/slog"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
)

// runConvertCmd parses flags, runs one conversion and returns the exit code.
// It is the only place that decides what the user sees on failure.
func runConvertCmd(args []string, env *Environment) int {
	flags, err := parseConvertFlags(args)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n\n", err)
		printUsage(env.Stderr)
		return exitCodeFor(err)
	}

	if flags.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	logger := newLogger(flags.verbose, env.Stderr)

	result, err := runConvert(flags, env, logger)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		if errors.Is(err, md2html.ErrMissingInput) {
			fmt.Fprintln(env.Stderr)
			printUsage(env.Stderr)
		}
		return exitCodeFor(err)
	}

	if !flags.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", result.Paths.Output)
	}
	return ExitSuccess
}

// runConvert loads the optional config, merges flags over it and delegates
// to the conversion service.
func runConvert(flags *convertFlags, env *Environment, logger *slog.Logger) (*md2html.Result, error) {
	if flags.in == "" {
		return nil, fmt.Errorf("--in <file.md>: %w", md2html.ErrMissingInput)
	}

	cfg := config.DefaultConfig()
	if flags.config != "" {
		var err error
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		logger.Debug("config loaded", "source", flags.config)
	}

	if flags.lang != "" {
		if err := config.ValidateLang(flags.lang); err != nil {
			return nil, fmt.Errorf("--lang: %w", err)
		}
	}

	opts := mergeOptions(flags, cfg)

	svc := md2html.New(
		md2html.WithExecutable(cfg.Converter.Executable),
		md2html.WithRunner(env.Runner),
		md2html.WithLookPath(env.LookPath),
		md2html.WithDirCreator(env.MkdirAll),
		md2html.WithLogger(logger),
	)

	return svc.Convert(opts)
}

// mergeOptions merges CLI flags into config values. CLI values override
// config values; boolean flags can only switch a feature on. An explicit
// --highlight overrides noHighlight from config, while --no-highlight
// always wins.
func mergeOptions(flags *convertFlags, cfg *config.Config) md2html.Options {
	return md2html.Options{
		Input:       flags.in,
		Output:      flags.out,
		OutputDir:   firstNonEmpty(flags.outDir, cfg.Output.DefaultDir),
		Title:       firstNonEmpty(flags.title, cfg.Document.Title),
		Lang:        firstNonEmpty(flags.lang, cfg.Document.Lang),
		CSS:         firstNonEmpty(flags.css, cfg.Style.CSS),
		Highlight:   firstNonEmpty(flags.highlight, cfg.Style.Highlight),
		NoHighlight: flags.noHighlight || (cfg.Style.NoHighlight && flags.highlight == ""),
		GitHub:      flags.github || cfg.Style.GitHub,
		Breaks:      flags.breaks || cfg.Markdown.Breaks,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
