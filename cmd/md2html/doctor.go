package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	flag "github.com/spf13/pflag"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/hints"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status    string        `json:"status"` // "ready", "warnings", "errors"
	Converter converterInfo `json:"converter"`
	Env       envInfo       `json:"environment"`
	System    systemInfo    `json:"system"`
	Warnings  []string      `json:"warnings,omitempty"`
	Errors    []string      `json:"errors,omitempty"`
}

// converterInfo holds converter detection results.
type converterInfo struct {
	Executable string `json:"executable"`
	Found      bool   `json:"found"`
	Path       string `json:"path,omitempty"`
	Version    string `json:"version,omitempty"`
}

// envInfo holds platform details.
type envInfo struct {
	OS   string `json:"os"`
	Arch string `json:"arch"`
}

// systemInfo holds system check results.
type systemInfo struct {
	WorkDir         string `json:"workdir,omitempty"`
	WorkDirWritable bool   `json:"workdir_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found, 2 = bad flags or config.
func runDoctorCmd(args []string, env *Environment) int {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	jsonOutput := fs.Bool("json", false, "machine-readable output")
	configName := fs.StringP("config", "c", "", "config file name or path")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printDoctorUsage(env.Stdout)
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "error: %v\n", fmt.Errorf("%w: %v", ErrInvalidFlag, err))
		printDoctorUsage(env.Stderr)
		return ExitUsage
	}

	executable := md2html.DefaultExecutable
	if *configName != "" {
		cfg, err := config.LoadConfig(*configName)
		if err != nil {
			fmt.Fprintf(env.Stderr, "error: loading config: %v\n", err)
			return exitCodeFor(err)
		}
		if cfg.Converter.Executable != "" {
			executable = cfg.Converter.Executable
		}
	}

	result := runDoctor(executable, env)

	if *jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// printDoctorUsage prints the doctor command's usage.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html doctor [--json] [--config <name>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that the converter is installed and the working directory is writable.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --json                Machine-readable output")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (converter.executable)")
	fmt.Fprintln(w, "  -h, --help                Show this help")
}

// runDoctor performs all diagnostic checks.
func runDoctor(executable string, env *Environment) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:   runtime.GOOS,
			Arch: runtime.GOARCH,
		},
		Converter: converterInfo{Executable: executable},
	}

	checkConverter(result, env)
	checkWorkDir(result, env)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkConverter locates the converter and reads its version banner.
func checkConverter(result *doctorResult, env *Environment) {
	path, err := env.LookPath(result.Converter.Executable)
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("%s not found in PATH%s", result.Converter.Executable, hints.ForConverterNotFound()))
		return
	}

	result.Converter.Found = true
	result.Converter.Path = path

	out, err := env.CommandOutput(path, "--version")
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not get %s version: %v%s", result.Converter.Executable, err, hints.ForConverterVersion()))
		return
	}

	// First line is "pandoc 3.1.11" or similar.
	firstLine, _, _ := strings.Cut(string(out), "\n")
	result.Converter.Version = strings.TrimSpace(firstLine)
}

// checkWorkDir verifies the default output location is writable.
func checkWorkDir(result *doctorResult, env *Environment) {
	dir, err := env.Getwd()
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Working directory unavailable: %v", err))
		return
	}
	result.System.WorkDir = dir

	f, err := os.CreateTemp(dir, ".md2html-doctor-*")
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Working directory not writable: %s (use --out or --out-dir)", dir))
		return
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	result.System.WorkDirWritable = true
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "md2html doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Converter")
	if r.Converter.Found {
		fmt.Fprintf(w, "  [OK] Found at %s\n", r.Converter.Path)
		if r.Converter.Version != "" {
			fmt.Fprintf(w, "  [OK] Version: %s\n", r.Converter.Version)
		}
	} else {
		fmt.Fprintf(w, "  [ERROR] %s not found\n", r.Converter.Executable)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.WorkDirWritable {
		fmt.Fprintln(w, "  [OK] Working directory: writable")
	} else {
		fmt.Fprintln(w, "  [WARN] Working directory: not writable")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to convert")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
