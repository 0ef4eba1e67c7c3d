package app

import (
	"context"
	"fmt"
	"os"

	"formx/internal/analyze"
	"formx/internal/input"
)

// Config holds all configuration options for one formx invocation.
type Config struct {
	Sources []string // file paths, or "-" for stdin
	Options          // formatting options passed through to Process

	Analyze bool // report problematic characters before formatting
	Bare    bool // strip the count header from the output
	Quiet   bool // suppress advisory messages
	Debug   bool
}

// Run executes the main formx application logic with the given
// configuration: read the sources, optionally report the character scan,
// then hand the raw text to Process.
//
// ctx allows for cancellation while sources are being read; the
// processing itself is synchronous and bounded.
func Run(ctx context.Context, cfg Config) (string, error) {
	if len(cfg.Sources) == 0 {
		return "", fmt.Errorf("no input sources provided")
	}

	raw, err := input.ReadAll(ctx, cfg.Sources)
	if err != nil {
		return "", err
	}

	// advisory scan; never alters processing
	if cfg.Analyze && !cfg.Quiet {
		fmt.Fprintln(os.Stderr, analyze.Warning(analyze.Scan(raw)))
	}

	result, err := Process(raw, cfg.Options)
	if err != nil {
		return "", err
	}

	if cfg.Bare {
		return result.Body, nil
	}
	return result.Output, nil
}
