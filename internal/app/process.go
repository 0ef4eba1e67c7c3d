// Package app contains the core application logic for the formx CLI tool.
// It handles the main business logic separated from CLI concerns.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"formx/internal/counter"
	"formx/internal/format"
	"formx/internal/keygen"
	"formx/internal/separator"
	"formx/internal/tokenizer"
)

// Sentinel errors for programmatic error handling. Every error aborts the
// whole Process call: nothing is emitted on failure, so whatever the
// caller displayed before a failed attempt stays untouched.
var (
	// ErrEmptyInput indicates the raw input was empty or whitespace-only.
	ErrEmptyInput = errors.New("input is empty")
	// ErrNoItems indicates tokenization produced no items.
	ErrNoItems = errors.New("no items found in input")
)

// Options holds the caller-selected formatting options for one call.
type Options struct {
	Separator   separator.Choice // how items are detected/joined
	Style       format.Style     // output shape (none/list/tuple/dict)
	KeyStrategy keygen.Strategy  // dictionary key generation (Dict style only)
	Prefix      string           // key prefix for the user-defined strategy
	CountMethod counter.Method   // how the displayed item count is computed
}

// Result is the outcome of a successful Process call.
type Result struct {
	Output   string              // full output including the count header
	Body     string              // output without the header
	Count    int                 // displayed item count
	Items    []string            // tokenized item sequence
	Resolved separator.Separator // concrete separator after Auto resolution
}

// Process converts raw input into formatted output under the given
// options. It is a pure, synchronous function of its inputs: no IO, no
// shared state, bounded by input length.
//
// Processing Pipeline:
//  1. Validate and tokenize the input (separator detection happens here)
//  2. Compute the displayed item count
//  3. Generate dictionary key/value pairs when requested
//  4. Render the final output
func Process(raw string, opts Options) (Result, error) {
	if strings.TrimSpace(raw) == "" {
		return Result{}, ErrEmptyInput
	}

	// step 1: normalize and split into items
	items, resolved := tokenizer.Split(raw, opts.Separator)
	if len(items) == 0 {
		return Result{}, ErrNoItems
	}

	// step 2: count content independently of the item sequence length
	c := counter.NewCounter(opts.CountMethod)
	count := counter.Sum(c, items)
	slog.Debug("items counted", "method", c.Name(), "count", count, "items", len(items))

	// step 3: dictionary keys, only when dict output asks for them
	var pairs []keygen.Pair
	if opts.Style == format.Dict && opts.KeyStrategy != keygen.None {
		var err error
		pairs, err = keygen.Generate(items, opts.KeyStrategy, opts.Prefix)
		if err != nil {
			return Result{}, fmt.Errorf("generating dictionary keys: %w", err)
		}
	}

	// step 4: render
	output := format.Render(items, count, opts.Style, resolved, pairs)

	return Result{
		Output:   output,
		Body:     format.StripHeader(output),
		Count:    count,
		Items:    items,
		Resolved: resolved,
	}, nil
}
