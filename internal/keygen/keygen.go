// Package keygen produces ordered key/value pairs for dictionary output.
//
// Each strategy maps the item sequence to pairs in input order; the pair
// count always matches the item count, except for None, which yields no
// pairs and signals the caller to fall back to separator-style joining.
// Key uniqueness is not enforced: duplicate keys are allowed, matching
// literal dictionary syntax where later keys simply collide.
package keygen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMissingPrefix indicates the user-defined key strategy was selected
// without a prefix. The whole formatting operation aborts in that case.
var ErrMissingPrefix = errors.New("user-defined keys require a non-empty prefix")

// Strategy represents the available dictionary key generation strategies.
type Strategy int

const (
	// None requests no dictionary keys; the caller joins items instead
	None Strategy = iota
	// Index keys items by 0-based position
	Index
	// Numbered generates item_1, item_2, ... keys
	Numbered
	// FirstWord uses each item's first word as its key
	FirstWord
	// UserPrefix generates <prefix>_1, <prefix>_2, ... keys
	UserPrefix
)

// String returns the string representation of the strategy.
func (s Strategy) String() string {
	switch s {
	case None:
		return "none"
	case Index:
		return "index"
	case Numbered:
		return "auto"
	case FirstWord:
		return "first-word"
	case UserPrefix:
		return "user"
	default:
		return "unknown"
	}
}

// ParseStrategy parses a key strategy from its CLI flag value.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "none", "":
		return None, nil
	case "index":
		return Index, nil
	case "auto":
		return Numbered, nil
	case "first-word":
		return FirstWord, nil
	case "user":
		return UserPrefix, nil
	default:
		return None, fmt.Errorf("unknown key strategy %q (want none, index, auto, first-word, or user)", s)
	}
}

// Pair is a single dictionary entry. Pairs are kept in a slice so output
// order always follows input order.
type Pair struct {
	Key   string
	Value string
}

// Generate maps items to key/value pairs using the given strategy.
// prefix is only consulted by UserPrefix; it must be non-blank there or
// Generate fails with ErrMissingPrefix. None returns no pairs and no error.
func Generate(items []string, strategy Strategy, prefix string) ([]Pair, error) {
	if strategy == None {
		return nil, nil
	}

	pairs := make([]Pair, 0, len(items))

	switch strategy {
	case Index:
		for i, item := range items {
			pairs = append(pairs, Pair{Key: strconv.Itoa(i), Value: item})
		}
	case Numbered:
		for i, item := range items {
			pairs = append(pairs, Pair{Key: fmt.Sprintf("item_%d", i+1), Value: item})
		}
	case UserPrefix:
		prefix = strings.TrimSpace(prefix)
		if prefix == "" {
			return nil, ErrMissingPrefix
		}
		for i, item := range items {
			pairs = append(pairs, Pair{Key: fmt.Sprintf("%s_%d", prefix, i+1), Value: item})
		}
	case FirstWord:
		for _, item := range items {
			pairs = append(pairs, firstWordPair(item))
		}
	default:
		return nil, fmt.Errorf("unknown key strategy %d", strategy)
	}

	return pairs, nil
}

// firstWordPair keys an item by its first word. The value is the rest of
// the item rejoined with single spaces; a single-word item keys itself
// (key == value == item). A zero-word item should not occur given the
// tokenizer invariant, but defensively maps to key == value == item.
func firstWordPair(item string) Pair {
	words := strings.Fields(item)
	switch {
	case len(words) == 0:
		return Pair{Key: item, Value: item}
	case len(words) == 1:
		return Pair{Key: words[0], Value: item}
	default:
		return Pair{Key: words[0], Value: strings.Join(words[1:], " ")}
	}
}
