package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"formx/internal/app"
	"formx/internal/counter"
	"formx/internal/format"
	"formx/internal/keygen"
	"formx/internal/separator"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// buildConfig constructs an app.Config from command flags and arguments
func buildConfig(cmd *cobra.Command, args []string) (app.Config, error) {
	// get flag values
	separatorFlag, _ := cmd.Flags().GetString("separator")
	listFlag, _ := cmd.Flags().GetBool("list")
	tupleFlag, _ := cmd.Flags().GetBool("tuple")
	dictFlag, _ := cmd.Flags().GetBool("dict")
	keyFlag, _ := cmd.Flags().GetString("key")
	prefix, _ := cmd.Flags().GetString("prefix")
	countFlag, _ := cmd.Flags().GetString("count")
	analyzeFlag, _ := cmd.Flags().GetBool("analyze")
	bare, _ := cmd.Flags().GetBool("bare")
	quiet, _ := cmd.Flags().GetBool("quiet")
	debug, _ := cmd.Flags().GetBool("debug")

	// determine separator choice
	choice, err := separator.ParseChoice(separatorFlag)
	if err != nil {
		return app.Config{}, err
	}

	// determine output style
	var style format.Style
	switch {
	case listFlag:
		style = format.List
	case tupleFlag:
		style = format.Tuple
	case dictFlag:
		style = format.Dict
	default:
		style = format.None // no bracket formatting if no style flag
	}

	// determine dictionary key strategy; only meaningful with --dict
	strategy, err := keygen.ParseStrategy(keyFlag)
	if err != nil {
		return app.Config{}, err
	}
	if strategy != keygen.None && style != format.Dict {
		return app.Config{}, fmt.Errorf("--key requires --dict")
	}
	if prefix != "" && strategy != keygen.UserPrefix {
		return app.Config{}, fmt.Errorf("--prefix requires --key user")
	}

	// determine counting method
	method, ok := counter.ParseMethod(countFlag)
	if !ok {
		return app.Config{}, fmt.Errorf("unknown count method %q (want content, words, or characters)", countFlag)
	}

	// use positional arguments as sources
	var sources []string
	if len(args) == 0 {
		// no arguments provided - use stdin, unless it is an interactive
		// terminal with nothing piped in
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return app.Config{}, fmt.Errorf("no input: pass a file, or pipe text on stdin")
		}
		sources = append(sources, "-")
	} else {
		sources = args
	}

	// return constructed config
	return app.Config{
		Sources: sources,
		Options: app.Options{
			Separator:   choice,
			Style:       style,
			KeyStrategy: strategy,
			Prefix:      prefix,
			CountMethod: method,
		},
		Analyze: analyzeFlag,
		Bare:    bare,
		Quiet:   quiet,
		Debug:   debug,
	}, nil
}

// setupLogger configures the default slog logger based on debug mode
func setupLogger(debug bool) {
	var level slog.Level
	if debug {
		level = slog.LevelDebug
	} else {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

var rootCmd = &cobra.Command{
	Use:   "formx [sources...]",
	Short: "A CLI tool for formatting raw strings into structured literals",
	Long: `Formx converts raw text into formatted literal syntax: plain joined text,
lists, tuples, or dictionaries with configurable key generation. Sources
may include local files or standard input.

Examples:
  echo "hello world test" | formx --list
  echo "a,b,c" | formx
  echo "x y" | formx --dict --key index
  formx notes.txt --tuple`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// build config from flags and arguments
		config, err := buildConfig(cmd, args)
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}

		// configure logging pending debug flag
		setupLogger(config.Debug)

		// create context with signal handling for graceful shutdown
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		// run the app!
		result, err := app.Run(ctx, config)
		if err != nil {
			return fmt.Errorf("formx failed: %w", err)
		}

		// output the result
		fmt.Println(result)

		return nil
	},
}

func init() {
	rootCmd.Flags().StringP("separator", "s", "auto", "Separator choice: auto, space, comma, or newline")

	// output style flags
	rootCmd.Flags().Bool("list", false, "Format items as a bracketed list")
	rootCmd.Flags().Bool("tuple", false, "Format items as a parenthesized tuple")
	rootCmd.Flags().Bool("dict", false, "Format items as a dictionary (see --key)")

	// output style flags are mutually exclusive
	rootCmd.MarkFlagsMutuallyExclusive("list", "tuple", "dict")

	// dictionary options
	rootCmd.Flags().StringP("key", "k", "none", "Dictionary key strategy: none, index, auto, first-word, or user")
	rootCmd.Flags().StringP("prefix", "p", "", "Key prefix for the user-defined strategy")

	// counting method for the displayed item count
	rootCmd.Flags().String("count", "content", "Counting method: content, words, or characters")

	// other flags
	rootCmd.Flags().BoolP("analyze", "a", false, "Report problematic characters before formatting")
	rootCmd.Flags().BoolP("bare", "b", false, "Omit the item count header from the output")
	rootCmd.Flags().BoolP("quiet", "q", false, "Suppress advisory messages")
	rootCmd.Flags().BoolP("debug", "D", false, "Enable debug logging")
	_ = rootCmd.Flags().MarkHidden("debug")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
