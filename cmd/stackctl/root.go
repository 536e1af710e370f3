package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/nodestack/internal/logger"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	logDir  string

	// stdout is swapped in tests
	stdout io.Writer = os.Stdout
)

var rootCmd = &cobra.Command{
	Use:   "stackctl",
	Short: "Run the node stack under different allocation strategies",
	Long: `stackctl drives a linked-node LIFO stack whose nodes are created and
destroyed by a selectable allocation strategy (plain heap, slab arena or
sync.Pool), optionally wrapped by a tracking strategy that logs every
allocation and deallocation.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging(cmd.ErrOrStderr())
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Close()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&logDir, "log-dir", "", "Write logs as JSON to a dated file in this directory")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// initLogging routes logger.L according to the global flags.
func initLogging(stderr io.Writer) error {
	opts := logger.Options{Level: slog.LevelInfo, LogDir: logDir}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if !quiet {
		opts.Console = stderr
	}
	return logger.Init(opts)
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
