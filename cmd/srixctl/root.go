package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/srixkit/internal/logger"
)

var (
	// Global flags
	imagePath  string
	configPath string
	verbose    bool
	quiet      bool
	jsonOut    bool

	// Set up by PersistentPreRunE
	cfg      Config
	log      *slog.Logger = slog.New(slog.DiscardHandler)
	closeLog              = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "srixctl",
	Short: "Inspect and edit SRIX4K tag images",
	Long: `srixctl works on SRIX4K tag images through the same cached block layer
used against real readers: blocks are read once on connect, edited in memory
and only the modified blocks are written back.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&imagePath, "image", "i", "", "Tag image file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ./"+ConfigFileName+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the config file and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	loaded, source, err := LoadConfig(wd, configPath)
	if err != nil {
		return err
	}
	if imagePath != "" {
		loaded.Image = imagePath
	}
	cfg = loaded

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if verbose {
		level = slog.LevelDebug
	}
	l, closeFn, err := logger.New(logger.Options{
		Enabled: verbose || cfg.LogFile != "" || cfg.LogLevel != "",
		File:    cfg.LogFile,
		Level:   level,
	})
	if err != nil {
		return fmt.Errorf("cannot set up logging: %w", err)
	}
	log, closeLog = l, closeFn
	if source != "" {
		log.Debug("config loaded", "path", source)
	}
	return nil
}

// Helper functions for output

var stdout io.Writer = os.Stdout

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
