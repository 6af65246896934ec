// Command hintline-demo is a tiny terminal editor that shows function
// signatures above the cursor while a call is being typed.
package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/hintline"
	"github.com/iw2rmb/hintline/hint"
)

const appName = "hintline-demo"

var (
	configPath string
	logPath    string
	verbose    bool
	sanitize   bool
)

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "hint config YAML (template, sanitize_prefix, sanitize_chars)")
	rootCmd.Flags().StringVar(&logPath, "log", "", "append debug logs to this file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	rootCmd.Flags().BoolVar(&sanitize, "sanitize", false, "blank quotes and parens left of each hint")
}

var rootCmd = &cobra.Command{
	Use:          appName,
	Short:        fmt.Sprintf("%s shows signature hints inside the text you type.", appName),
	Version:      hintline.Version(),
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func run(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := openLogger(logPath, verbose)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := hint.Config{Decorate: hint.Format(overlayTemplate)}
	if configPath != "" {
		cfg, err = hint.LoadConfig(configPath)
		if err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("sanitize") {
		cfg.SanitizePrefix = sanitize
	}
	cfg.Logger = logger
	hint.SetDefaults(cfg)
	logger.Info("starting", slog.String("lib", hintline.Banner()), slog.Bool("sanitize", cfg.SanitizePrefix))

	p := tea.NewProgram(newModel(demoText, hint.NewRegistry()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run %s: %w", appName, err)
	}
	return nil
}

// openLogger logs to path, or nowhere when path is empty. The TUI owns the
// terminal, so logs never go to stderr.
func openLogger(path string, verbose bool) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = f.Close() }, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
