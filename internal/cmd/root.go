package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pverdi/omniassist/config"
	"github.com/pverdi/omniassist/providers/ai"
	"github.com/pverdi/omniassist/providers/ai/gemini"
	"github.com/pverdi/omniassist/providers/ai/groq"
	"github.com/pverdi/omniassist/providers/observability"
	"github.com/pverdi/omniassist/providers/observability/slogobs"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "omniassist",
	Short: "Turn free-form requests into structured answers",
	Long: `omniassist sends a request to an AI provider, extracts the JSON from the
response, and shows it as an organized view of sections, lists, and metrics.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log provider traffic to stderr")
}

// loadConfig hydrates the environment from .env and loads the effective
// configuration.
func loadConfig() (*config.Config, error) {
	config.LoadDotenv()
	return config.Load(configPath)
}

// buildProvider returns the provider named by name, keyed from cfg.
func buildProvider(cfg *config.Config, name string) (ai.Provider, error) {
	switch name {
	case "gemini":
		p := gemini.New()
		if cfg.GeminiAPIKey != "" {
			p.WithAPIKey(cfg.GeminiAPIKey)
		}
		return p, nil
	case "groq":
		p := groq.New()
		if cfg.GroqAPIKey != "" {
			p.WithAPIKey(cfg.GroqAPIKey)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown provider %q (want gemini or groq)", name)
	}
}

// newObserver returns a slog-backed observer honoring the configured log
// level, or nil when verbose logging is off.
func newObserver(cfg *config.Config) observability.Observer {
	if !verbose {
		return nil
	}

	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return slogobs.New(logger)
}
