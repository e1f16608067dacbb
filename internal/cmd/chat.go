package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pverdi/omniassist/assistant"
	"github.com/pverdi/omniassist/core/render"
	"github.com/pverdi/omniassist/providers/history/inmemory"
	"github.com/pverdi/omniassist/render/term"
)

var (
	chatModel    string
	chatProvider string
	chatRepair   bool
	chatPlain    bool
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive session",
	Long: `Start an interactive session. Each line is sent as a request and the
structured answer is shown. History lives in memory for the duration of the
session.

Session commands:
  history   show the most recent exchanges
  clear     empty the history buffer
  exit      end the session`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().StringVarP(&chatModel, "model", "m", "", "Model to use (default: provider's recommended model)")
	chatCmd.Flags().StringVarP(&chatProvider, "provider", "p", "", "Provider to use: gemini or groq")
	chatCmd.Flags().BoolVar(&chatRepair, "repair", false, "Attempt to repair malformed JSON responses")
	chatCmd.Flags().BoolVar(&chatPlain, "plain", false, "Disable colored output")
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	providerName := cfg.Provider
	if chatProvider != "" {
		providerName = chatProvider
	}
	model := cfg.Model
	if chatModel != "" {
		model = chatModel
	}

	provider, err := buildProvider(cfg, providerName)
	if err != nil {
		return err
	}

	store := inmemory.New()
	opts := []assistant.Option{
		assistant.WithHistory(store),
		assistant.WithModel(model),
		assistant.WithHistoryLimit(cfg.HistoryLimit),
	}
	if observer := newObserver(cfg); observer != nil {
		opts = append(opts, assistant.WithObserver(observer))
	}
	if chatRepair || cfg.Lenient {
		opts = append(opts, assistant.WithLenientParsing())
	}

	a := assistant.New(provider, opts...)

	out := cmd.OutOrStdout()
	painterOpts := []term.Option{}
	if chatPlain {
		painterOpts = append(painterOpts, term.WithStyles(term.PlainStyles()))
	}
	painter := term.NewPainter(out, painterOpts...)

	fmt.Fprintf(out, "omniassist (%s) - type a request, or history / clear / exit\n", providerName)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		case "clear":
			if err := store.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(out, "history cleared")
			continue
		case "history":
			if err := showHistory(cmd, a, painter); err != nil {
				return err
			}
			continue
		}

		askCtx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
		answer, err := a.Ask(askCtx, line)
		cancel()
		if err != nil {
			var notJSON *assistant.NotJSONError
			if errors.As(err, &notJSON) {
				fmt.Fprintln(os.Stderr, "warning: response contained no valid JSON, showing raw text")
				fmt.Fprintln(out, notJSON.Raw)
				continue
			}
			// Keep the session alive on transient provider failures.
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}

		if err := painter.Paint(answer.Directives); err != nil {
			return err
		}
	}

	return scanner.Err()
}

func showHistory(cmd *cobra.Command, a *assistant.Assistant, painter *term.Painter) error {
	out := cmd.OutOrStdout()

	entries, err := a.Recent(cmd.Context())
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "no history yet")
		return nil
	}

	for i, entry := range entries {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "[%s] %s (%s)\n", entry.Timestamp.Format("15:04:05"), entry.Request, entry.Model)

		directives, err := render.Render(entry.Response)
		if err != nil {
			// Non-mapping responses fall back to the generic form.
			fmt.Fprintln(out, entry.Response.String())
			continue
		}
		if err := painter.Paint(directives); err != nil {
			return err
		}
	}

	return nil
}
