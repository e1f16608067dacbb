package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pverdi/omniassist/assistant"
	"github.com/pverdi/omniassist/render/term"
	"github.com/pverdi/omniassist/render/web"
)

var (
	askModel    string
	askProvider string
	askJSON     bool
	askOut      string
	askMarkdown bool
	askRepair   bool
	askPlain    bool
)

var askCmd = &cobra.Command{
	Use:   "ask [request...]",
	Short: "Send a request and show the structured answer",
	Long: `Send a request to the configured provider and display the structured
answer. The request is read from the arguments, or from stdin when no
arguments are given.`,
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().StringVarP(&askModel, "model", "m", "", "Model to use (default: provider's recommended model)")
	askCmd.Flags().StringVarP(&askProvider, "provider", "p", "", "Provider to use: gemini or groq")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "Print the extracted JSON instead of the structured view")
	askCmd.Flags().StringVarP(&askOut, "out", "o", "", "Also write the answer to a file (HTML, or Markdown with --markdown)")
	askCmd.Flags().BoolVar(&askMarkdown, "markdown", false, "Export Markdown instead of HTML")
	askCmd.Flags().BoolVar(&askRepair, "repair", false, "Attempt to repair malformed JSON responses")
	askCmd.Flags().BoolVar(&askPlain, "plain", false, "Disable colored output")
}

func runAsk(cmd *cobra.Command, args []string) error {
	request, err := readRequest(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	providerName := cfg.Provider
	if askProvider != "" {
		providerName = askProvider
	}
	model := cfg.Model
	if askModel != "" {
		model = askModel
	}

	provider, err := buildProvider(cfg, providerName)
	if err != nil {
		return err
	}

	opts := []assistant.Option{
		assistant.WithModel(model),
	}
	if observer := newObserver(cfg); observer != nil {
		opts = append(opts, assistant.WithObserver(observer))
	}
	if askRepair || cfg.Lenient {
		opts = append(opts, assistant.WithLenientParsing())
	}

	a := assistant.New(provider, opts...)

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
	defer cancel()

	answer, err := a.Ask(ctx, request)
	if err != nil {
		var notJSON *assistant.NotJSONError
		if errors.As(err, &notJSON) {
			// Fall back to showing the raw response.
			fmt.Fprintln(os.Stderr, "warning: response contained no valid JSON, showing raw text")
			fmt.Fprintln(cmd.OutOrStdout(), notJSON.Raw)
			return nil
		}
		return err
	}

	if err := printAnswer(cmd.OutOrStdout(), answer); err != nil {
		return err
	}

	if askOut != "" {
		if err := exportAnswer(answer); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", askOut)
	}

	return nil
}

func readRequest(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read request from stdin: %w", err)
	}
	request := strings.TrimSpace(string(data))
	if request == "" {
		return "", errors.New("no request given: pass it as arguments or on stdin")
	}
	return request, nil
}

func printAnswer(w io.Writer, answer *assistant.Answer) error {
	if askJSON {
		out, err := answer.Value.Indent("", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	}

	if askMarkdown && askOut == "" {
		markdown, err := web.Markdown(answer.Directives)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, markdown)
		return err
	}

	painterOpts := []term.Option{}
	if askPlain {
		painterOpts = append(painterOpts, term.WithStyles(term.PlainStyles()))
	}
	return term.NewPainter(w, painterOpts...).Paint(answer.Directives)
}

func exportAnswer(answer *assistant.Answer) error {
	var out string
	if askMarkdown {
		markdown, err := web.Markdown(answer.Directives)
		if err != nil {
			return err
		}
		out = markdown
	} else {
		out = web.BuildHTML(answer.Directives)
	}
	if err := os.WriteFile(askOut, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", askOut, err)
	}
	return nil
}
