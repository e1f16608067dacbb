package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pverdi/omniassist/providers/ai"
	"github.com/pverdi/omniassist/providers/ai/gemini"
	"github.com/pverdi/omniassist/providers/ai/groq"
)

var modelsProvider string

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List available models",
	RunE:  runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)

	modelsCmd.Flags().StringVarP(&modelsProvider, "provider", "p", "", "Only list models for this provider")
}

func runModels(cmd *cobra.Command, args []string) error {
	catalogs := []struct {
		name   string
		models []ai.ModelInfo
	}{
		{name: "gemini", models: gemini.Models()},
		{name: "groq", models: groq.Models()},
	}

	out := cmd.OutOrStdout()
	shown := 0

	for _, catalog := range catalogs {
		if modelsProvider != "" && modelsProvider != catalog.name {
			continue
		}
		if shown > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s:\n", catalog.name)
		for _, m := range catalog.models {
			marker := " "
			if m.Recommended {
				marker = "*"
			}
			fmt.Fprintf(out, "  %s %-32s %s\n", marker, m.ID, m.Description)
		}
		shown++
	}

	if shown == 0 {
		return fmt.Errorf("unknown provider %q (want gemini or groq)", modelsProvider)
	}
	return nil
}
