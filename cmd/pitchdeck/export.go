package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/felixgeelhaar/pitchdeck/internal/domain/deck"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the deck as Markdown",
	Long: `Export writes the deck as a Markdown handout, one section per slide.

With --render the Markdown is styled for the terminal instead.

Examples:
  pitchdeck export > handout.md
  pitchdeck export --output handout.md
  pitchdeck export --render --width 100`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var (
	exportRender bool
	exportWidth  int
	exportOutput string
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().BoolVar(&exportRender, "render", false, "Render Markdown for the terminal")
	exportCmd.Flags().IntVar(&exportWidth, "width", 80, "Word wrap width for --render")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to a file instead of stdout")
}

func runExport(cmd *cobra.Command, _ []string) error {
	prefs, err := loadPreferences()
	if err != nil {
		return err
	}

	d, err := loadDeck(prefs)
	if err != nil {
		return err
	}

	out, err := exportDeck(d, exportRender, exportWidth)
	if err != nil {
		return err
	}

	if exportOutput != "" {
		if err := os.WriteFile(exportOutput, []byte(out), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d slides to %s\n", d.Len(), exportOutput)
		return nil
	}

	_, _ = fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// exportDeck returns the deck as Markdown, or rendered for the terminal.
func exportDeck(d deck.Deck, render bool, width int) (string, error) {
	md := deck.Markdown(d)
	if !render {
		return md, nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
