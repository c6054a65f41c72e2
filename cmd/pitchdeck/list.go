package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/felixgeelhaar/pitchdeck/internal/domain/deck"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the slides of the deck",
	Long: `List prints one line per slide with its position, ID, layout and title.

Examples:
  pitchdeck list
  pitchdeck list --deck proposal.yaml`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	prefs, err := loadPreferences()
	if err != nil {
		return err
	}

	d, err := loadDeck(prefs)
	if err != nil {
		return err
	}

	printSlides(cmd.OutOrStdout(), d)
	return nil
}

func printSlides(out io.Writer, d deck.Deck) {
	_, _ = fmt.Fprintf(out, "%s (%d slides)\n\n", d.Title(), d.Len())

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "#\tID\tVARIANT\tTITLE")
	for i, s := range d.Slides() {
		_, _ = fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", i+1, s.ID, s.Variant.Label(), s.Title)
	}
	_ = w.Flush()
}
