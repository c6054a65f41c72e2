package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/felixgeelhaar/pitchdeck/internal/domain/config"
	"github.com/felixgeelhaar/pitchdeck/internal/domain/deck"
	"github.com/felixgeelhaar/pitchdeck/internal/ports"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a deck without presenting it",
	Long: `Validate loads the deck and reports slides that cannot be rendered.

Load errors (missing file, bad YAML, duplicate IDs) always fail. Slides with
an unknown variant still load and are shown as a placeholder; they are
reported as warnings and only fail with --strict.

Examples:
  pitchdeck validate
  pitchdeck validate --deck proposal.yaml
  pitchdeck validate --strict --json`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

var (
	validateJSON   bool
	validateStrict bool
)

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Output results as JSON")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Treat warnings as errors")
}

// validationReport is the JSON shape of a validation run.
type validationReport struct {
	Valid    bool     `json:"valid"`
	Title    string   `json:"title,omitempty"`
	Slides   int      `json:"slides"`
	Warnings []string `json:"warnings,omitempty"`
	Error    string   `json:"error,omitempty"`
}

func runValidate(cmd *cobra.Command, _ []string) error {
	prefs, err := loadPreferences()
	if err != nil {
		return err
	}

	logger, closeLogger, err := newLogger(prefs, cmd.ErrOrStderr(), false)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer func() { _ = closeLogger() }()

	d, err := loadDeck(prefs)
	if err != nil {
		if validateJSON {
			writeValidationJSON(cmd.OutOrStdout(), validationReport{Error: formatError(err)})
		}
		return err
	}

	issues := d.Issues()
	for _, issue := range issues {
		logger.Debug(cmd.Context(), "slide issue",
			ports.F("index", issue.Index),
			ports.F("id", issue.ID),
			ports.F("message", issue.Message),
		)
	}

	report := newValidationReport(d, issues)
	if validateJSON {
		writeValidationJSON(cmd.OutOrStdout(), report)
	} else {
		writeValidationText(cmd.OutOrStdout(), report)
	}

	if validateStrict && len(issues) > 0 {
		return config.NewUserError(config.ErrCodeValidationFailed,
			fmt.Sprintf("%d slide(s) cannot be rendered", len(issues))).
			WithSuggestion("Use one of the known variants: " + knownVariants())
	}
	return nil
}

func newValidationReport(d deck.Deck, issues []deck.Issue) validationReport {
	report := validationReport{
		Title:  d.Title(),
		Slides: d.Len(),
	}
	for _, issue := range issues {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("slide %d (id %d): %s", issue.Index+1, issue.ID, issue.Message))
	}
	report.Valid = len(report.Warnings) == 0 || !validateStrict
	return report
}

func writeValidationJSON(out io.Writer, report validationReport) {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(report)
}

func writeValidationText(out io.Writer, report validationReport) {
	if len(report.Warnings) == 0 {
		_, _ = fmt.Fprintf(out, "✓ %s is valid (%d slides)\n", report.Title, report.Slides)
		return
	}

	_, _ = fmt.Fprintf(out, "%s has %d warning(s):\n", report.Title, len(report.Warnings))
	for _, w := range report.Warnings {
		_, _ = fmt.Fprintf(out, "  ⚠ %s\n", w)
	}
}

func knownVariants() string {
	var s string
	for i, v := range deck.Variants() {
		if i > 0 {
			s += ", "
		}
		s += v.String()
	}
	return s
}
