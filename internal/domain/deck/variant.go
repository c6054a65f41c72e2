// Package deck defines the slide deck model: an ordered, immutable sequence
// of slides, each tagged with a layout variant and a variant-specific payload.
package deck

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Variant is the layout kind of a slide. Values outside the known set are
// representable so that decks from files can carry unrecognized tags.
type Variant string

// Known variants.
const (
	VariantTitle      Variant = "title"
	VariantSplit      Variant = "split"
	VariantCritical   Variant = "critical"
	VariantCards      Variant = "cards"
	VariantDiagram    Variant = "diagram"
	VariantTech       Variant = "tech"
	VariantFinancial  Variant = "financial"
	VariantTimeline   Variant = "timeline"
	VariantInvestment Variant = "investment"
	VariantRetainer   Variant = "retainer"
	VariantClosing    Variant = "closing"
)

var knownVariants = []Variant{
	VariantTitle,
	VariantSplit,
	VariantCritical,
	VariantCards,
	VariantDiagram,
	VariantTech,
	VariantFinancial,
	VariantTimeline,
	VariantInvestment,
	VariantRetainer,
	VariantClosing,
}

// Variants returns every known variant in canonical order.
func Variants() []Variant {
	out := make([]Variant, len(knownVariants))
	copy(out, knownVariants)
	return out
}

// IsKnown reports whether v is one of the known variants.
func (v Variant) IsKnown() bool {
	for _, k := range knownVariants {
		if v == k {
			return true
		}
	}
	return false
}

// String returns the variant tag.
func (v Variant) String() string {
	return string(v)
}

// Label returns a human-readable name, e.g. "Financial".
func (v Variant) Label() string {
	if v == "" {
		return "Unknown"
	}
	return cases.Title(language.English).String(string(v))
}
