package deck

import (
	"errors"
	"fmt"

	"github.com/felixgeelhaar/pitchdeck/internal/domain/config"
)

// ErrEmptyDeck is wrapped by New when no slides are given.
var ErrEmptyDeck = errors.New("deck has no slides")

// Slide is one static content and layout record.
type Slide struct {
	ID       int
	Variant  Variant
	Title    string
	Subtitle string
	Footer   string
	Content  Content
}

// Deck is a fixed, non-empty sequence of slides. Index, not ID, is
// authoritative for navigation.
type Deck struct {
	title  string
	slides []Slide
}

// Issue describes a slide that loads but cannot be rendered as intended.
type Issue struct {
	Index   int
	ID      int
	Message string
}

// New builds a deck. It fails when slides is empty or when slide IDs are not
// positive and unique.
func New(title string, slides []Slide) (Deck, error) {
	if len(slides) == 0 {
		return Deck{}, config.NewDeckInvalidError("", ErrEmptyDeck.Error()).
			WithSuggestion("Add at least one slide.").
			WithUnderlying(ErrEmptyDeck)
	}

	errs := config.NewErrorList()
	seen := make(map[int]int, len(slides))
	for i, s := range slides {
		where := fmt.Sprintf("slides[%d]", i)
		if s.ID <= 0 {
			errs.Add(config.NewDeckInvalidError(where, fmt.Sprintf("slide id %d must be positive", s.ID)))
			continue
		}
		if prev, ok := seen[s.ID]; ok {
			errs.Add(config.NewDeckInvalidError(where, fmt.Sprintf("slide id %d already used by slides[%d]", s.ID, prev)))
			continue
		}
		seen[s.ID] = i
	}
	if err := errs.AsError(); err != nil {
		return Deck{}, err
	}

	return Deck{title: title, slides: cloneSlides(slides)}, nil
}

// Title returns the deck header, e.g. "Project Proposal".
func (d Deck) Title() string {
	return d.title
}

// Len returns the number of slides.
func (d Deck) Len() int {
	return len(d.slides)
}

// Slide returns the slide at index i.
func (d Deck) Slide(i int) (Slide, bool) {
	if i < 0 || i >= len(d.slides) {
		return Slide{}, false
	}
	return d.slides[i].clone(), true
}

// Slides returns a copy of all slides in order.
func (d Deck) Slides() []Slide {
	return cloneSlides(d.slides)
}

func (s Slide) clone() Slide {
	s.Content = cloneContent(s.Content)
	return s
}

func cloneSlides(slides []Slide) []Slide {
	out := make([]Slide, len(slides))
	for i, s := range slides {
		out[i] = s.clone()
	}
	return out
}

// Issues lists slides whose variant is unknown or whose payload does not
// match their variant. Such slides render as a placeholder.
func (d Deck) Issues() []Issue {
	var issues []Issue
	for i, s := range d.slides {
		v, ok := VariantOf(s.Content)
		switch {
		case !s.Variant.IsKnown():
			issues = append(issues, Issue{Index: i, ID: s.ID, Message: fmt.Sprintf("unknown variant %q", s.Variant)})
		case s.Content == nil:
			issues = append(issues, Issue{Index: i, ID: s.ID, Message: fmt.Sprintf("missing %s content", s.Variant)})
		case !ok:
			issues = append(issues, Issue{
				Index:   i,
				ID:      s.ID,
				Message: fmt.Sprintf("%s slide carries %T content", s.Variant, s.Content),
			})
		case v != s.Variant:
			issues = append(issues, Issue{
				Index:   i,
				ID:      s.ID,
				Message: fmt.Sprintf("%s slide carries %s content", s.Variant, v),
			})
		}
	}
	return issues
}
