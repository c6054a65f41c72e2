package deck

import "slices"

// Content is a variant-specific slide payload. The set of implementations is
// closed: only types in this package satisfy it.
type Content interface {
	// Variant returns the layout kind this payload belongs to.
	Variant() Variant
	clone() Content
}

// VariantOf returns the variant of a payload held by value. Nil and pointer
// payloads are not valid slide content and report false.
func VariantOf(c Content) (Variant, bool) {
	switch c := c.(type) {
	case TitleContent, SplitContent, CriticalContent, CardsContent, DiagramContent,
		TechContent, FinancialContent, TimelineContent, InvestmentContent,
		RetainerContent, ClosingContent:
		return c.Variant(), true
	}
	return "", false
}

// cloneContent deep-copies valid payloads. Anything else is returned as is;
// it never renders.
func cloneContent(c Content) Content {
	if _, ok := VariantOf(c); !ok {
		return c
	}
	return c.clone()
}

// TitleContent is the payload of a title slide. The slide's own title,
// subtitle and footer carry the text.
type TitleContent struct{}

// Point is a bullet with an icon.
type Point struct {
	Icon string
	Text string
}

// Callout is a highlighted side panel.
type Callout struct {
	Icon    string
	Heading string
	Text    string
}

// SplitContent lists bullet points beside a callout panel.
type SplitContent struct {
	Points  []Point
	Callout Callout
}

// SearchResult is a mock search engine listing.
type SearchResult struct {
	Title   string
	URL     string
	Snippet string
}

// CriticalContent highlights a single liability.
type CriticalContent struct {
	Badge    string
	Headline string
	Text     string
	Result   SearchResult
}

// Card is one entry of a cards slide.
type Card struct {
	Icon  string
	Title string
	Text  string
}

// CardsContent renders one card per entry.
type CardsContent struct {
	Cards []Card
}

// DiagramContent is a hub with satellite nodes.
type DiagramContent struct {
	Hub        string
	Satellites []string
	Text       string
}

// TechContent lists a technology stack next to an argument.
type TechContent struct {
	Stack    []string
	Argument string
}

// CostColumn is one side of a before/after comparison.
type CostColumn struct {
	Heading string
	Label   string
	Cost    string
	Kind    string
}

// FinancialContent compares current and proposed costs.
type FinancialContent struct {
	Current  CostColumn
	Proposed CostColumn
	Text     string
}

// Phase is one entry on a timeline.
type Phase struct {
	Weeks string
	Name  string
}

// TimelineContent is an ordered list of phases.
type TimelineContent struct {
	Phases []Phase
}

// InvestmentContent states a one-time amount and what it includes.
type InvestmentContent struct {
	Amount    string
	Note      string
	Items     []string
	Narrative string
}

// RetainerContent states a recurring price.
type RetainerContent struct {
	Price string
	Sub   string
	Text  string
}

// ClosingContent ends the deck. Action labels the replay control.
type ClosingContent struct {
	Action string
}

func (TitleContent) Variant() Variant      { return VariantTitle }
func (SplitContent) Variant() Variant      { return VariantSplit }
func (CriticalContent) Variant() Variant   { return VariantCritical }
func (CardsContent) Variant() Variant      { return VariantCards }
func (DiagramContent) Variant() Variant    { return VariantDiagram }
func (TechContent) Variant() Variant       { return VariantTech }
func (FinancialContent) Variant() Variant  { return VariantFinancial }
func (TimelineContent) Variant() Variant   { return VariantTimeline }
func (InvestmentContent) Variant() Variant { return VariantInvestment }
func (RetainerContent) Variant() Variant   { return VariantRetainer }
func (ClosingContent) Variant() Variant    { return VariantClosing }

func (c TitleContent) clone() Content     { return c }
func (c CriticalContent) clone() Content  { return c }
func (c FinancialContent) clone() Content { return c }
func (c RetainerContent) clone() Content  { return c }
func (c ClosingContent) clone() Content   { return c }

func (c SplitContent) clone() Content {
	c.Points = slices.Clone(c.Points)
	return c
}

func (c CardsContent) clone() Content {
	c.Cards = slices.Clone(c.Cards)
	return c
}

func (c DiagramContent) clone() Content {
	c.Satellites = slices.Clone(c.Satellites)
	return c
}

func (c TechContent) clone() Content {
	c.Stack = slices.Clone(c.Stack)
	return c
}

func (c TimelineContent) clone() Content {
	c.Phases = slices.Clone(c.Phases)
	return c
}

func (c InvestmentContent) clone() Content {
	c.Items = slices.Clone(c.Items)
	return c
}
