package deck

import (
	"errors"
	"fmt"
	"os"

	"github.com/felixgeelhaar/pitchdeck/internal/domain/config"
	"gopkg.in/yaml.v3"
)

// deckDTO is the data transfer object for a deck file.
type deckDTO struct {
	Title  string      `yaml:"title"`
	Slides []yaml.Node `yaml:"slides"`
}

type slideDTO struct {
	ID       int       `yaml:"id"`
	Variant  string    `yaml:"variant"`
	Title    string    `yaml:"title"`
	Subtitle string    `yaml:"subtitle"`
	Footer   string    `yaml:"footer"`
	Content  yaml.Node `yaml:"content"`
}

type pointDTO struct {
	Icon string `yaml:"icon"`
	Text string `yaml:"text"`
}

type calloutDTO struct {
	Icon    string `yaml:"icon"`
	Heading string `yaml:"heading"`
	Text    string `yaml:"text"`
}

type splitDTO struct {
	Points  []pointDTO `yaml:"points"`
	Callout calloutDTO `yaml:"callout"`
}

type criticalDTO struct {
	Badge    string `yaml:"badge"`
	Headline string `yaml:"headline"`
	Text     string `yaml:"text"`
	Result   struct {
		Title   string `yaml:"title"`
		URL     string `yaml:"url"`
		Snippet string `yaml:"snippet"`
	} `yaml:"result"`
}

type cardDTO struct {
	Icon  string `yaml:"icon"`
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

type cardsDTO struct {
	Cards []cardDTO `yaml:"cards"`
}

type diagramDTO struct {
	Hub        string   `yaml:"hub"`
	Satellites []string `yaml:"satellites"`
	Text       string   `yaml:"text"`
}

type techDTO struct {
	Stack    []string `yaml:"stack"`
	Argument string   `yaml:"argument"`
}

type costDTO struct {
	Heading string `yaml:"heading"`
	Label   string `yaml:"label"`
	Cost    string `yaml:"cost"`
	Kind    string `yaml:"kind"`
}

type financialDTO struct {
	Current  costDTO `yaml:"current"`
	Proposed costDTO `yaml:"proposed"`
	Text     string  `yaml:"text"`
}

type phaseDTO struct {
	Weeks string `yaml:"weeks"`
	Name  string `yaml:"name"`
}

type timelineDTO struct {
	Phases []phaseDTO `yaml:"phases"`
}

type investmentDTO struct {
	Amount    string   `yaml:"amount"`
	Note      string   `yaml:"note"`
	Items     []string `yaml:"items"`
	Narrative string   `yaml:"narrative"`
}

type retainerDTO struct {
	Price string `yaml:"price"`
	Sub   string `yaml:"sub"`
	Text  string `yaml:"text"`
}

type closingDTO struct {
	Action string `yaml:"action"`
}

// DefaultReplayAction labels the replay control when a closing slide names none.
const DefaultReplayAction = "Replay Presentation"

// LoadFile reads and parses a deck file.
func LoadFile(path string) (Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Deck{}, config.NewDeckNotFoundError(path, err)
		}
		return Deck{}, fmt.Errorf("read deck: %w", err)
	}
	return Parse(data, path)
}

// Parse decodes a YAML deck. source names the input in error messages.
// Slides with unknown variants are kept without content; see Deck.Issues.
func Parse(data []byte, source string) (Deck, error) {
	var dto deckDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return Deck{}, config.NewDeckParseError(source, err)
	}

	slides := make([]Slide, 0, len(dto.Slides))
	for i := range dto.Slides {
		node := &dto.Slides[i]
		where := fmt.Sprintf("%s:%d", source, node.Line)

		var sd slideDTO
		if err := node.Decode(&sd); err != nil {
			return Deck{}, config.NewDeckParseError(where, err)
		}

		slide, err := parseSlide(sd)
		if err != nil {
			return Deck{}, config.NewDeckParseError(where, err)
		}
		slides = append(slides, slide)
	}

	d, err := New(dto.Title, slides)
	if err != nil {
		var userErr *config.UserError
		if errors.Is(err, ErrEmptyDeck) && errors.As(err, &userErr) {
			return Deck{}, userErr.WithContext(source)
		}
		return Deck{}, err
	}
	return d, nil
}

func parseSlide(sd slideDTO) (Slide, error) {
	slide := Slide{
		ID:       sd.ID,
		Variant:  Variant(sd.Variant),
		Title:    sd.Title,
		Subtitle: sd.Subtitle,
		Footer:   sd.Footer,
	}
	if !slide.Variant.IsKnown() {
		return slide, nil
	}

	content, err := parseContent(slide.Variant, &sd.Content)
	if err != nil {
		return Slide{}, fmt.Errorf("slide %d (%s): %w", sd.ID, sd.Variant, err)
	}
	slide.Content = content
	return slide, nil
}

func decodeInto(node *yaml.Node, out interface{}) error {
	if node.IsZero() {
		return nil
	}
	return node.Decode(out)
}

func parseContent(v Variant, node *yaml.Node) (Content, error) {
	switch v {
	case VariantTitle:
		return TitleContent{}, nil

	case VariantSplit:
		var dto splitDTO
		if err := decodeInto(node, &dto); err != nil {
			return nil, err
		}
		if len(dto.Points) == 0 {
			return nil, errors.New("split content needs at least one point")
		}
		points := make([]Point, len(dto.Points))
		for i, p := range dto.Points {
			points[i] = Point(p)
		}
		return SplitContent{Points: points, Callout: Callout(dto.Callout)}, nil

	case VariantCritical:
		var dto criticalDTO
		if err := decodeInto(node, &dto); err != nil {
			return nil, err
		}
		return CriticalContent{
			Badge:    dto.Badge,
			Headline: dto.Headline,
			Text:     dto.Text,
			Result:   SearchResult(dto.Result),
		}, nil

	case VariantCards:
		var dto cardsDTO
		if err := decodeInto(node, &dto); err != nil {
			return nil, err
		}
		if len(dto.Cards) == 0 {
			return nil, errors.New("cards content needs at least one card")
		}
		cards := make([]Card, len(dto.Cards))
		for i, c := range dto.Cards {
			cards[i] = Card(c)
		}
		return CardsContent{Cards: cards}, nil

	case VariantDiagram:
		var dto diagramDTO
		if err := decodeInto(node, &dto); err != nil {
			return nil, err
		}
		return DiagramContent(dto), nil

	case VariantTech:
		var dto techDTO
		if err := decodeInto(node, &dto); err != nil {
			return nil, err
		}
		return TechContent(dto), nil

	case VariantFinancial:
		var dto financialDTO
		if err := decodeInto(node, &dto); err != nil {
			return nil, err
		}
		if dto.Current.Cost == "" || dto.Proposed.Cost == "" {
			return nil, errors.New("financial content needs current and proposed costs")
		}
		return FinancialContent{
			Current:  CostColumn(dto.Current),
			Proposed: CostColumn(dto.Proposed),
			Text:     dto.Text,
		}, nil

	case VariantTimeline:
		var dto timelineDTO
		if err := decodeInto(node, &dto); err != nil {
			return nil, err
		}
		if len(dto.Phases) == 0 {
			return nil, errors.New("timeline content needs at least one phase")
		}
		phases := make([]Phase, len(dto.Phases))
		for i, p := range dto.Phases {
			phases[i] = Phase(p)
		}
		return TimelineContent{Phases: phases}, nil

	case VariantInvestment:
		var dto investmentDTO
		if err := decodeInto(node, &dto); err != nil {
			return nil, err
		}
		return InvestmentContent(dto), nil

	case VariantRetainer:
		var dto retainerDTO
		if err := decodeInto(node, &dto); err != nil {
			return nil, err
		}
		return RetainerContent(dto), nil

	case VariantClosing:
		var dto closingDTO
		if err := decodeInto(node, &dto); err != nil {
			return nil, err
		}
		if dto.Action == "" {
			dto.Action = DefaultReplayAction
		}
		return ClosingContent(dto), nil
	}

	return nil, fmt.Errorf("unknown variant %q", v)
}
