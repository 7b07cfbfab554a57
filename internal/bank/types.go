package bank

import "github.com/abhisek/neurobattle/internal/result"

// Choice identifies one of the two options of a question.
type Choice string

const (
	ChoiceNone Choice = ""
	ChoiceA    Choice = "A"
	ChoiceB    Choice = "B"
)

// AllChoices returns the selectable choices in display order.
func AllChoices() []Choice {
	return []Choice{ChoiceA, ChoiceB}
}

// Valid reports whether c is A or B.
func (c Choice) Valid() bool {
	return c == ChoiceA || c == ChoiceB
}

// Other returns the opposite option. ChoiceNone maps to itself.
func (c Choice) Other() Choice {
	switch c {
	case ChoiceA:
		return ChoiceB
	case ChoiceB:
		return ChoiceA
	default:
		return ChoiceNone
	}
}

// ContentType says how option payloads are interpreted.
type ContentType string

const (
	ContentImage ContentType = "image" // payload is a resource locator
	ContentText  ContentType = "text"  // payload is shown verbatim
)

// DisplayName returns a human-readable label for the content type.
func (t ContentType) DisplayName() string {
	switch t {
	case ContentImage:
		return "Image"
	case ContentText:
		return "Text"
	default:
		return string(t)
	}
}

// Question is a single round: two options, one of which was made by an AI.
type Question struct {
	ID          string      `json:"id"`
	Prompt      string      `json:"prompt"`
	OptionA     string      `json:"option_a"`
	OptionB     string      `json:"option_b"`
	Type        ContentType `json:"type"`
	Correct     Choice      `json:"correct"`
	Explanation string      `json:"explanation"`
}

// Option returns the payload for the given choice.
func (q Question) Option(c Choice) string {
	switch c {
	case ChoiceA:
		return q.OptionA
	case ChoiceB:
		return q.OptionB
	default:
		return ""
	}
}

// IsAI reports whether the option for c is the generated one.
func (q Question) IsAI(c Choice) bool {
	return c == q.Correct
}

// document is the on-disk shape of a question bank.
type document struct {
	Version   string        `json:"version"`
	Title     string        `json:"title"`
	Questions []Question    `json:"questions"`
	Tiers     []result.Tier `json:"tiers"`
}
