package result

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrConfiguration indicates the tier table does not cover a valid score.
	ErrConfiguration = errors.New("result tier table misconfigured")

	// ErrInvalidScore indicates Classify was called outside 0 <= score <= total, total > 0.
	ErrInvalidScore = errors.New("invalid score")
)

// Tier is a named bucket of final scores.
type Tier struct {
	// MinFraction is the lowest score/total ratio that falls into this tier.
	MinFraction float64 `json:"min_fraction"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Emblem      string  `json:"emblem"`
}

// Matches reports whether score out of total falls into the tier.
func (t Tier) Matches(score, total int) bool {
	if total <= 0 {
		return false
	}
	return float64(score)/float64(total) >= t.MinFraction
}

// ConfigurationError is returned when no tier matches a valid score.
type ConfigurationError struct {
	Score int
	Total int
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("no result tier matches score %d/%d", e.Score, e.Total)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// Classify returns the first tier in tiers whose predicate matches.
// Tiers must be ordered from the highest bar to the lowest.
func Classify(score, total int, tiers []Tier) (Tier, error) {
	if total <= 0 || score < 0 || score > total {
		return Tier{}, fmt.Errorf("%w: %d/%d", ErrInvalidScore, score, total)
	}
	for _, t := range tiers {
		if t.Matches(score, total) {
			return t, nil
		}
	}
	return Tier{}, &ConfigurationError{Score: score, Total: total}
}

// ValidateTable checks that tiers are strictly descending, lie within [0, 1],
// and classify every score in [0, total].
func ValidateTable(tiers []Tier, total int) error {
	if len(tiers) == 0 {
		return fmt.Errorf("%w: empty tier table", ErrConfiguration)
	}
	for i, t := range tiers {
		if t.MinFraction < 0 || t.MinFraction > 1 {
			return fmt.Errorf("%w: tier %q min_fraction %v outside [0, 1]", ErrConfiguration, t.Title, t.MinFraction)
		}
		if i > 0 && t.MinFraction >= tiers[i-1].MinFraction {
			return fmt.Errorf("%w: tier %q is not stricter than %q", ErrConfiguration, tiers[i-1].Title, t.Title)
		}
	}
	for score := 0; score <= total; score++ {
		if _, err := Classify(score, total, tiers); err != nil {
			return err
		}
	}
	return nil
}

// Accuracy returns score/total as a whole percentage, rounded half up.
func Accuracy(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}
