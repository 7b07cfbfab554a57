package result

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTiers() []Tier {
	return []Tier{
		{MinFraction: 0.9, Title: "top"},
		{MinFraction: 0.7, Title: "high"},
		{MinFraction: 0.4, Title: "mid"},
		{MinFraction: 0, Title: "low"},
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		score int
		total int
		want  string
	}{
		{"perfect", 10, 10, "top"},
		{"exactly ninety", 9, 10, "top"},
		{"just below ninety", 8, 10, "high"},
		{"exactly seventy", 7, 10, "high"},
		{"mid", 5, 10, "mid"},
		{"exactly forty", 4, 10, "mid"},
		{"low", 3, 10, "low"},
		{"zero", 0, 10, "low"},
		{"two of two", 2, 2, "top"},
		{"zero of two", 0, 2, "low"},
		{"one of two", 1, 2, "mid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.score, tt.total, testTiers())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Title)
		})
	}
}

func TestClassify_Idempotent(t *testing.T) {
	tiers := testTiers()
	for total := 1; total <= 12; total++ {
		for score := 0; score <= total; score++ {
			first, err := Classify(score, total, tiers)
			require.NoError(t, err)
			second, err := Classify(score, total, tiers)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		}
	}
}

func TestClassify_InvalidScore(t *testing.T) {
	tests := []struct {
		name         string
		score, total int
	}{
		{"negative score", -1, 10},
		{"score above total", 11, 10},
		{"zero total", 0, 0},
		{"negative total", 0, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify(tt.score, tt.total, testTiers())
			assert.ErrorIs(t, err, ErrInvalidScore)
		})
	}
}

func TestClassify_NoMatchIsConfigurationError(t *testing.T) {
	tiers := []Tier{{MinFraction: 0.5, Title: "half"}}

	_, err := Classify(1, 10, tiers)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfiguration)

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, 1, cfgErr.Score)
	assert.Equal(t, 10, cfgErr.Total)
}

func TestValidateTable(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateTable(testTiers(), 10))
	})

	t.Run("empty", func(t *testing.T) {
		assert.ErrorIs(t, ValidateTable(nil, 10), ErrConfiguration)
	})

	t.Run("gap at bottom", func(t *testing.T) {
		tiers := []Tier{{MinFraction: 0.9, Title: "a"}, {MinFraction: 0.1, Title: "b"}}
		assert.ErrorIs(t, ValidateTable(tiers, 10), ErrConfiguration)
	})

	t.Run("not descending", func(t *testing.T) {
		tiers := []Tier{{MinFraction: 0.4, Title: "a"}, {MinFraction: 0.7, Title: "b"}, {MinFraction: 0, Title: "c"}}
		err := ValidateTable(tiers, 10)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not stricter")
	})

	t.Run("out of range", func(t *testing.T) {
		tiers := []Tier{{MinFraction: 1.5, Title: "a"}, {MinFraction: 0, Title: "b"}}
		assert.ErrorIs(t, ValidateTable(tiers, 10), ErrConfiguration)
	})
}

func TestAccuracy(t *testing.T) {
	assert.Equal(t, 100, Accuracy(10, 10))
	assert.Equal(t, 67, Accuracy(2, 3))
	assert.Equal(t, 33, Accuracy(1, 3))
	assert.Equal(t, 50, Accuracy(1, 2))
	assert.Equal(t, 0, Accuracy(0, 0))
}
