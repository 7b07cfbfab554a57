package bank

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/neurobattle/internal/result"
)

func TestLoad_EmbeddedBankPasses(t *testing.T) {
	b, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, b.Len())
	assert.Equal(t, "Neuro Battles", b.Title())
	assert.Equal(t, "v1.2.0", b.Version())

	counts := b.CountByType()
	assert.Positive(t, counts[ContentImage])
	assert.Positive(t, counts[ContentText])
}

func TestLoad_Deterministic(t *testing.T) {
	first := MustLoad()
	second := MustLoad()
	assert.Equal(t, first.Questions(), second.Questions())
	assert.Equal(t, first.ResultTiers(), second.ResultTiers())
}

func TestLoad_TiersCoverEveryScore(t *testing.T) {
	b := MustLoad()
	tiers := b.ResultTiers()
	for score := 0; score <= b.Len(); score++ {
		_, err := result.Classify(score, b.Len(), tiers)
		assert.NoError(t, err, "score %d", score)
	}

	top, err := result.Classify(b.Len(), b.Len(), tiers)
	require.NoError(t, err)
	assert.Equal(t, tiers[0], top)

	bottom, err := result.Classify(0, b.Len(), tiers)
	require.NoError(t, err)
	assert.Equal(t, tiers[len(tiers)-1], bottom)
}

func TestQuestions_ReturnsCopy(t *testing.T) {
	b := MustLoad()
	qs := b.Questions()
	qs[0].Prompt = "mutated"
	assert.NotEqual(t, "mutated", b.Questions()[0].Prompt)
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte("{not json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidBank)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestParse_SchemaRejectsBadCorrect(t *testing.T) {
	raw := []byte(`{
		"version": "v1.0.0",
		"title": "t",
		"questions": [{"id": "q", "prompt": "p", "option_a": "a", "option_b": "b",
			"type": "text", "correct": "C", "explanation": "e"}],
		"tiers": [{"min_fraction": 0, "title": "t", "description": "d", "emblem": "x"}]
	}`)
	_, err := Parse(raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidBank)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestParse_SchemaRejectsMissingField(t *testing.T) {
	raw := []byte(`{
		"version": "v1.0.0",
		"title": "t",
		"questions": [{"id": "q", "prompt": "p", "option_a": "a", "option_b": "b",
			"type": "text", "correct": "A"}],
		"tiers": [{"min_fraction": 0, "title": "t", "description": "d", "emblem": "x"}]
	}`)
	_, err := Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidBank)
}

func TestLoadFile_YAML(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bank.yaml")
	content := `version: v0.1.0
title: Tiny
questions:
  - id: one
    prompt: Which one?
    option_a: a human sentence
    option_b: a generated sentence
    type: text
    correct: B
    explanation: because
  - id: two
    prompt: Which picture?
    option_a: https://example.com/a.png
    option_b: https://example.com/b.png
    type: image
    correct: A
    explanation: because
tiers:
  - min_fraction: 1
    title: Perfect
    description: all right
    emblem: "*"
  - min_fraction: 0
    title: Rest
    description: keep going
    emblem: "-"
`
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))

	b, err := LoadFile(p)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, ChoiceB, b.Questions()[0].Correct)
	assert.Len(t, b.ResultTiers(), 2)
}

func TestLoadFile_UnsupportedExtension(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bank.toml")
	require.NoError(t, os.WriteFile(p, []byte(""), 0o644))
	_, err := LoadFile(p)
	assert.ErrorIs(t, err, ErrInvalidBank)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNew_Valid(t *testing.T) {
	b, err := New("v1.0.0", "t", minimalQuestions(), minimalTiers())
	require.NoError(t, err)
	assert.Equal(t, 2, b.Len())
}

func TestChoice(t *testing.T) {
	assert.True(t, ChoiceA.Valid())
	assert.True(t, ChoiceB.Valid())
	assert.False(t, ChoiceNone.Valid())
	assert.False(t, Choice("C").Valid())
	assert.Equal(t, ChoiceB, ChoiceA.Other())
	assert.Equal(t, ChoiceA, ChoiceB.Other())
	assert.Equal(t, ChoiceNone, ChoiceNone.Other())
}

func TestQuestion_Option(t *testing.T) {
	q := minimalQuestions()[0]
	assert.Equal(t, q.OptionA, q.Option(ChoiceA))
	assert.Equal(t, q.OptionB, q.Option(ChoiceB))
	assert.Empty(t, q.Option(ChoiceNone))
	assert.True(t, q.IsAI(q.Correct))
	assert.False(t, q.IsAI(q.Correct.Other()))
}

func minimalQuestions() []Question {
	return []Question{
		{ID: "q1", Prompt: "p1", OptionA: "first text", OptionB: "second text", Type: ContentText, Correct: ChoiceA, Explanation: "e1"},
		{ID: "q2", Prompt: "p2", OptionA: "img/a.jpg", OptionB: "img/b.jpg", Type: ContentImage, Correct: ChoiceB, Explanation: "e2"},
	}
}

func minimalTiers() []result.Tier {
	return []result.Tier{
		{MinFraction: 1, Title: "top", Description: "d", Emblem: "*"},
		{MinFraction: 0, Title: "low", Description: "d", Emblem: "-"},
	}
}
