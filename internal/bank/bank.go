package bank

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/neurobattle/internal/result"
)

//go:embed data/bank.json
var embeddedBank []byte

// ErrInvalidBank is wrapped by every load-time validation failure.
var ErrInvalidBank = errors.New("invalid question bank")

// Bank is a validated, immutable question set with its result tier table.
type Bank struct {
	version   string
	title     string
	questions []Question
	tiers     []result.Tier
}

// Load parses and validates the embedded question bank.
func Load() (*Bank, error) {
	return Parse(embeddedBank)
}

// MustLoad is like Load but panics if the embedded bank is malformed.
func MustLoad() *Bank {
	b, err := Load()
	if err != nil {
		panic(fmt.Sprintf("embedded question bank: %v", err))
	}
	return b
}

// LoadFile reads a bank from a .json, .yaml or .yml file.
func LoadFile(path string) (*Bank, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		raw, err = yamlToJSON(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidBank, path, err)
		}
	case ".json", "":
	default:
		return nil, fmt.Errorf("%w: unsupported file extension %q", ErrInvalidBank, filepath.Ext(path))
	}

	b, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Parse decodes raw JSON, validates it against the bank schema, then runs the
// structural checks. All structural problems are reported together.
func Parse(raw []byte) (*Bank, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrInvalidBank, err)
	}
	if err := validateSchema(parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBank, err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidBank, err)
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	return &Bank{
		version:   doc.Version,
		title:     doc.Title,
		questions: doc.Questions,
		tiers:     doc.Tiers,
	}, nil
}

// yamlToJSON normalises a YAML document so it can share the JSON pipeline.
func yamlToJSON(raw []byte) ([]byte, error) {
	var v any
	if err := yaml.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return json.Marshal(v)
}

// Version returns the bank's semantic version.
func (b *Bank) Version() string { return b.version }

// Title returns the game title stored with the bank.
func (b *Bank) Title() string { return b.title }

// Len returns the number of questions.
func (b *Bank) Len() int { return len(b.questions) }

// Questions returns the questions in bank order. The slice is a copy.
func (b *Bank) Questions() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// ResultTiers returns the tier table, highest bar first. The slice is a copy.
func (b *Bank) ResultTiers() []result.Tier {
	out := make([]result.Tier, len(b.tiers))
	copy(out, b.tiers)
	return out
}

// CountByType returns how many questions use each content type.
func (b *Bank) CountByType() map[ContentType]int {
	counts := make(map[ContentType]int, 2)
	for _, q := range b.questions {
		counts[q.Type]++
	}
	return counts
}

// New builds a Bank from in-memory records, applying the structural checks.
// Intended for tests and tools that assemble banks programmatically.
func New(version, title string, questions []Question, tiers []result.Tier) (*Bank, error) {
	doc := document{Version: version, Title: title, Questions: questions, Tiers: tiers}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}
	b := &Bank{version: version, title: title}
	b.questions = append(b.questions, questions...)
	b.tiers = append(b.tiers, tiers...)
	return b, nil
}
