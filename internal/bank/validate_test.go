package bank

import (
	"strings"
	"testing"

	"github.com/abhisek/neurobattle/internal/result"
)

func validDoc() document {
	return document{
		Version:   "v1.0.0",
		Title:     "t",
		Questions: minimalQuestions(),
		Tiers:     minimalTiers(),
	}
}

func TestValidateDocument_ValidPasses(t *testing.T) {
	if err := validateDocument(validDoc()); err != nil {
		t.Fatalf("expected valid document, got: %v", err)
	}
}

func TestValidateDocument_DetectsDuplicateID(t *testing.T) {
	doc := validDoc()
	doc.Questions[1].ID = doc.Questions[0].ID
	err := validateDocument(doc)
	if err == nil {
		t.Fatal("expected error for duplicate ID, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestValidateDocument_DetectsBadVersion(t *testing.T) {
	doc := validDoc()
	doc.Version = "1.0"
	err := validateDocument(doc)
	if err == nil {
		t.Fatal("expected error for bad version, got nil")
	}
	if !strings.Contains(err.Error(), "semantic version") {
		t.Errorf("error should mention semantic version, got: %v", err)
	}
}

func TestValidateDocument_ImageMustBeLocator(t *testing.T) {
	doc := validDoc()
	doc.Questions[1].OptionA = "a picture of a cat"
	err := validateDocument(doc)
	if err == nil {
		t.Fatal("expected error for non-locator image payload, got nil")
	}
	if !strings.Contains(err.Error(), "not an image locator") {
		t.Errorf("error should mention image locator, got: %v", err)
	}
}

func TestValidateDocument_TextMustNotBeLocator(t *testing.T) {
	doc := validDoc()
	doc.Questions[0].OptionB = "photos/b.png"
	err := validateDocument(doc)
	if err == nil {
		t.Fatal("expected error for locator in text payload, got nil")
	}
	if !strings.Contains(err.Error(), "looks like an image locator") {
		t.Errorf("error should mention locator, got: %v", err)
	}
}

func TestValidateDocument_InvalidCorrect(t *testing.T) {
	doc := validDoc()
	doc.Questions[0].Correct = "C"
	err := validateDocument(doc)
	if err == nil {
		t.Fatal("expected error for invalid correct option, got nil")
	}
	if !strings.Contains(err.Error(), "correct must be A or B") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateDocument_IdenticalOptions(t *testing.T) {
	doc := validDoc()
	doc.Questions[0].OptionB = doc.Questions[0].OptionA
	if err := validateDocument(doc); err == nil {
		t.Fatal("expected error for identical options, got nil")
	}
}

func TestValidateDocument_TierGap(t *testing.T) {
	doc := validDoc()
	doc.Tiers = []result.Tier{{MinFraction: 1, Title: "only perfect"}}
	err := validateDocument(doc)
	if err == nil {
		t.Fatal("expected error for tier gap, got nil")
	}
	if !strings.Contains(err.Error(), "no result tier matches") {
		t.Errorf("error should report uncovered score, got: %v", err)
	}
}

func TestValidateDocument_ReportsAllProblems(t *testing.T) {
	doc := validDoc()
	doc.Version = "bad"
	doc.Questions[0].Prompt = ""
	doc.Questions[1].Explanation = " "
	err := validateDocument(doc)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	for _, want := range []string{"semantic version", "prompt is empty", "explanation is empty"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should contain %q, got: %v", want, err)
		}
	}
}

func TestIsImageLocator(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"images/a.jpg", true},
		{"https://cdn.example.com/x/Photo.PNG", true},
		{"/abs/path.webp", true},
		{"https://example.com/page.html", false},
		{"just some words.jpg here", false},
		{"", false},
		{"noext", false},
	}
	for _, tt := range tests {
		if got := IsImageLocator(tt.in); got != tt.want {
			t.Errorf("IsImageLocator(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
