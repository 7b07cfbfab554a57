package bank

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/abhisek/neurobattle/internal/result"
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// validateDocument performs all structural checks on a decoded bank.
// Returns a combined error describing all problems found, or nil if valid.
func validateDocument(doc document) error {
	var errs []string

	if !semver.IsValid(doc.Version) {
		errs = append(errs, fmt.Sprintf("version %q is not a valid semantic version", doc.Version))
	}
	if strings.TrimSpace(doc.Title) == "" {
		errs = append(errs, "title is empty")
	}
	if len(doc.Questions) == 0 {
		errs = append(errs, "bank has no questions")
	}

	ids := make(map[string]bool, len(doc.Questions))
	for i, q := range doc.Questions {
		prefix := fmt.Sprintf("question %d (%q)", i, q.ID)
		if q.ID == "" {
			errs = append(errs, fmt.Sprintf("question %d: id is empty", i))
		} else if ids[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		ids[q.ID] = true

		if strings.TrimSpace(q.Prompt) == "" {
			errs = append(errs, prefix+": prompt is empty")
		}
		if strings.TrimSpace(q.Explanation) == "" {
			errs = append(errs, prefix+": explanation is empty")
		}
		if !q.Correct.Valid() {
			errs = append(errs, fmt.Sprintf("%s: correct must be A or B, got %q", prefix, q.Correct))
		}
		if q.OptionA == q.OptionB && q.OptionA != "" {
			errs = append(errs, prefix+": options A and B are identical")
		}

		for _, c := range AllChoices() {
			if msg := checkPayload(q.Type, q.Option(c)); msg != "" {
				errs = append(errs, fmt.Sprintf("%s option %s: %s", prefix, c, msg))
			}
		}
	}

	if len(doc.Questions) > 0 {
		if err := result.ValidateTable(doc.Tiers, len(doc.Questions)); err != nil {
			errs = append(errs, err.Error())
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  %s", ErrInvalidBank, strings.Join(errs, "\n  "))
	}
	return nil
}

// checkPayload returns a problem description, or "" if payload is consistent
// with the content type.
func checkPayload(t ContentType, payload string) string {
	if strings.TrimSpace(payload) == "" {
		return "payload is empty"
	}
	switch t {
	case ContentImage:
		if !IsImageLocator(payload) {
			return fmt.Sprintf("%q is not an image locator", payload)
		}
	case ContentText:
		if IsImageLocator(payload) {
			return fmt.Sprintf("text payload %q looks like an image locator", payload)
		}
	default:
		return fmt.Sprintf("unknown content type %q", t)
	}
	return ""
}

// IsImageLocator reports whether s parses as a URL or relative path that
// names an image file.
func IsImageLocator(s string) bool {
	if strings.ContainsAny(s, " \t\n") {
		return false
	}
	u, err := url.Parse(s)
	if err != nil || u.Path == "" {
		return false
	}
	return imageExtensions[strings.ToLower(path.Ext(u.Path))]
}
