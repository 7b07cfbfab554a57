// Package media resolves image locators from the question bank into
// something the terminal can show.
package media

import (
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Placeholder is shown in place of an image that cannot be resolved.
const Placeholder = "[ image unavailable ]"

// Image is a resolved image option.
type Image struct {
	Locator   string
	Path      string // local file path; empty for remote or unresolved locators
	Name      string // base file name for display
	Available bool
}

// Label returns the text shown for the image in the option card.
func (i Image) Label() string {
	if !i.Available {
		return Placeholder
	}
	return "🖼  " + i.Name
}

// Resolver maps locators onto files under a base directory.
type Resolver struct {
	baseDir string
	stat    func(string) (os.FileInfo, error)
}

// NewResolver creates a resolver rooted at baseDir.
func NewResolver(baseDir string) *Resolver {
	return &Resolver{baseDir: baseDir, stat: os.Stat}
}

// Resolve looks up a locator. Remote locators are never fetched and fall
// back to the placeholder. Resolution failures are never returned as errors.
func (r *Resolver) Resolve(locator string) Image {
	img := Image{Locator: locator}

	u, err := url.Parse(locator)
	if err != nil {
		return img
	}
	img.Name = path.Base(u.Path)

	switch u.Scheme {
	case "":
	case "file":
		return r.check(img, u.Path)
	default:
		return img
	}

	p := filepath.FromSlash(u.Path)
	if !filepath.IsAbs(p) {
		// Locators are relative to the assets dir and may not escape it.
		clean := filepath.Clean(p)
		if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
			return img
		}
		p = filepath.Join(r.baseDir, clean)
	}
	return r.check(img, p)
}

func (r *Resolver) check(img Image, p string) Image {
	info, err := r.stat(p)
	if err != nil || info.IsDir() {
		return img
	}
	img.Path = p
	img.Available = true
	return img
}
