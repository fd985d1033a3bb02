package project

import (
	"errors"
	"regexp"
	"strings"
)

type Project struct {
	Title        string   `json:"title"`
	Slug         string   `json:"slug,omitempty"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Image        string   `json:"image"`
	LiveURL      string   `json:"liveUrl,omitempty"`
	GithubURL    string   `json:"githubUrl,omitempty"`
}

var (
	ErrInvalidSlug     = errors.New("slug only allows lowercase letters, numbers, and hyphens")
	ErrProjectNotFound = errors.New("project not found")
	slugRegex          = regexp.MustCompile(`^[a-z0-9-]+$`)
	slugStripRegex     = regexp.MustCompile(`[^a-z0-9-]+`)
)

// SlugFromTitle derives a slug the same way for every project without one:
// lowercase, spaces to hyphens, anything else dropped.
func SlugFromTitle(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = slugStripRegex.ReplaceAllString(slug, "")
	return strings.Trim(slug, "-")
}

// Normalize fills in a missing slug.
func (p *Project) Normalize() {
	if p.Slug == "" {
		p.Slug = SlugFromTitle(p.Title)
	}
}

func (p *Project) Validate() error {
	if !slugRegex.MatchString(p.Slug) {
		return ErrInvalidSlug
	}
	return nil
}
