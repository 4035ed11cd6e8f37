package portfolio

import (
	"strings"

	"github.com/agency/backend/internal/domain/shared"
)

// HostedImage references an image already uploaded to object storage.
// Raw embedded image data is rejected to bound document size.
type HostedImage struct {
	URL        string
	StorageKey string
}

// Validate checks that the image references hosted storage
func (i HostedImage) Validate() error {
	if strings.TrimSpace(i.URL) == "" || strings.TrimSpace(i.StorageKey) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Field 'image' must reference a hosted object (url and storage_key)")
	}
	if strings.HasPrefix(i.URL, "data:") {
		return shared.NewDomainError("INVALID_INPUT", "Field 'image.url' must not embed raw image data")
	}
	return nil
}

// Project represents a portfolio case study shown on the marketing site
type Project struct {
	shared.BaseEntity
	Title        string
	Description  string
	Category     string
	Image        HostedImage
	Technologies []string
	LiveURL      string
	Featured     bool
	Published    bool
	SortOrder    int
}

// NewProject creates an unpublished portfolio project
func NewProject(title, description, category string, image HostedImage, technologies []string, liveURL string) (*Project, error) {
	if err := validateRequired(map[string]string{
		"title":       title,
		"description": description,
		"category":    category,
	}, "title", "description", "category"); err != nil {
		return nil, err
	}
	if err := image.Validate(); err != nil {
		return nil, err
	}

	return &Project{
		BaseEntity:   shared.NewBaseEntity(),
		Title:        strings.TrimSpace(title),
		Description:  description,
		Category:     strings.TrimSpace(category),
		Image:        image,
		Technologies: technologies,
		LiveURL:      strings.TrimSpace(liveURL),
	}, nil
}

// SetImage replaces the hosted image reference
func (p *Project) SetImage(image HostedImage) error {
	if err := image.Validate(); err != nil {
		return err
	}
	p.Image = image
	p.Touch()
	return nil
}

// Publish makes the project visible on the public site
func (p *Project) Publish() {
	p.Published = true
	p.Touch()
}

// Unpublish hides the project from the public site
func (p *Project) Unpublish() {
	p.Published = false
	p.Touch()
}

// SetFeatured toggles the featured flag
func (p *Project) SetFeatured(featured bool) {
	p.Featured = featured
	p.Touch()
}

func validateRequired(fields map[string]string, order ...string) error {
	for _, name := range order {
		if strings.TrimSpace(fields[name]) == "" {
			return shared.NewDomainError("INVALID_INPUT", "Field '"+name+"' is required")
		}
	}
	return nil
}
