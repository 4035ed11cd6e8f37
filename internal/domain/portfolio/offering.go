package portfolio

import (
	"strings"

	"github.com/agency/backend/internal/domain/shared"
)

// Offering represents a service the agency advertises on the public site
type Offering struct {
	shared.BaseEntity
	Title       string
	Description string
	Icon        string
	Features    []string
	Active      bool
	SortOrder   int
}

// NewOffering creates an active service offering
func NewOffering(title, description, icon string, features []string) (*Offering, error) {
	if err := validateRequired(map[string]string{
		"title":       title,
		"description": description,
	}, "title", "description"); err != nil {
		return nil, err
	}

	return &Offering{
		BaseEntity:  shared.NewBaseEntity(),
		Title:       strings.TrimSpace(title),
		Description: description,
		Icon:        strings.TrimSpace(icon),
		Features:    features,
		Active:      true,
	}, nil
}

// Activate makes the offering visible on the public site
func (o *Offering) Activate() {
	o.Active = true
	o.Touch()
}

// Deactivate hides the offering from the public site
func (o *Offering) Deactivate() {
	o.Active = false
	o.Touch()
}
