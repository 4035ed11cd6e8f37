package portfolio

import "time"

// HostedImageInput references an already-uploaded object
type HostedImageInput struct {
	URL        string
	StorageKey string
}

// CreateProjectInput carries a new portfolio project from the back office
type CreateProjectInput struct {
	Title        string
	Description  string
	Category     string
	Image        HostedImageInput
	Technologies []string
	LiveURL      string
}

// UpdateProjectInput carries an admin update to a project.
// Nil fields are left unchanged.
type UpdateProjectInput struct {
	Title        *string
	Description  *string
	Category     *string
	Image        *HostedImageInput
	Technologies *[]string
	LiveURL      *string
	Featured     *bool
	Published    *bool
	SortOrder    *int
}

// CreateOfferingInput carries a new service offering from the back office
type CreateOfferingInput struct {
	Title       string
	Description string
	Icon        string
	Features    []string
}

// UpdateOfferingInput carries an admin update to an offering.
// Nil fields are left unchanged.
type UpdateOfferingInput struct {
	Title       *string
	Description *string
	Icon        *string
	Features    *[]string
	Active      *bool
	SortOrder   *int
}

// RequestUploadInput asks for a presigned image upload URL
type RequestUploadInput struct {
	FileName    string
	ContentType string
}

// UploadTicket is a presigned upload slot for a project image
type UploadTicket struct {
	UploadURL  string    `json:"upload_url"`
	StorageKey string    `json:"storage_key"`
	PublicURL  string    `json:"public_url"`
	ExpiresAt  time.Time `json:"expires_at"`
}
