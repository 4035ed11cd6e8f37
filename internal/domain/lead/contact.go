package lead

import (
	"strings"

	"github.com/agency/backend/internal/domain/shared"
)

// ContactStatus represents the workflow state of a contact message
type ContactStatus string

const (
	ContactStatusPending ContactStatus = "pending"
	ContactStatusReplied ContactStatus = "replied"
)

// IsValid checks if the status is a known value
func (s ContactStatus) IsValid() bool {
	return s == ContactStatusPending || s == ContactStatusReplied
}

// Contact represents a message submitted through the public contact form
type Contact struct {
	shared.BaseEntity
	Name    string
	Email   string
	Phone   string
	Company string
	Message string
	Status  ContactStatus
	Notes   string
}

// NewContact creates a contact message in the pending state
func NewContact(name, email, phone, company, message string) (*Contact, error) {
	if err := validateRequired(map[string]string{
		"name":    name,
		"email":   email,
		"phone":   phone,
		"message": message,
	}, "name", "email", "phone", "message"); err != nil {
		return nil, err
	}

	return &Contact{
		BaseEntity: shared.NewBaseEntity(),
		Name:       strings.TrimSpace(name),
		Email:      strings.TrimSpace(email),
		Phone:      strings.TrimSpace(phone),
		Company:    strings.TrimSpace(company),
		Message:    message,
		Status:     ContactStatusPending,
	}, nil
}

// SetStatus transitions the contact to the given status
func (c *Contact) SetStatus(status ContactStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "Invalid contact status: "+string(status))
	}
	c.Status = status
	c.Touch()
	return nil
}

// SetNotes replaces the admin notes
func (c *Contact) SetNotes(notes string) {
	c.Notes = notes
	c.Touch()
}

// validateRequired reports the first missing field in the given order
func validateRequired(fields map[string]string, order ...string) error {
	for _, name := range order {
		if strings.TrimSpace(fields[name]) == "" {
			return shared.NewDomainError("INVALID_INPUT", "Field '"+name+"' is required")
		}
	}
	return nil
}
