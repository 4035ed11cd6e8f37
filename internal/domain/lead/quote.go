package lead

import (
	"strings"

	"github.com/agency/backend/internal/domain/shared"
)

// QuoteStatus represents the workflow state of a quote request
type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusReviewing QuoteStatus = "reviewing"
	QuoteStatusQuoted    QuoteStatus = "quoted"
	QuoteStatusAccepted  QuoteStatus = "accepted"
	QuoteStatusRejected  QuoteStatus = "rejected"
	QuoteStatusCompleted QuoteStatus = "completed"
)

// IsValid checks if the status is a known value
func (s QuoteStatus) IsValid() bool {
	switch s {
	case QuoteStatusPending, QuoteStatusReviewing, QuoteStatusQuoted,
		QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusCompleted:
		return true
	}
	return false
}

// Quote represents a project quote request submitted through the public form
type Quote struct {
	shared.BaseEntity
	Name        string
	Email       string
	Phone       string
	Company     string
	Services    []string
	Budget      string
	Timeline    string
	Description string
	Status      QuoteStatus
	Priority    Priority
	Notes       string
}

// NewQuote creates a quote request in the pending state with medium priority
func NewQuote(name, email, phone, company string, services []string, budget, timeline, description string) (*Quote, error) {
	if err := validateRequired(map[string]string{
		"name":  name,
		"email": email,
		"phone": phone,
	}, "name", "email", "phone"); err != nil {
		return nil, err
	}
	if len(services) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Field 'services' is required")
	}
	if err := validateRequired(map[string]string{
		"budget":      budget,
		"timeline":    timeline,
		"description": description,
	}, "budget", "timeline", "description"); err != nil {
		return nil, err
	}

	return &Quote{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        strings.TrimSpace(name),
		Email:       strings.TrimSpace(email),
		Phone:       strings.TrimSpace(phone),
		Company:     strings.TrimSpace(company),
		Services:    services,
		Budget:      strings.TrimSpace(budget),
		Timeline:    strings.TrimSpace(timeline),
		Description: description,
		Status:      QuoteStatusPending,
		Priority:    PriorityMedium,
	}, nil
}

// SetStatus transitions the quote to the given status
func (q *Quote) SetStatus(status QuoteStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "Invalid quote status: "+string(status))
	}
	q.Status = status
	q.Touch()
	return nil
}

// SetPriority changes the triage priority
func (q *Quote) SetPriority(priority Priority) error {
	if !priority.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "Invalid priority: "+string(priority))
	}
	q.Priority = priority
	q.Touch()
	return nil
}

// SetNotes replaces the admin notes
func (q *Quote) SetNotes(notes string) {
	q.Notes = notes
	q.Touch()
}
