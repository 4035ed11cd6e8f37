package lead

import (
	"strings"
	"time"

	"github.com/agency/backend/internal/domain/shared"
)

// ConsultationStatus represents the workflow state of a consultation booking
type ConsultationStatus string

const (
	ConsultationStatusPending   ConsultationStatus = "pending"
	ConsultationStatusScheduled ConsultationStatus = "scheduled"
	ConsultationStatusCompleted ConsultationStatus = "completed"
	ConsultationStatusCancelled ConsultationStatus = "cancelled"
)

// IsValid checks if the status is a known value
func (s ConsultationStatus) IsValid() bool {
	switch s {
	case ConsultationStatusPending, ConsultationStatusScheduled,
		ConsultationStatusCompleted, ConsultationStatusCancelled:
		return true
	}
	return false
}

// Consultation represents a consultation booking submitted through the public form
type Consultation struct {
	shared.BaseEntity
	Name          string
	Email         string
	Phone         string
	Company       string
	Service       string
	Message       string
	PreferredDate string
	Status        ConsultationStatus
	Priority      Priority
	ScheduledAt   *time.Time
	Notes         string
}

// NewConsultation creates a consultation booking in the pending state
func NewConsultation(name, email, phone, company, service, message, preferredDate string) (*Consultation, error) {
	if err := validateRequired(map[string]string{
		"name":    name,
		"email":   email,
		"phone":   phone,
		"message": message,
	}, "name", "email", "phone", "message"); err != nil {
		return nil, err
	}

	return &Consultation{
		BaseEntity:    shared.NewBaseEntity(),
		Name:          strings.TrimSpace(name),
		Email:         strings.TrimSpace(email),
		Phone:         strings.TrimSpace(phone),
		Company:       strings.TrimSpace(company),
		Service:       strings.TrimSpace(service),
		Message:       message,
		PreferredDate: strings.TrimSpace(preferredDate),
		Status:        ConsultationStatusPending,
		Priority:      PriorityMedium,
	}, nil
}

// SetStatus transitions the consultation to the given status
func (c *Consultation) SetStatus(status ConsultationStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "Invalid consultation status: "+string(status))
	}
	c.Status = status
	c.Touch()
	return nil
}

// SetPriority changes the triage priority
func (c *Consultation) SetPriority(priority Priority) error {
	if !priority.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "Invalid priority: "+string(priority))
	}
	c.Priority = priority
	c.Touch()
	return nil
}

// Schedule marks the consultation as scheduled for the given time
func (c *Consultation) Schedule(at time.Time) {
	c.ScheduledAt = &at
	c.Status = ConsultationStatusScheduled
	c.Touch()
}

// SetNotes replaces the admin notes
func (c *Consultation) SetNotes(notes string) {
	c.Notes = notes
	c.Touch()
}
