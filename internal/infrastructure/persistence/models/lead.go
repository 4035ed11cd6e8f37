package models

import (
	"time"

	"github.com/agency/backend/internal/domain/lead"
)

// ContactModel is the persistence model for the Contact domain entity.
type ContactModel struct {
	BaseModel
	Name    string             `gorm:"type:varchar(200);not null"`
	Email   string             `gorm:"type:varchar(200);not null;index"`
	Phone   string             `gorm:"type:varchar(50);not null"`
	Company string             `gorm:"type:varchar(200)"`
	Message string             `gorm:"type:text;not null"`
	Status  lead.ContactStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	Notes   string             `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ContactModel) TableName() string {
	return "contacts"
}

// ToDomain converts the persistence model to a domain Contact entity.
func (m *ContactModel) ToDomain() *lead.Contact {
	return &lead.Contact{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
		Company:    m.Company,
		Message:    m.Message,
		Status:     m.Status,
		Notes:      m.Notes,
	}
}

// ContactModelFromDomain creates a persistence model from a domain Contact entity.
func ContactModelFromDomain(c *lead.Contact) *ContactModel {
	m := &ContactModel{
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Company: c.Company,
		Message: c.Message,
		Status:  c.Status,
		Notes:   c.Notes,
	}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}

// QuoteModel is the persistence model for the Quote domain entity.
// Requested services are stored as a JSON text column.
type QuoteModel struct {
	BaseModel
	Name         string           `gorm:"type:varchar(200);not null"`
	Email        string           `gorm:"type:varchar(200);not null;index"`
	Phone        string           `gorm:"type:varchar(50);not null"`
	Company      string           `gorm:"type:varchar(200)"`
	ServicesJSON string           `gorm:"column:services;type:text;not null;default:'[]'"`
	Budget       string           `gorm:"type:varchar(100);not null"`
	Timeline     string           `gorm:"type:varchar(100);not null"`
	Description  string           `gorm:"type:text;not null"`
	Status       lead.QuoteStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	Priority     lead.Priority    `gorm:"type:varchar(10);not null;default:'medium';index"`
	Notes        string           `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (QuoteModel) TableName() string {
	return "quotes"
}

// ToDomain converts the persistence model to a domain Quote entity.
func (m *QuoteModel) ToDomain() *lead.Quote {
	return &lead.Quote{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone,
		Company:     m.Company,
		Services:    unmarshalStringSlice(m.ServicesJSON, "services"),
		Budget:      m.Budget,
		Timeline:    m.Timeline,
		Description: m.Description,
		Status:      m.Status,
		Priority:    m.Priority,
		Notes:       m.Notes,
	}
}

// QuoteModelFromDomain creates a persistence model from a domain Quote entity.
func QuoteModelFromDomain(q *lead.Quote) *QuoteModel {
	m := &QuoteModel{
		Name:         q.Name,
		Email:        q.Email,
		Phone:        q.Phone,
		Company:      q.Company,
		ServicesJSON: marshalStringSlice(q.Services),
		Budget:       q.Budget,
		Timeline:     q.Timeline,
		Description:  q.Description,
		Status:       q.Status,
		Priority:     q.Priority,
		Notes:        q.Notes,
	}
	m.FromDomainBaseEntity(q.BaseEntity)
	return m
}

// ConsultationModel is the persistence model for the Consultation domain entity.
type ConsultationModel struct {
	BaseModel
	Name          string                  `gorm:"type:varchar(200);not null"`
	Email         string                  `gorm:"type:varchar(200);not null;index"`
	Phone         string                  `gorm:"type:varchar(50);not null"`
	Company       string                  `gorm:"type:varchar(200)"`
	Service       string                  `gorm:"type:varchar(200)"`
	Message       string                  `gorm:"type:text;not null"`
	PreferredDate string                  `gorm:"type:varchar(100)"`
	Status        lead.ConsultationStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	Priority      lead.Priority           `gorm:"type:varchar(10);not null;default:'medium';index"`
	ScheduledAt   *time.Time              `gorm:"index"`
	Notes         string                  `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ConsultationModel) TableName() string {
	return "consultations"
}

// ToDomain converts the persistence model to a domain Consultation entity.
func (m *ConsultationModel) ToDomain() *lead.Consultation {
	return &lead.Consultation{
		BaseEntity:    m.BaseModel.ToDomain(),
		Name:          m.Name,
		Email:         m.Email,
		Phone:         m.Phone,
		Company:       m.Company,
		Service:       m.Service,
		Message:       m.Message,
		PreferredDate: m.PreferredDate,
		Status:        m.Status,
		Priority:      m.Priority,
		ScheduledAt:   m.ScheduledAt,
		Notes:         m.Notes,
	}
}

// ConsultationModelFromDomain creates a persistence model from a domain Consultation entity.
func ConsultationModelFromDomain(c *lead.Consultation) *ConsultationModel {
	m := &ConsultationModel{
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		Company:       c.Company,
		Service:       c.Service,
		Message:       c.Message,
		PreferredDate: c.PreferredDate,
		Status:        c.Status,
		Priority:      c.Priority,
		ScheduledAt:   c.ScheduledAt,
		Notes:         c.Notes,
	}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}
