package models

import (
	"github.com/agency/backend/internal/domain/identity"
)

// AdminModel is the persistence model for the Admin domain entity.
type AdminModel struct {
	BaseModel
	Email        string        `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash string        `gorm:"type:varchar(255);not null"`
	Name         string        `gorm:"type:varchar(200);not null"`
	Role         identity.Role `gorm:"type:varchar(20);not null;default:'admin'"`
	Active       bool          `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (AdminModel) TableName() string {
	return "admin_accounts"
}

// ToDomain converts the persistence model to a domain Admin entity.
func (m *AdminModel) ToDomain() *identity.Admin {
	return &identity.Admin{
		BaseEntity:   m.BaseModel.ToDomain(),
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		Role:         m.Role,
		Active:       m.Active,
	}
}

// AdminModelFromDomain creates a persistence model from a domain Admin entity.
func AdminModelFromDomain(a *identity.Admin) *AdminModel {
	m := &AdminModel{
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Name:         a.Name,
		Role:         a.Role,
		Active:       a.Active,
	}
	m.FromDomainBaseEntity(a.BaseEntity)
	return m
}
