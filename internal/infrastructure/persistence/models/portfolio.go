package models

import (
	"github.com/agency/backend/internal/domain/portfolio"
)

// ProjectModel is the persistence model for the Project domain entity.
// The hosted image is flattened into url and storage key columns; the
// technology list is stored as a JSON text column.
type ProjectModel struct {
	BaseModel
	Title            string `gorm:"type:varchar(200);not null"`
	Description      string `gorm:"type:text;not null"`
	Category         string `gorm:"type:varchar(100);not null;index"`
	ImageURL         string `gorm:"type:varchar(500);not null"`
	ImageStorageKey  string `gorm:"type:varchar(500);not null"`
	TechnologiesJSON string `gorm:"column:technologies;type:text;not null;default:'[]'"`
	LiveURL          string `gorm:"type:varchar(500)"`
	Featured         bool   `gorm:"not null;default:false;index"`
	Published        bool   `gorm:"not null;default:false;index"`
	SortOrder        int    `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (ProjectModel) TableName() string {
	return "projects"
}

// ToDomain converts the persistence model to a domain Project entity.
func (m *ProjectModel) ToDomain() *portfolio.Project {
	return &portfolio.Project{
		BaseEntity:  m.BaseModel.ToDomain(),
		Title:       m.Title,
		Description: m.Description,
		Category:    m.Category,
		Image: portfolio.HostedImage{
			URL:        m.ImageURL,
			StorageKey: m.ImageStorageKey,
		},
		Technologies: unmarshalStringSlice(m.TechnologiesJSON, "technologies"),
		LiveURL:      m.LiveURL,
		Featured:     m.Featured,
		Published:    m.Published,
		SortOrder:    m.SortOrder,
	}
}

// ProjectModelFromDomain creates a persistence model from a domain Project entity.
func ProjectModelFromDomain(p *portfolio.Project) *ProjectModel {
	m := &ProjectModel{
		Title:            p.Title,
		Description:      p.Description,
		Category:         p.Category,
		ImageURL:         p.Image.URL,
		ImageStorageKey:  p.Image.StorageKey,
		TechnologiesJSON: marshalStringSlice(p.Technologies),
		LiveURL:          p.LiveURL,
		Featured:         p.Featured,
		Published:        p.Published,
		SortOrder:        p.SortOrder,
	}
	m.FromDomainBaseEntity(p.BaseEntity)
	return m
}

// OfferingModel is the persistence model for the Offering domain entity.
type OfferingModel struct {
	BaseModel
	Title        string `gorm:"type:varchar(200);not null"`
	Description  string `gorm:"type:text;not null"`
	Icon         string `gorm:"type:varchar(100)"`
	FeaturesJSON string `gorm:"column:features;type:text;not null;default:'[]'"`
	Active       bool   `gorm:"not null;default:true;index"`
	SortOrder    int    `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (OfferingModel) TableName() string {
	return "offerings"
}

// ToDomain converts the persistence model to a domain Offering entity.
func (m *OfferingModel) ToDomain() *portfolio.Offering {
	return &portfolio.Offering{
		BaseEntity:  m.BaseModel.ToDomain(),
		Title:       m.Title,
		Description: m.Description,
		Icon:        m.Icon,
		Features:    unmarshalStringSlice(m.FeaturesJSON, "features"),
		Active:      m.Active,
		SortOrder:   m.SortOrder,
	}
}

// OfferingModelFromDomain creates a persistence model from a domain Offering entity.
func OfferingModelFromDomain(o *portfolio.Offering) *OfferingModel {
	m := &OfferingModel{
		Title:        o.Title,
		Description:  o.Description,
		Icon:         o.Icon,
		FeaturesJSON: marshalStringSlice(o.Features),
		Active:       o.Active,
		SortOrder:    o.SortOrder,
	}
	m.FromDomainBaseEntity(o.BaseEntity)
	return m
}
