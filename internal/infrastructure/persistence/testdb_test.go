package persistence

import (
	"testing"

	"github.com/agency/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB creates an in-memory SQLite database with all tables migrated
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.AdminModel{},
		&models.ContactModel{},
		&models.QuoteModel{},
		&models.ConsultationModel{},
		&models.ProjectModel{},
		&models.OfferingModel{},
	)
	require.NoError(t, err)

	return db
}
