// Package testutil provides a migrated in-memory database for package tests.
package testutil

import (
	"fmt"
	"testing"

	"hospital-coordination-backend/internal/database"
	"hospital-coordination-backend/internal/models"
	"hospital-coordination-backend/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	// Keep bcrypt cheap in tests.
	utils.PasswordCost = bcrypt.MinCost
}

// NewDB returns a fresh sqlite database with every table migrated. Each call
// gets its own named in-memory database so tests do not share rows.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", uuid.NewString())
	db, err := database.Open(sqlite.Open(dsn), true)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// SeedHospital inserts a hospital with the given id and password "secret123".
func SeedHospital(t *testing.T, db *gorm.DB, id uint) *models.Hospital {
	t.Helper()

	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	h := &models.Hospital{
		ID:            id,
		Name:          fmt.Sprintf("Hospital %d", id),
		Address:       "12 Long Street, Pune",
		ContactPerson: "Dr. Rao",
		Phone:         "9876543210",
		Email:         fmt.Sprintf("h%d@example.com", id),
		LicenseNumber: fmt.Sprintf("LIC-%05d", id),
		PasswordHash:  hash,
		Latitude:      18.52,
		Longitude:     73.85,
	}
	require.NoError(t, db.Create(h).Error)
	return h
}

// SeedPatient inserts a patient with password "secret123".
func SeedPatient(t *testing.T, db *gorm.DB, email string) *models.Patient {
	t.Helper()

	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	p := &models.Patient{Name: "Asha", Email: email, PasswordHash: hash}
	require.NoError(t, db.Create(p).Error)
	return p
}
