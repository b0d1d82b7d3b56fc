package repository

import (
	"context"
	"errors"

	"hospital-coordination-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ResourceRepository stores the per-hospital inventory rows. Every table has
// a unique hospital_id so a write is one insert-or-update statement.
type ResourceRepository struct {
	db *gorm.DB
}

func NewResourceRepo(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{db: db}
}

// Upsert writes row and reads the stored state back into dest inside one
// transaction. columns are the counters to overwrite on conflict.
func (r *ResourceRepository) Upsert(ctx context.Context, row, dest models.ResourceRow, hospitalID uint, columns []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		assign := append(append([]string{}, columns...), "updated_at")
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "hospital_id"}},
			DoUpdates: clause.AssignmentColumns(assign),
		}).Create(row).Error
		if err != nil {
			return err
		}
		return tx.Where("hospital_id = ?", hospitalID).Take(dest).Error
	})
}

// Find loads the row for hospitalID into dest
func (r *ResourceRepository) Find(ctx context.Context, hospitalID uint, dest models.ResourceRow) error {
	err := r.db.WithContext(ctx).Where("hospital_id = ?", hospitalID).Take(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
