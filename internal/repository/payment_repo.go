package repository

import (
	"context"
	"errors"

	"hospital-coordination-backend/internal/models"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepo(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// CreatePayment records a newly created payment intent
func (r *PaymentRepository) CreatePayment(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// UpdateStatus sets the status of the payment for intentID. It reports
// whether a row was found.
func (r *PaymentRepository) UpdateStatus(ctx context.Context, intentID, status string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Payment{}).
		Where("payment_intent_id = ?", intentID).
		Update("status", status)
	return res.RowsAffected > 0, res.Error
}

// GetByIntentID retrieves a payment by gateway intent id
func (r *PaymentRepository) GetByIntentID(ctx context.Context, intentID string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.WithContext(ctx).Where("payment_intent_id = ?", intentID).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}
