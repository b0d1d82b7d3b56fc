package repository

import (
	"context"
	"errors"

	"hospital-coordination-backend/internal/models"

	"gorm.io/gorm"
)

type CommunityRepository struct {
	db *gorm.DB
}

func NewCommunityRepo(db *gorm.DB) *CommunityRepository {
	return &CommunityRepository{db: db}
}

// ListRequests returns requests newest first, each with replies in the
// order they were posted
func (r *CommunityRepository) ListRequests(ctx context.Context) ([]models.CommunityRequest, error) {
	requests := []models.CommunityRequest{}
	err := r.db.WithContext(ctx).
		Preload("Replies", func(db *gorm.DB) *gorm.DB { return db.Order("community_replies.id ASC") }).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// CreateRequest creates a new community request
func (r *CommunityRepository) CreateRequest(ctx context.Context, request *models.CommunityRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

// RequestExists reports whether id names a stored request
func (r *CommunityRepository) RequestExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CommunityRequest{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// AddReply appends a reply to an existing request
func (r *CommunityRepository) AddReply(ctx context.Context, reply *models.CommunityReply) error {
	return r.db.WithContext(ctx).Create(reply).Error
}

// GetRequest loads one request with its replies
func (r *CommunityRepository) GetRequest(ctx context.Context, id string) (*models.CommunityRequest, error) {
	var request models.CommunityRequest
	err := r.db.WithContext(ctx).
		Preload("Replies", func(db *gorm.DB) *gorm.DB { return db.Order("community_replies.id ASC") }).
		Where("id = ?", id).
		First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &request, nil
}
