package service

import (
	"context"
	"fmt"

	"hospital-coordination-backend/internal/apperr"
	"hospital-coordination-backend/internal/metrics"
	"hospital-coordination-backend/internal/models"
	"hospital-coordination-backend/internal/repository"

	"github.com/google/uuid"
)

// CommunityService runs the public help-request board. Posting needs no
// account; requests are addressed by UUID.
type CommunityService struct {
	communityRepo *repository.CommunityRepository
	auditRepo     *repository.AuditRepository
}

func NewCommunityService(communityRepo *repository.CommunityRepository, auditRepo *repository.AuditRepository) *CommunityService {
	return &CommunityService{
		communityRepo: communityRepo,
		auditRepo:     auditRepo,
	}
}

// ListRequests returns requests newest first with their replies
func (s *CommunityService) ListRequests(ctx context.Context) ([]models.CommunityRequest, error) {
	requests, err := s.communityRepo.ListRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("list community requests: %w", err)
	}
	return requests, nil
}

// SubmitRequest posts a new help request
func (s *CommunityService) SubmitRequest(ctx context.Context, name, description string) (*models.CommunityRequest, error) {
	request := &models.CommunityRequest{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Replies:     []models.CommunityReply{},
	}
	if err := s.communityRepo.CreateRequest(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create community request: %w", err)
	}

	metrics.RecordCommunityPost("request")
	_ = s.auditRepo.CreateAuditLog(ctx, nil, "", "community_request",
		fmt.Sprintf("Community request %s posted by %s", request.ID, name))

	return request, nil
}

// Reply appends a reply to requestID and returns the updated request
func (s *CommunityService) Reply(ctx context.Context, requestID, name, message string) (*models.CommunityRequest, error) {
	exists, err := s.communityRepo.RequestExists(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("check community request: %w", err)
	}
	if !exists {
		return nil, apperr.NotFound("request not found")
	}

	reply := &models.CommunityReply{RequestID: requestID, Name: name, Message: message}
	if err := s.communityRepo.AddReply(ctx, reply); err != nil {
		return nil, fmt.Errorf("failed to add reply: %w", err)
	}

	metrics.RecordCommunityPost("reply")
	_ = s.auditRepo.CreateAuditLog(ctx, nil, "", "community_reply",
		fmt.Sprintf("Reply by %s on request %s", name, requestID))

	return s.communityRepo.GetRequest(ctx, requestID)
}
