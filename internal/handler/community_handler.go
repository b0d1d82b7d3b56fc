package handler

import (
	"net/http"

	"hospital-coordination-backend/internal/service"
	"hospital-coordination-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type CommunityHandler struct {
	communityService *service.CommunityService
}

func NewCommunityHandler(communityService *service.CommunityService) *CommunityHandler {
	return &CommunityHandler{
		communityService: communityService,
	}
}

type CommunitySubmitRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type CommunityReplyRequest struct {
	RequestID string `json:"requestId" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

// ListRequests returns the board, newest request first
func (h *CommunityHandler) ListRequests(c *gin.Context) {
	requests, err := h.communityService.ListRequests(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, requests)
}

// SubmitRequest posts a new help request
func (h *CommunityHandler) SubmitRequest(c *gin.Context) {
	var req CommunitySubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "name and description are required")
		return
	}

	request, err := h.communityService.SubmitRequest(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, request)
}

// Reply appends a reply to an existing request
func (h *CommunityHandler) Reply(c *gin.Context) {
	var req CommunityReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "requestId, name and message are required")
		return
	}

	request, err := h.communityService.Reply(c.Request.Context(), req.RequestID, req.Name, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, request)
}
