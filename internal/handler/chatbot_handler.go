package handler

import (
	"net/http"

	"hospital-coordination-backend/internal/service"
	"hospital-coordination-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ChatbotHandler struct {
	chatbotService *service.ChatbotService
}

func NewChatbotHandler(chatbotService *service.ChatbotService) *ChatbotHandler {
	return &ChatbotHandler{
		chatbotService: chatbotService,
	}
}

type ChatbotRequest struct {
	Message string `json:"message" binding:"required"`
}

// Ask relays a message to the chat-bot and returns its reply
func (h *ChatbotHandler) Ask(c *gin.Context) {
	var req ChatbotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "message is required")
		return
	}

	reply, err := h.chatbotService.Ask(c.Request.Context(), req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"reply": reply})
}
