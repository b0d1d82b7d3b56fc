package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hospital-coordination-backend/internal/apperr"
	"hospital-coordination-backend/internal/metrics"
)

const maxChatbotReply = 1 << 20

// ChatbotService forwards a message to the external assistant, which takes
// a form field "msg" at /get and answers with plain text
type ChatbotService struct {
	baseURL string
	client  *http.Client
}

func NewChatbotService(baseURL string, timeout time.Duration) *ChatbotService {
	return &ChatbotService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Ask sends message upstream and returns the reply text
func (s *ChatbotService) Ask(ctx context.Context, message string) (string, error) {
	if s.baseURL == "" {
		return "", fmt.Errorf("%w: chatbot is not configured", apperr.ErrUnavailable)
	}

	form := url.Values{"msg": {message}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/get", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build chatbot request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		metrics.RecordChatbotRequest("transport_error", time.Since(start))
		return "", fmt.Errorf("%w: %v", apperr.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxChatbotReply))
	if err != nil {
		metrics.RecordChatbotRequest("transport_error", time.Since(start))
		return "", fmt.Errorf("%w: read reply: %v", apperr.ErrUpstream, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.RecordChatbotRequest("bad_status", time.Since(start))
		return "", fmt.Errorf("%w: chatbot returned %d", apperr.ErrUpstream, resp.StatusCode)
	}

	metrics.RecordChatbotRequest("ok", time.Since(start))
	return strings.TrimSpace(string(body)), nil
}
