package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-coordination-backend/internal/middleware"
	"hospital-coordination-backend/internal/repository"
	"hospital-coordination-backend/internal/service"
	"hospital-coordination-backend/internal/testutil"
	"hospital-coordination-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testWebhookSecret = "whsec_handler_test"

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	t      *testing.T
	db     *gorm.DB
	tokens *utils.TokenManager
	router *gin.Engine
}

// newTestServer wires the full route table over an in-memory database.
// chatbotURL may be empty to leave the chat-bot unconfigured.
func newTestServer(t *testing.T, chatbotURL string) *testServer {
	t.Helper()

	db := testutil.NewDB(t)
	tokens := utils.NewTokenManager("handler-secret", 15*time.Minute, time.Hour)

	hospitalRepo := repository.NewHospitalRepo(db)
	patientRepo := repository.NewPatientRepo(db)
	tokenRepo := repository.NewTokenRepo(db)
	auditRepo := repository.NewAuditRepo(db)
	resourceRepo := repository.NewResourceRepo(db)
	doctorRepo := repository.NewDoctorRepo(db)
	profileRepo := repository.NewMedicalProfileRepo(db)
	communityRepo := repository.NewCommunityRepo(db)
	paymentRepo := repository.NewPaymentRepo(db)

	gateway := service.NewStripeGateway("sk_test_unused", testWebhookSecret)

	routes := Routes{
		DB:      db,
		Tokens:  tokens,
		Limiter: middleware.NewIPRateLimiter(1000, 1000),

		Auth:           NewAuthHandler(service.NewAuthService(hospitalRepo, patientRepo, tokenRepo, auditRepo, tokens), time.Hour, false),
		Hospital:       NewHospitalHandler(service.NewHospitalService(hospitalRepo, resourceRepo)),
		Resource:       NewResourceHandler(service.NewResourceService(hospitalRepo, resourceRepo, auditRepo)),
		Doctor:         NewDoctorHandler(service.NewDoctorService(doctorRepo, hospitalRepo, auditRepo)),
		MedicalProfile: NewMedicalProfileHandler(service.NewMedicalProfileService(profileRepo, doctorRepo, auditRepo)),
		Community:      NewCommunityHandler(service.NewCommunityService(communityRepo, auditRepo)),
		Payment:        NewPaymentHandler(service.NewPaymentService(gateway, paymentRepo, auditRepo, "inr", zerolog.Nop())),
		Chatbot:        NewChatbotHandler(service.NewChatbotService(chatbotURL, time.Second)),
	}

	r := gin.New()
	routes.Register(r)

	return &testServer{t: t, db: db, tokens: tokens, router: r}
}

func (s *testServer) token(id uint, role string) string {
	s.t.Helper()
	token, err := s.tokens.GenerateAccessToken(id, role)
	require.NoError(s.t, err)
	return token
}

// do sends body (a string is sent raw, anything else JSON encoded) with an
// optional bearer token
func (s *testServer) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	s.t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func envelopeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	body := decodeJSON(t, w)
	require.Equal(t, true, body["success"], w.Body.String())
	data, ok := body["data"].(map[string]any)
	require.True(t, ok, w.Body.String())
	return data
}

func refreshCookieFrom(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == refreshCookie {
			return c
		}
	}
	return nil
}
