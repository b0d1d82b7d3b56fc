package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-coordination-backend/internal/models"
	"hospital-coordination-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79/webhook"
)

func postWebhook(s *testServer, payload []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", signature)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func TestPaymentHandler_Webhook(t *testing.T) {
	s := newTestServer(t, "")
	require.NoError(t, repository.NewPaymentRepo(s.db).CreatePayment(t.Context(), &models.Payment{
		PaymentIntentID: "pi_handler_1",
		PrincipalID:     1,
		PrincipalRole:   models.RolePatient,
		Amount:          1500,
		Currency:        "inr",
		Status:          models.PaymentPending,
	}))

	payload, err := json.Marshal(map[string]any{
		"id":          "evt_handler_1",
		"object":      "event",
		"type":        "payment_intent.succeeded",
		"api_version": "2024-06-20",
		"created":     time.Now().Unix(),
		"data": map[string]any{
			"object": map[string]any{"id": "pi_handler_1", "object": "payment_intent", "status": "succeeded"},
		},
	})
	require.NoError(t, err)
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{Payload: payload, Secret: testWebhookSecret})

	w := postWebhook(s, signed.Payload, signed.Header)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"message":"Received"}`, w.Body.String())

	payment, err := repository.NewPaymentRepo(s.db).GetByIntentID(t.Context(), "pi_handler_1")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentSucceeded, payment.Status)

	w = postWebhook(s, payload, "t=1,v1=deadbeef")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeJSON(t, w)["message"], "Webhook Error:")
}

func TestPaymentHandler_CheckoutValidation(t *testing.T) {
	s := newTestServer(t, "")

	w := s.do(http.MethodPost, "/payments/checkout", map[string]any{"amount": 100}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodPost, "/payments/checkout", map[string]any{"amount": 0}, s.token(1, "patient"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/payments/checkout", map[string]any{"amount": -5}, s.token(1, "patient"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
