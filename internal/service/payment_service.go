package service

import (
	"context"
	"fmt"
	"strings"

	"hospital-coordination-backend/internal/apperr"
	"hospital-coordination-backend/internal/metrics"
	"hospital-coordination-backend/internal/models"
	"hospital-coordination-backend/internal/repository"

	"github.com/rs/zerolog"
)

const eventPaymentIntentSucceeded = "payment_intent.succeeded"

// PaymentService runs checkout and webhook confirmation. A nil gateway
// means payments are not configured.
type PaymentService struct {
	gateway         PaymentGateway
	paymentRepo     *repository.PaymentRepository
	auditRepo       *repository.AuditRepository
	defaultCurrency string
	log             zerolog.Logger
}

func NewPaymentService(
	gateway PaymentGateway,
	paymentRepo *repository.PaymentRepository,
	auditRepo *repository.AuditRepository,
	defaultCurrency string,
	log zerolog.Logger,
) *PaymentService {
	return &PaymentService{
		gateway:         gateway,
		paymentRepo:     paymentRepo,
		auditRepo:       auditRepo,
		defaultCurrency: defaultCurrency,
		log:             log,
	}
}

// CheckoutInput is an amount in minor currency units
type CheckoutInput struct {
	Amount      int64
	Currency    string
	Description string
}

// Checkout creates a payment intent and records it as pending
func (s *PaymentService) Checkout(ctx context.Context, actor Actor, in CheckoutInput) (*PaymentIntent, error) {
	if s.gateway == nil {
		return nil, fmt.Errorf("%w: payments are not configured", apperr.ErrUnavailable)
	}
	if in.Amount <= 0 {
		return nil, apperr.Invalid("amount", "must be greater than 0")
	}

	currency := strings.ToLower(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = s.defaultCurrency
	}

	intent, err := s.gateway.CreatePaymentIntent(ctx, PaymentIntentRequest{
		Amount:        in.Amount,
		Currency:      currency,
		Description:   in.Description,
		PrincipalID:   actor.ID,
		PrincipalRole: actor.Role,
	})
	if err != nil {
		metrics.RecordPayment("gateway_error")
		return nil, fmt.Errorf("%w: %v", apperr.ErrUpstream, err)
	}

	payment := &models.Payment{
		PaymentIntentID: intent.ID,
		PrincipalID:     actor.ID,
		PrincipalRole:   actor.Role,
		Amount:          in.Amount,
		Currency:        currency,
		Description:     in.Description,
		Status:          models.PaymentPending,
	}
	if err := s.paymentRepo.CreatePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	metrics.RecordPayment(models.PaymentPending)
	_ = s.auditRepo.CreateAuditLog(ctx, actorID(actor), actor.Role, "payment_checkout",
		fmt.Sprintf("Payment intent %s for %d %s", intent.ID, in.Amount, currency))

	return intent, nil
}

// HandleWebhook verifies a gateway notification and applies it. Signature
// failures wrap ErrInvalidInput; unknown event types are acknowledged.
func (s *PaymentService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	if s.gateway == nil {
		return fmt.Errorf("%w: payments are not configured", apperr.ErrUnavailable)
	}

	event, err := s.gateway.ParseWebhook(payload, signature)
	if err != nil {
		return apperr.Invalid("webhook", err.Error())
	}

	switch event.Type {
	case eventPaymentIntentSucceeded:
		found, err := s.paymentRepo.UpdateStatus(ctx, event.PaymentIntentID, models.PaymentSucceeded)
		if err != nil {
			return fmt.Errorf("mark payment %s succeeded: %w", event.PaymentIntentID, err)
		}
		if !found {
			s.log.Warn().Str("payment_intent", event.PaymentIntentID).Msg("webhook for unknown payment intent")
			return nil
		}
		metrics.RecordPayment(models.PaymentSucceeded)
		_ = s.auditRepo.CreateAuditLog(ctx, nil, "", "payment_succeeded",
			fmt.Sprintf("Payment intent %s succeeded", event.PaymentIntentID))
	default:
		s.log.Debug().Str("event_type", event.Type).Msg("ignoring webhook event")
	}
	return nil
}
