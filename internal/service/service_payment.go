package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Alianda23/art-exhibit-hub-72/internal/adapter"
	"github.com/Alianda23/art-exhibit-hub-72/internal/form"
	"github.com/Alianda23/art-exhibit-hub-72/internal/logger"
	"github.com/Alianda23/art-exhibit-hub-72/models"
)

// paymentService is the concrete implementation of PaymentService,
// delegating the actual provider call to the payment gateway adapter.
type paymentService struct {
	gateway adapter.PaymentGateway
	logger  *logger.Logger
}

// NewPaymentService constructs a PaymentService over the given gateway.
func NewPaymentService(gateway adapter.PaymentGateway, logger *logger.Logger) PaymentService {
	return &paymentService{
		gateway: gateway,
		logger:  logger,
	}
}

// InitiatePayment starts an STK push from the submitted form.
//
// Requires phoneNumber and amount. A missing reference gets a generated
// unique one so the provider-side transaction stays traceable; a missing
// description defaults to a generic value.
func (s *paymentService) InitiatePayment(ctx context.Context, f *form.Form) (models.PaymentResponse, error) {
	log := logger.FromContext(ctx)

	if missing := f.Missing("phoneNumber", "amount"); len(missing) > 0 {
		log.Error().Strs("missing", missing).Msg("payment form is incomplete")
		return models.PaymentResponse{}, NewValidationError(missing)
	}

	req := models.PaymentRequest{
		PhoneNumber: f.Get("phoneNumber"),
		Amount:      f.Get("amount"),
		Reference:   f.Get("reference"),
		Description: f.Get("description"),
	}
	if req.Reference == "" {
		req.Reference = "gallery-" + uuid.NewString()
	}
	if req.Description == "" {
		req.Description = "Gallery purchase"
	}

	resp, err := s.gateway.InitiateSTKPush(ctx, req)
	if err != nil {
		log.Err(err).Str("phone", req.PhoneNumber).Msg("payment initiation failed")
		return models.PaymentResponse{}, fmt.Errorf("payment initiation failed: %w", err)
	}

	log.Info().
		Str("merchantRequestID", resp.MerchantRequestID).
		Str("checkoutRequestID", resp.CheckoutRequestID).
		Msg("payment initiated")

	return resp, nil
}
