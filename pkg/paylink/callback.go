package paylink

import (
	"context"

	"paylink/app/models/payment"
)

// callbackStatusMap is the older, simpler vocabulary used by the legacy
// callback endpoint. Its default branch is processing, not pending; the
// discrepancy with the webhook reconciler is intentional and preserved.
var callbackStatusMap = map[string]string{
	"success":   payment.StatusCompleted,
	"completed": payment.StatusCompleted,
	"failed":    payment.StatusFailed,
	"cancelled": payment.StatusCancelled,
}

// CallbackInput is the legacy callback body.
type CallbackInput struct {
	PaymentReference string `json:"payment_reference"`
	Status           string `json:"status"`
	PaymentID        string `json:"payment_id"`
}

// HandleCallback delegates to the status update primitive using the payment
// reference as the link identifier.
func (s *Service) HandleCallback(ctx context.Context, input CallbackInput) error {
	mapped, ok := callbackStatusMap[input.Status]
	if !ok {
		mapped = payment.StatusProcessing
	}

	_, err := s.UpdateStatus(ctx, input.PaymentReference, mapped, nil)
	return err
}
