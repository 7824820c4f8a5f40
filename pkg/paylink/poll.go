package paylink

import (
	"context"
	"time"

	"paylink/app/models/payment"
)

// PollResult reports a status-transaction query, run through the same
// normalization and update path as a webhook.
type PollResult struct {
	PaymentID      uint64 `json:"payment_id"`
	TransactionID  string `json:"transaction_id"`
	GatewayStatus  string `json:"gateway_status"`
	PreviousStatus string `json:"previous_status"`
	Status         string `json:"status"`
}

// PollGatewayStatus asks the gateway for a payment's current transaction
// state. This is the polling arm of reconciliation used when webhooks are
// delayed; a payment with no gateway transaction yet cannot be polled.
func (s *Service) PollGatewayStatus(ctx context.Context, linkID string) (*PollResult, error) {
	p, err := s.GetByLinkID(ctx, linkID)
	if err != nil {
		return nil, err
	}
	if p.ExternalPaymentID == "" {
		return nil, &Error{
			Code:    CodeGatewayError,
			Message: "payment has no gateway transaction to poll",
		}
	}

	result, err := s.gateway.StatusTransaction(ctx, p.ExternalPaymentID)
	if err != nil {
		return nil, gatewayError(err)
	}

	rawStatus := statusField.apply(result.Raw)
	internalStatus := NormalizeWebhookStatus(rawStatus)

	previous := p.Status
	if previous != internalStatus {
		blob := payment.JSON{
			"raw_payload":             result.Raw,
			"external_transaction_id": p.ExternalPaymentID,
			"gateway_status":          rawStatus,
			"processed_at":            time.Now().Format(time.RFC3339),
		}
		if _, err := s.UpdateStatus(ctx, linkID, internalStatus, blob); err != nil {
			return nil, err
		}
	}

	return &PollResult{
		PaymentID:      p.ID,
		TransactionID:  p.ExternalPaymentID,
		GatewayStatus:  rawStatus,
		PreviousStatus: previous,
		Status:         internalStatus,
	}, nil
}
