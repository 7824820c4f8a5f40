package paylink

import (
	"context"
	"time"

	"paylink/app/models/payment"
)

// UpdateStatus is the shared partial-update primitive used by processing,
// reconciliation and the legacy callback path. It always refreshes
// updated_at, stamps paid_at on the transition into completed, and captures
// the gateway transaction id when the blob carries one.
func (s *Service) UpdateStatus(ctx context.Context, linkID, newStatus string, blob payment.JSON) (*payment.Payment, error) {
	values := map[string]interface{}{
		"status":     newStatus,
		"updated_at": time.Now(),
	}

	if blob != nil {
		values["gateway_response"] = blob
		if externalID := externalIDField.apply(blob); externalID != "" {
			values["external_payment_id"] = externalID
		}
	}

	if newStatus == payment.StatusCompleted {
		values["paid_at"] = time.Now()
	}

	rows, err := s.payments.UpdateByLinkID(ctx, linkID, values)
	if err != nil {
		return nil, storageError(err)
	}
	if rows == 0 {
		return nil, paymentNotFoundError(linkID)
	}

	updated, err := s.payments.GetByLinkID(ctx, linkID)
	if err != nil {
		return nil, storageError(err)
	}
	return updated, nil
}
