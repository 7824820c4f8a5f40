package paylink

import (
	"context"
	"errors"
	"time"

	"paylink/app/models/payment"
	"paylink/app/models/webhooklog"
	"paylink/pkg/logger"

	"gorm.io/gorm"
)

// phoneMatchWindow bounds the phone-number fallback lookup: only payments
// created within the last hour are candidates.
const phoneMatchWindow = time.Hour

// webhookStatusMap translates the gateway's status vocabulary into ours.
// Unknown values fall back to pending.
var webhookStatusMap = map[string]string{
	"success":    payment.StatusCompleted,
	"successful": payment.StatusCompleted,
	"completed":  payment.StatusCompleted,
	"paid":       payment.StatusCompleted,

	"failed":    payment.StatusFailed,
	"error":     payment.StatusFailed,
	"cancelled": payment.StatusFailed,
	"canceled":  payment.StatusFailed,

	"pending":    payment.StatusProcessing,
	"processing": payment.StatusProcessing,
	"initiated":  payment.StatusProcessing,
}

// NormalizeWebhookStatus maps a raw (lower-cased) gateway status onto the
// internal vocabulary, defaulting to pending for anything unrecognized.
func NormalizeWebhookStatus(raw string) string {
	if internal, ok := webhookStatusMap[raw]; ok {
		return internal
	}
	if raw != "" {
		logger.WarnString("Reconciler", "UnknownStatus", raw)
	}
	return payment.StatusPending
}

// ReconcileResult is the reconciler's typed outcome. An unmatched webhook is
// a normal result, not an error.
type ReconcileResult struct {
	Success        bool                   `json:"success"`
	Message        string                 `json:"message"`
	PaymentID      uint64                 `json:"payment_id,omitempty"`
	PreviousStatus string                 `json:"previous_status,omitempty"`
	NewStatus      string                 `json:"new_status,omitempty"`
	TransactionID  string                 `json:"transaction_id,omitempty"`
	ReceivedData   map[string]interface{} `json:"received_data,omitempty"`
}

// Reconcile merges one inbound gateway notification into payment state.
//
// The payload shape is heterogeneous, so every field is extracted through
// ordered key fallbacks; the payment is located by gateway transaction id
// first, then by the most recent payment for the notifying phone number.
// Every delivery leaves exactly one audit row whether it matched,
// went unmatched, or failed.
func (s *Service) Reconcile(ctx context.Context, raw map[string]interface{}) (*ReconcileResult, error) {
	transactionID := transactionIDField.apply(raw)
	rawStatus := statusField.apply(raw)
	phone := phoneField.apply(raw)
	amount, hasAmount := extractAmount(raw)

	internalStatus := NormalizeWebhookStatus(rawStatus)

	matched, err := s.locatePayment(ctx, transactionID, phone)
	if err != nil {
		s.auditError(ctx, nil, raw, err)
		return nil, storageError(err)
	}

	if matched == nil {
		received := map[string]interface{}{
			"transaction_id": transactionID,
			"phone_number":   phone,
			"status":         rawStatus,
		}
		if hasAmount {
			received["amount"] = amount
		}
		s.audit(ctx, &webhooklog.WebhookLog{
			WebhookData: webhooklog.JSON(raw),
			Status:      webhooklog.StatusNoMatchingPayment,
		})
		return &ReconcileResult{
			Success:      false,
			Message:      "No matching payment found",
			ReceivedData: received,
		}, nil
	}

	previousStatus := matched.Status
	newStatus := previousStatus

	if previousStatus != internalStatus {
		if matched.IsTerminal() {
			logger.WarnString("Reconciler", "TerminalReentry",
				"payment "+matched.PaymentLinkID+" leaves "+previousStatus+" for "+internalStatus)
		}
		blob := payment.JSON{
			"raw_payload":             raw,
			"external_transaction_id": transactionID,
			"gateway_status":          rawStatus,
			"processed_at":            time.Now().Format(time.RFC3339),
		}
		if _, err := s.UpdateStatus(ctx, matched.PaymentLinkID, internalStatus, blob); err != nil {
			s.auditError(ctx, &matched.ID, raw, err)
			return nil, err
		}
		newStatus = internalStatus
	}
	// same status: idempotent no-op on the payment, the audit row below is
	// still written

	s.audit(ctx, &webhooklog.WebhookLog{
		PaymentID:   &matched.ID,
		WebhookData: webhooklog.JSON(raw),
		Status:      webhooklog.StatusProcessed,
	})

	return &ReconcileResult{
		Success:        true,
		Message:        "Webhook processed successfully",
		PaymentID:      matched.ID,
		PreviousStatus: previousStatus,
		NewStatus:      newStatus,
		TransactionID:  transactionID,
	}, nil
}

// locatePayment tries the lookup chain: exact gateway transaction id, then
// newest payment for the phone number inside the match window. A nil
// payment with nil error means unmatched.
func (s *Service) locatePayment(ctx context.Context, transactionID, phone string) (*payment.Payment, error) {
	if transactionID != "" {
		p, err := s.payments.GetByExternalID(ctx, transactionID)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if phone != "" {
		p, err := s.payments.GetLatestByPhoneSince(ctx, phone, time.Now().Add(-phoneMatchWindow))
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	return nil, nil
}

// audit writes one webhook log row; failures are logged and swallowed so
// the audit path never masks the primary outcome.
func (s *Service) audit(ctx context.Context, row *webhooklog.WebhookLog) {
	if err := s.logs.Create(ctx, row); err != nil {
		logger.ErrorString("Reconciler", "Audit", err.Error())
	}
}

// auditError records a failed delivery before the error propagates.
func (s *Service) auditError(ctx context.Context, paymentID *uint64, raw map[string]interface{}, cause error) {
	s.audit(ctx, &webhooklog.WebhookLog{
		PaymentID:    paymentID,
		WebhookData:  webhooklog.JSON(raw),
		Status:       webhooklog.StatusError,
		ErrorMessage: cause.Error(),
	})
}
