package paylink

import (
	"context"
	"strings"

	"paylink/app/models/payment"
	"paylink/pkg/gateway"
	"paylink/pkg/logger"

	"github.com/shopspring/decimal"
)

// tzCallingCode is the country calling-code prefix the gateway does not
// accept; it expects local-format numbers.
const tzCallingCode = "255"

// ProcessInput triggers the gateway charge for an existing link.
type ProcessInput struct {
	LinkID       string
	Amount       decimal.Decimal
	Currency     string
	PhoneNumber  string
	Description  string
	CustomerName string
}

// ProcessResult reports the gateway dispatch outcome.
type ProcessResult struct {
	GatewayTransactionID string `json:"gateway_transaction_id"`
	Status               string `json:"status"`
	Instructions         string `json:"instructions"`
}

// NormalizeLocalPhone strips the "255" calling-code prefix when present,
// yielding the local-format number the gateway expects. Anything else
// passes through unchanged; format validation happens upstream.
func NormalizeLocalPhone(phone string) string {
	if strings.HasPrefix(phone, tzCallingCode) {
		return phone[len(tzCallingCode):]
	}
	return phone
}

// WholeUnits rounds an amount to the nearest whole unit. The gateway does
// not accept fractional amounts.
func WholeUnits(amount decimal.Decimal) int64 {
	return amount.Round(0).IntPart()
}

// Process dispatches the payment to the gateway and moves the payment to
// processing, or to failed when the call does not succeed. Not idempotent
// at the gateway level: a second call may create a second gateway
// transaction.
func (s *Service) Process(ctx context.Context, input ProcessInput) (*ProcessResult, error) {
	// Record the customer contact before dispatch so a racing webhook can
	// correlate by phone number.
	rows, err := s.payments.UpdateByLinkID(ctx, input.LinkID, map[string]interface{}{
		"phone_number":   input.PhoneNumber,
		"customer_name":  input.CustomerName,
		"payment_method": "mobile_money",
	})
	if err != nil {
		return nil, storageError(err)
	}
	if rows == 0 {
		return nil, paymentNotFoundError(input.LinkID)
	}

	result, err := s.gateway.CreateTransaction(ctx, gateway.CreateTransactionRequest{
		Number: NormalizeLocalPhone(input.PhoneNumber),
		Amount: WholeUnits(input.Amount),
		Name:   input.CustomerName,
	})
	if err != nil {
		// record the failure durably before surfacing it
		if _, updErr := s.UpdateStatus(ctx, input.LinkID, payment.StatusFailed, payment.JSON{"error": err.Error()}); updErr != nil {
			logger.ErrorString("Paylink", "Process", "failed to mark payment failed: "+updErr.Error())
		}
		return nil, gatewayError(err)
	}

	if _, err := s.UpdateStatus(ctx, input.LinkID, payment.StatusProcessing, payment.JSON(result.Raw)); err != nil {
		return nil, err
	}

	instructions := result.Message
	if instructions == "" {
		instructions = "Payment request sent. Approve the prompt on your phone to complete the transaction."
	}

	return &ProcessResult{
		GatewayTransactionID: result.TransactionID,
		Status:               payment.StatusProcessing,
		Instructions:         instructions,
	}, nil
}
