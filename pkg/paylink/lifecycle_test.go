package paylink

import (
	"context"
	"testing"

	"paylink/app/models/payment"
	"paylink/app/models/webhooklog"
	"paylink/pkg/gateway"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Full happy path: link generation, gateway dispatch, then the asynchronous
// webhook that settles the payment.
func TestPaymentLifecycle(t *testing.T) {
	gw := &stubGateway{
		createFn: func(ctx context.Context, req gateway.CreateTransactionRequest) (*gateway.TransactionResult, error) {
			return &gateway.TransactionResult{
				TransactionID: "pay_test123",
				Status:        "pending",
				Message:       "Confirm on your handset",
				Raw: map[string]interface{}{
					"tranid": "pay_test123",
					"status": "pending",
				},
			}, nil
		},
	}
	svc, _ := newTestService(t, gw)
	ctx := context.Background()

	link, err := svc.GenerateLink(ctx, GenerateLinkInput{
		Amount:      decimal.NewFromInt(1000),
		Description: "Test",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/pay/"+link.LinkID, link.ShareableURL)
	assert.Equal(t, payment.StatusPending, link.Payment.Status)
	assert.Equal(t, "TZS", link.Payment.Currency)

	processed, err := svc.Process(ctx, ProcessInput{
		LinkID:      link.LinkID,
		Amount:      decimal.NewFromInt(1000),
		PhoneNumber: "0712345678",
	})
	require.NoError(t, err)
	assert.Equal(t, "pay_test123", processed.GatewayTransactionID)
	assert.Equal(t, payment.StatusProcessing, processed.Status)
	assert.Equal(t, "Confirm on your handset", processed.Instructions)

	inFlight, err := svc.GetByLinkID(ctx, link.LinkID)
	require.NoError(t, err)
	assert.Equal(t, payment.StatusProcessing, inFlight.Status)
	assert.Equal(t, "pay_test123", inFlight.ExternalPaymentID)
	assert.Nil(t, inFlight.PaidAt)

	// the gateway notifies asynchronously, in its own field vocabulary
	result, err := svc.Reconcile(ctx, map[string]interface{}{
		"tranid": "pay_test123",
		"status": "success",
		"amount": 1000,
		"number": "712345678",
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, payment.StatusProcessing, result.PreviousStatus)
	assert.Equal(t, payment.StatusCompleted, result.NewStatus)

	settled, err := svc.GetByLinkID(ctx, link.LinkID)
	require.NoError(t, err)
	assert.True(t, settled.IsCompleted())
	assert.True(t, settled.IsTerminal())
	require.NotNil(t, settled.PaidAt)
	assert.Equal(t, "pay_test123", settled.ExternalPaymentID)

	logs, err := svc.WebhookLogs().RecentByPayment(ctx, settled.ID, 10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, webhooklog.StatusProcessed, logs[0].Status)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.CompletedPayments)
	assert.True(t, stats.TotalAmount.Equal(decimal.NewFromInt(1000)))
}
