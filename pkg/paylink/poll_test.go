package paylink

import (
	"context"
	"errors"
	"testing"

	"paylink/app/models/payment"
	"paylink/pkg/gateway"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollGatewayStatusTransitions(t *testing.T) {
	gw := &stubGateway{}
	svc, _ := newTestService(t, gw)
	ctx := context.Background()
	p := seedProcessingPayment(t, svc, "pay_poll", "")

	gw.statusFn = func(ctx context.Context, tranID string) (*gateway.TransactionResult, error) {
		return &gateway.TransactionResult{
			TransactionID: tranID,
			Status:        "success",
			Raw:           map[string]interface{}{"tranid": tranID, "status": "success"},
		}, nil
	}

	result, err := svc.PollGatewayStatus(ctx, p.PaymentLinkID)
	require.NoError(t, err)

	assert.Equal(t, p.ID, result.PaymentID)
	assert.Equal(t, "pay_poll", result.TransactionID)
	assert.Equal(t, "success", result.GatewayStatus)
	assert.Equal(t, payment.StatusProcessing, result.PreviousStatus)
	assert.Equal(t, payment.StatusCompleted, result.Status)

	updated, err := svc.GetByLinkID(ctx, p.PaymentLinkID)
	require.NoError(t, err)
	assert.Equal(t, payment.StatusCompleted, updated.Status)
	assert.NotNil(t, updated.PaidAt)
}

func TestPollGatewayStatusNoChange(t *testing.T) {
	gw := &stubGateway{}
	svc, _ := newTestService(t, gw)
	ctx := context.Background()
	p := seedProcessingPayment(t, svc, "pay_same", "")

	gw.statusFn = func(ctx context.Context, tranID string) (*gateway.TransactionResult, error) {
		return &gateway.TransactionResult{
			TransactionID: tranID,
			Status:        "pending",
			Raw:           map[string]interface{}{"tranid": tranID, "status": "pending"},
		}, nil
	}

	result, err := svc.PollGatewayStatus(ctx, p.PaymentLinkID)
	require.NoError(t, err)
	// pending from the gateway maps to processing, which the payment already
	// is, so no write happens
	assert.Equal(t, payment.StatusProcessing, result.Status)

	updated, err := svc.GetByLinkID(ctx, p.PaymentLinkID)
	require.NoError(t, err)
	assert.Equal(t, payment.StatusProcessing, updated.Status)
}

func TestPollGatewayStatusWithoutTransaction(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	link, err := svc.GenerateLink(ctx, GenerateLinkInput{
		Amount:      decimal.NewFromInt(1000),
		Description: "Test",
	})
	require.NoError(t, err)

	_, err = svc.PollGatewayStatus(ctx, link.LinkID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGateway)
}

func TestPollGatewayStatusGatewayDown(t *testing.T) {
	gw := &stubGateway{}
	svc, _ := newTestService(t, gw)
	ctx := context.Background()
	p := seedProcessingPayment(t, svc, "pay_down", "")

	gw.statusFn = func(ctx context.Context, tranID string) (*gateway.TransactionResult, error) {
		return nil, errors.New("connection refused")
	}

	_, err := svc.PollGatewayStatus(ctx, p.PaymentLinkID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGateway)
}
