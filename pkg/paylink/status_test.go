package paylink

import (
	"context"
	"testing"

	"paylink/app/models/payment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateStatusStampsPaidAt(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	link, err := svc.GenerateLink(ctx, GenerateLinkInput{
		Amount:      decimal.NewFromInt(500),
		Description: "Airtime",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, link.LinkID, payment.StatusCompleted, nil)
	require.NoError(t, err)

	assert.Equal(t, payment.StatusCompleted, updated.Status)
	require.NotNil(t, updated.PaidAt)

	// non-completed transitions do not touch paid_at
	updated, err = svc.UpdateStatus(ctx, link.LinkID, payment.StatusFailed, nil)
	require.NoError(t, err)
	assert.Equal(t, payment.StatusFailed, updated.Status)
}

func TestUpdateStatusCapturesExternalID(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	link, err := svc.GenerateLink(ctx, GenerateLinkInput{
		Amount:      decimal.NewFromInt(500),
		Description: "Airtime",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, link.LinkID, payment.StatusProcessing, payment.JSON{
		"tranid": "pay_abc",
		"status": "initiated",
	})
	require.NoError(t, err)

	assert.Equal(t, "pay_abc", updated.ExternalPaymentID)
	assert.Equal(t, "initiated", updated.GatewayResponse["status"])
}

func TestUpdateStatusWithoutBlobKeepsGatewayResponse(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	link, err := svc.GenerateLink(ctx, GenerateLinkInput{
		Amount:      decimal.NewFromInt(500),
		Description: "Airtime",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, link.LinkID, payment.StatusProcessing, payment.JSON{"tranid": "pay_keep"})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, link.LinkID, payment.StatusCompleted, nil)
	require.NoError(t, err)
	assert.Equal(t, "pay_keep", updated.GatewayResponse["tranid"])
	assert.Equal(t, "pay_keep", updated.ExternalPaymentID)
}

func TestUpdateStatusUnknownLink(t *testing.T) {
	svc, _ := newTestService(t, nil)

	_, err := svc.UpdateStatus(context.Background(), "no-such-link", payment.StatusCompleted, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}
