package paylink

import (
	"context"
	"testing"

	"paylink/app/models/payment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsEmpty(t *testing.T) {
	svc, _ := newTestService(t, nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), stats.TotalPayments)
	assert.True(t, stats.TotalAmount.IsZero())
}

func TestStatsSumsCompletedOnly(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	mint := func(amount int64, status string) {
		link, err := svc.GenerateLink(ctx, GenerateLinkInput{
			Amount:      decimal.NewFromInt(amount),
			Description: "Test",
		})
		require.NoError(t, err)
		if status != payment.StatusPending {
			_, err = svc.UpdateStatus(ctx, link.LinkID, status, nil)
			require.NoError(t, err)
		}
	}

	mint(1000, payment.StatusCompleted)
	mint(2500, payment.StatusCompleted)
	mint(400, payment.StatusPending)
	mint(900, payment.StatusFailed)
	mint(50, payment.StatusProcessing)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(5), stats.TotalPayments)
	assert.Equal(t, int64(2), stats.CompletedPayments)
	assert.Equal(t, int64(1), stats.PendingPayments)
	assert.Equal(t, int64(1), stats.FailedPayments)
	// only completed payments count towards the revenue total
	assert.True(t, stats.TotalAmount.Equal(decimal.NewFromInt(3500)),
		"total %s", stats.TotalAmount)
}
