package paylink

import (
	"context"
	"testing"

	"paylink/app/models/payment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleCallbackStatusMapping(t *testing.T) {
	tests := []struct {
		callback string
		want     string
	}{
		{"success", payment.StatusCompleted},
		{"completed", payment.StatusCompleted},
		{"failed", payment.StatusFailed},
		{"cancelled", payment.StatusCancelled},
		// anything unrecognized lands on processing, unlike the webhook path
		{"initiated", payment.StatusProcessing},
		{"garbage", payment.StatusProcessing},
	}

	for _, tt := range tests {
		t.Run(tt.callback, func(t *testing.T) {
			svc, _ := newTestService(t, nil)
			ctx := context.Background()

			link, err := svc.GenerateLink(ctx, GenerateLinkInput{
				Amount:      decimal.NewFromInt(750),
				Description: "Bundle",
			})
			require.NoError(t, err)

			err = svc.HandleCallback(ctx, CallbackInput{
				PaymentReference: link.LinkID,
				Status:           tt.callback,
			})
			require.NoError(t, err)

			updated, err := svc.GetByLinkID(ctx, link.LinkID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, updated.Status)
		})
	}
}

func TestHandleCallbackUnknownReference(t *testing.T) {
	svc, _ := newTestService(t, nil)

	err := svc.HandleCallback(context.Background(), CallbackInput{
		PaymentReference: "missing-ref",
		Status:           "success",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}
