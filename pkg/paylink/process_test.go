package paylink

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"paylink/app/models/payment"
	"paylink/pkg/gateway"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLocalPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"255712345678", "712345678"},
		{"0712345678", "0712345678"},
		{"712345678", "712345678"},
		{"255", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeLocalPhone(tt.in), "input %q", tt.in)
	}
}

func TestWholeUnits(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"1000", 1000},
		{"1000.4", 1000},
		{"1000.5", 1001},
		{"999.99", 1000},
	}

	for _, tt := range tests {
		d, err := decimal.NewFromString(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, WholeUnits(d), "input %s", tt.in)
	}
}

func TestProcessSuccess(t *testing.T) {
	gw := &stubGateway{
		createFn: func(ctx context.Context, req gateway.CreateTransactionRequest) (*gateway.TransactionResult, error) {
			return &gateway.TransactionResult{
				TransactionID: "pay_test123",
				Status:        "pending",
				Message:       "Transaction initiated",
				Raw: map[string]interface{}{
					"tranid":  "pay_test123",
					"status":  "pending",
					"message": "Transaction initiated",
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

	result, err := svc.Process(ctx, ProcessInput{
		LinkID:       link.LinkID,
		Amount:       decimal.NewFromInt(1000),
		PhoneNumber:  "255712345678",
		CustomerName: "Asha",
	})
	require.NoError(t, err)

	assert.Equal(t, "pay_test123", result.GatewayTransactionID)
	assert.Equal(t, payment.StatusProcessing, result.Status)
	assert.Equal(t, "Transaction initiated", result.Instructions)

	// the gateway got the local-format number and a whole-unit amount
	require.NotNil(t, gw.lastCreate)
	assert.Equal(t, "712345678", gw.lastCreate.Number)
	assert.Equal(t, int64(1000), gw.lastCreate.Amount)

	updated, err := svc.GetByLinkID(ctx, link.LinkID)
	require.NoError(t, err)
	assert.Equal(t, payment.StatusProcessing, updated.Status)
	assert.Equal(t, "pay_test123", updated.ExternalPaymentID)
	assert.Equal(t, "255712345678", updated.PhoneNumber)
	assert.Equal(t, "pending", updated.GatewayResponse["status"])
}

func TestProcessPassesLocalPhoneUnchanged(t *testing.T) {
	gw := &stubGateway{}
	svc, _ := newTestService(t, gw)
	ctx := context.Background()

	link, err := svc.GenerateLink(ctx, GenerateLinkInput{
		Amount:      decimal.NewFromInt(500),
		Description: "Test",
	})
	require.NoError(t, err)

	_, err = svc.Process(ctx, ProcessInput{
		LinkID:      link.LinkID,
		Amount:      decimal.NewFromInt(500),
		PhoneNumber: "0712345678",
	})
	require.NoError(t, err)

	require.NotNil(t, gw.lastCreate)
	assert.Equal(t, "0712345678", gw.lastCreate.Number)
}

func TestProcessGatewayFailureMarksPaymentFailed(t *testing.T) {
	gw := &stubGateway{
		createFn: func(ctx context.Context, req gateway.CreateTransactionRequest) (*gateway.TransactionResult, error) {
			return nil, fmt.Errorf("gateway returned status 502: upstream unavailable")
		},
	}
	svc, _ := newTestService(t, gw)
	ctx := context.Background()

	link, err := svc.GenerateLink(ctx, GenerateLinkInput{
		Amount:      decimal.NewFromInt(1000),
		Description: "Test",
	})
	require.NoError(t, err)

	_, err = svc.Process(ctx, ProcessInput{
		LinkID:      link.LinkID,
		Amount:      decimal.NewFromInt(1000),
		PhoneNumber: "0712345678",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGateway))

	// the failure is recorded durably even if the caller ignores the error
	updated, getErr := svc.GetByLinkID(ctx, link.LinkID)
	require.NoError(t, getErr)
	assert.Equal(t, payment.StatusFailed, updated.Status)
	assert.Contains(t, updated.GatewayResponse["error"], "upstream unavailable")
}

func TestProcessUnknownLink(t *testing.T) {
	svc, _ := newTestService(t, nil)

	_, err := svc.Process(context.Background(), ProcessInput{
		LinkID:      "missing-link",
		Amount:      decimal.NewFromInt(100),
		PhoneNumber: "0712345678",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPaymentNotFound))
}
