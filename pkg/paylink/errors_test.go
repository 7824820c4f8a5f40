package paylink

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := gatewayError(cause)

	assert.ErrorIs(t, err, ErrGateway)
	assert.NotErrorIs(t, err, ErrPaymentNotFound)
	assert.ErrorIs(t, err, cause)

	// wrapping preserves the match
	wrapped := fmt.Errorf("processing: %w", err)
	assert.ErrorIs(t, wrapped, ErrGateway)
}

func TestErrorStringCarriesCode(t *testing.T) {
	err := paymentNotFoundError("abc-123")
	assert.Contains(t, err.Error(), CodePaymentNotFound)
	assert.Contains(t, err.Error(), "abc-123")

	var svcErr *Error
	assert.True(t, errors.As(err, &svcErr))
	assert.Equal(t, CodePaymentNotFound, svcErr.Code)
}
