package requests

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonContext(t *testing.T, body string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/", bytes.NewReader([]byte(body)))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestValidateCreateLink(t *testing.T) {
	req, err := ValidateCreateLink(jsonContext(t, `{"amount":1000,"description":"Test"}`))
	require.NoError(t, err)
	assert.Equal(t, float64(1000), req.Amount)
	assert.Equal(t, "Test", req.Description)

	// optional fields bind and validate too
	req, err = ValidateCreateLink(jsonContext(t,
		`{"amount":1000,"description":"Test","customer_email":"asha@example.com","currency":"TZS"}`))
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", req.CustomerEmail)
}

func TestValidateCreateLinkRejections(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing amount", `{"description":"Test"}`},
		{"missing description", `{"amount":1000}`},
		{"non-positive amount", `{"amount":0,"description":"Test"}`},
		{"negative amount", `{"amount":-5,"description":"Test"}`},
		{"bad email", `{"amount":1000,"description":"Test","customer_email":"not-an-email"}`},
		{"not json", `amount=1000`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateCreateLink(jsonContext(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestValidateProcessPayment(t *testing.T) {
	req, err := ValidateProcessPayment(jsonContext(t, `{"amount":1000,"phone_number":"0712345678"}`))
	require.NoError(t, err)
	assert.Equal(t, "0712345678", req.PhoneNumber)

	_, err = ValidateProcessPayment(jsonContext(t, `{"amount":1000}`))
	assert.Error(t, err)

	_, err = ValidateProcessPayment(jsonContext(t, `{"phone_number":"0712345678"}`))
	assert.Error(t, err)
}
