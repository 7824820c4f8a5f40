package requests

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"
)

// CreateLinkRequest is the body for creating a payment link. The valid tag
// names the rule key each field resolves to.
type CreateLinkRequest struct {
	Amount        float64 `json:"amount" valid:"amount"`
	Currency      string  `json:"currency" valid:"currency"`
	Description   string  `json:"description" valid:"description"`
	CustomerName  string  `json:"customer_name" valid:"customer_name"`
	CustomerEmail string  `json:"customer_email" valid:"customer_email"`
	ReturnURL     string  `json:"return_url" valid:"return_url"`
}

// ValidateCreateLink binds and validates a link-creation request.
func ValidateCreateLink(c *gin.Context) (*CreateLinkRequest, error) {
	rules := govalidator.MapData{
		"amount":         []string{"required"},
		"description":    []string{"required", "min:1"},
		"customer_email": []string{"email"},
	}

	messages := govalidator.MapData{
		"amount": []string{
			"required:amount is required",
		},
		"description": []string{
			"required:description is required",
			"min:description must not be empty",
		},
		"customer_email": []string{
			"email:customer_email must be a valid email address",
		},
	}

	req, err := ValidateRequest[CreateLinkRequest](c, rules, messages)
	if err != nil {
		return nil, err
	}

	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be greater than 0")
	}

	return &req, nil
}

// ProcessPaymentRequest is the body for dispatching a link to the gateway.
type ProcessPaymentRequest struct {
	Amount       float64 `json:"amount" valid:"amount"`
	Currency     string  `json:"currency" valid:"currency"`
	PhoneNumber  string  `json:"phone_number" valid:"phone_number"`
	Description  string  `json:"description" valid:"description"`
	CustomerName string  `json:"customer_name" valid:"customer_name"`
}

// ValidateProcessPayment binds and validates a processing request.
func ValidateProcessPayment(c *gin.Context) (*ProcessPaymentRequest, error) {
	rules := govalidator.MapData{
		"amount":       []string{"required"},
		"phone_number": []string{"required"},
	}

	messages := govalidator.MapData{
		"amount": []string{
			"required:amount is required",
		},
		"phone_number": []string{
			"required:phone_number is required",
		},
	}

	req, err := ValidateRequest[ProcessPaymentRequest](c, rules, messages)
	if err != nil {
		return nil, err
	}

	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be greater than 0")
	}

	return &req, nil
}
