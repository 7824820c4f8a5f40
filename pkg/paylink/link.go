package paylink

import (
	"context"
	"errors"
	"fmt"

	"paylink/app/models/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GenerateLinkInput carries the merchant-facing link parameters. Amount and
// Description are validated at the HTTP boundary.
type GenerateLinkInput struct {
	Amount        decimal.Decimal
	Currency      string
	Description   string
	CustomerName  string
	CustomerEmail string
	ReturnURL     string
}

// LinkResult is the outcome of link generation.
type LinkResult struct {
	LinkID       string           `json:"link_id"`
	ShareableURL string           `json:"shareable_url"`
	Payment      *payment.Payment `json:"payment"`
}

// GenerateLink mints a fresh random link identifier and persists the
// pending payment record. The identifier is never derived from the input,
// so identical calls produce distinct links. The store's uniqueness
// constraint is the authoritative collision guard; on the (negligible)
// chance it rejects, the caller retries with a fresh token.
func (s *Service) GenerateLink(ctx context.Context, input GenerateLinkInput) (*LinkResult, error) {
	linkID := uuid.NewString()

	currency := input.Currency
	if currency == "" {
		currency = payment.DefaultCurrency
	}

	p := &payment.Payment{
		PaymentLinkID: linkID,
		Amount:        input.Amount,
		Currency:      currency,
		Description:   input.Description,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		ReturnURL:     input.ReturnURL,
		Status:        payment.StatusPending,
	}

	if err := s.payments.Create(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, duplicateLinkError(err)
		}
		return nil, storageError(err)
	}

	return &LinkResult{
		LinkID:       linkID,
		ShareableURL: fmt.Sprintf("%s/pay/%s", s.baseURL, linkID),
		Payment:      p,
	}, nil
}

// GetByLinkID fetches a payment by its link identifier.
func (s *Service) GetByLinkID(ctx context.Context, linkID string) (*payment.Payment, error) {
	p, err := s.payments.GetByLinkID(ctx, linkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, paymentNotFoundError(linkID)
		}
		return nil, storageError(err)
	}
	return p, nil
}
