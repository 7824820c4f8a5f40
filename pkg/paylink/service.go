// Package paylink implements the payment-link lifecycle: link generation,
// gateway dispatch, webhook reconciliation, and the stats rollup.
package paylink

import (
	"context"
	"strings"

	"paylink/app/repositories"
	"paylink/pkg/gateway"

	"gorm.io/gorm"
)

// Gateway is the outbound surface of the mobile-money provider, satisfied by
// pkg/gateway.Client. Tests substitute a stub.
type Gateway interface {
	CreateTransaction(ctx context.Context, req gateway.CreateTransactionRequest) (*gateway.TransactionResult, error)
	StatusTransaction(ctx context.Context, tranID string) (*gateway.TransactionResult, error)
}

// Service is the payment-link service. It is constructed once at startup
// with its storage and gateway handles injected, and threaded through
// request handling.
type Service struct {
	payments *repositories.PaymentRepository
	logs     *repositories.WebhookLogRepository
	gateway  Gateway
	baseURL  string
}

// NewService builds the service on a database handle and gateway client.
// baseURL is the public origin shareable links are built from.
func NewService(db *gorm.DB, gw Gateway, baseURL string) *Service {
	return &Service{
		payments: repositories.NewPaymentRepository(db),
		logs:     repositories.NewWebhookLogRepository(db),
		gateway:  gw,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
	}
}

// Payments exposes the payment repository for read-side handlers.
func (s *Service) Payments() *repositories.PaymentRepository {
	return s.payments
}

// WebhookLogs exposes the audit repository.
func (s *Service) WebhookLogs() *repositories.WebhookLogRepository {
	return s.logs
}
