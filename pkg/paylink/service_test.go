package paylink

import (
	"context"
	"fmt"
	"testing"

	"paylink/app/models/payment"
	"paylink/app/models/webhooklog"
	"paylink/pkg/gateway"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// stubGateway lets tests script the gateway's behavior.
type stubGateway struct {
	createFn func(ctx context.Context, req gateway.CreateTransactionRequest) (*gateway.TransactionResult, error)
	statusFn func(ctx context.Context, tranID string) (*gateway.TransactionResult, error)

	lastCreate *gateway.CreateTransactionRequest
}

func (s *stubGateway) CreateTransaction(ctx context.Context, req gateway.CreateTransactionRequest) (*gateway.TransactionResult, error) {
	s.lastCreate = &req
	if s.createFn != nil {
		return s.createFn(ctx, req)
	}
	return &gateway.TransactionResult{
		TransactionID: "tx_default",
		Status:        "pending",
		Raw:           map[string]interface{}{"tranid": "tx_default", "status": "pending"},
	}, nil
}

func (s *stubGateway) StatusTransaction(ctx context.Context, tranID string) (*gateway.TransactionResult, error) {
	if s.statusFn != nil {
		return s.statusFn(ctx, tranID)
	}
	return &gateway.TransactionResult{
		TransactionID: tranID,
		Status:        "pending",
		Raw:           map[string]interface{}{"tranid": tranID, "status": "pending"},
	}, nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// named shared in-memory database so the pool's connections all see the
	// same data
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&payment.Payment{}, &webhooklog.WebhookLog{}))
	return db
}

func newTestService(t *testing.T, gw Gateway) (*Service, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	if gw == nil {
		gw = &stubGateway{}
	}
	return NewService(db, gw, "https://pay.example.com"), db
}
