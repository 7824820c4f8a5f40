// Package repositories contains the gorm data access layer.
package repositories

import (
	"context"
	"time"

	"paylink/app/models/payment"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentRepository persists payment records.
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository builds a repository on the given handle.
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create inserts a payment record.
func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// GetByLinkID fetches a payment by its shareable link identifier.
func (r *PaymentRepository) GetByLinkID(ctx context.Context, linkID string) (*payment.Payment, error) {
	var p payment.Payment
	err := r.db.WithContext(ctx).Where("payment_link_id = ?", linkID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByExternalID fetches a payment by the gateway-assigned transaction id.
func (r *PaymentRepository) GetByExternalID(ctx context.Context, externalID string) (*payment.Payment, error) {
	var p payment.Payment
	err := r.db.WithContext(ctx).Where("external_payment_id = ?", externalID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetLatestByPhoneSince fetches the newest payment for a phone number
// created after the cutoff.
func (r *PaymentRepository) GetLatestByPhoneSince(ctx context.Context, phone string, since time.Time) (*payment.Payment, error) {
	var p payment.Payment
	err := r.db.WithContext(ctx).
		Where("phone_number = ? AND created_at >= ?", phone, since).
		Order("created_at DESC").
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateByLinkID applies a partial update keyed by link id and reports how
// many rows changed.
func (r *PaymentRepository) UpdateByLinkID(ctx context.Context, linkID string, values map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&payment.Payment{}).
		Where("payment_link_id = ?", linkID).
		Updates(values)
	return result.RowsAffected, result.Error
}

// Stats is the aggregate rollup over payment state.
type Stats struct {
	TotalPayments     int64           `json:"total_payments"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	CompletedPayments int64           `json:"completed_payments"`
	PendingPayments   int64           `json:"pending_payments"`
	FailedPayments    int64           `json:"failed_payments"`
}

// GetStats reads the payment rollup. total_amount only sums completed
// payments.
func (r *PaymentRepository) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{TotalAmount: decimal.Zero}

	db := r.db.WithContext(ctx).Model(&payment.Payment{})
	if err := db.Count(&stats.TotalPayments).Error; err != nil {
		return nil, err
	}

	type statusCount struct {
		Status string
		N      int64
	}
	var counts []statusCount
	err := r.db.WithContext(ctx).Model(&payment.Payment{}).
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	for _, c := range counts {
		switch c.Status {
		case payment.StatusCompleted:
			stats.CompletedPayments = c.N
		case payment.StatusPending:
			stats.PendingPayments = c.N
		case payment.StatusFailed:
			stats.FailedPayments = c.N
		}
	}

	var total *string
	err = r.db.WithContext(ctx).Model(&payment.Payment{}).
		Where("status = ?", payment.StatusCompleted).
		Select("CAST(SUM(amount) AS TEXT)").
		Scan(&total).Error
	if err != nil {
		return nil, err
	}
	if total != nil {
		sum, err := decimal.NewFromString(*total)
		if err == nil {
			stats.TotalAmount = sum
		}
	}

	return stats, nil
}
