package repositories

import (
	"context"

	"paylink/app/models/webhooklog"

	"gorm.io/gorm"
)

// WebhookLogRepository persists the webhook audit trail.
type WebhookLogRepository struct {
	db *gorm.DB
}

// NewWebhookLogRepository builds a repository on the given handle.
func NewWebhookLogRepository(db *gorm.DB) *WebhookLogRepository {
	return &WebhookLogRepository{db: db}
}

// Create appends one audit row.
func (r *WebhookLogRepository) Create(ctx context.Context, log *webhooklog.WebhookLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// RecentByPayment lists the newest audit rows for a payment.
func (r *WebhookLogRepository) RecentByPayment(ctx context.Context, paymentID uint64, limit int) ([]webhooklog.WebhookLog, error) {
	var logs []webhooklog.WebhookLog
	err := r.db.WithContext(ctx).
		Where("payment_id = ?", paymentID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

// CountByStatus counts audit rows with the given outcome.
func (r *WebhookLogRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&webhooklog.WebhookLog{}).
		Where("status = ?", status).
		Count(&n).Error
	return n, err
}
