// Package webhooklog holds the audit record written for every inbound
// gateway notification, matched or not.
package webhooklog

import (
	"time"
)

// WebhookLog is one row per delivery attempt. PaymentID stays nil when the
// notification could not be correlated with a payment.
type WebhookLog struct {
	ID          uint64  `gorm:"primaryKey;autoIncrement" json:"id"`
	PaymentID   *uint64 `gorm:"index" json:"payment_id"`
	WebhookData JSON    `gorm:"type:json" json:"webhook_data"`

	// processed | error | no_matching_payment
	Status       string `gorm:"type:varchar(30);index" json:"status"`
	ErrorMessage string `gorm:"type:text" json:"error_message"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName specifies the table name.
func (WebhookLog) TableName() string {
	return "webhook_logs"
}
