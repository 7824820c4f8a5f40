package payment

import (
	"time"

	"paylink/app/models"

	"github.com/shopspring/decimal"
)

// Payment is a payment-link record. The shareable link id, not the numeric
// primary key, identifies it to the outside world.
type Payment struct {
	ID            uint64          `gorm:"primaryKey;autoIncrement" json:"id"`
	PaymentLinkID string          `gorm:"type:varchar(36);uniqueIndex" json:"payment_link_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount"`
	Currency      string          `gorm:"type:varchar(8)" json:"currency"`
	PhoneNumber   string          `gorm:"type:varchar(20);index" json:"phone_number"`
	CustomerName  string          `gorm:"type:varchar(100)" json:"customer_name"`
	CustomerEmail string          `gorm:"type:varchar(100)" json:"customer_email"`
	Description   string          `gorm:"type:text" json:"description"`
	ReturnURL     string          `gorm:"type:text" json:"return_url"`
	Status        string          `gorm:"type:varchar(20);index" json:"status"`

	PaymentReference  string `gorm:"type:varchar(64)" json:"payment_reference"`
	ExternalPaymentID string `gorm:"type:varchar(64);index" json:"external_payment_id"`
	PaymentMethod     string `gorm:"type:varchar(30)" json:"payment_method"`

	// last raw gateway response or webhook payload attached to this payment
	GatewayResponse JSON `gorm:"type:json" json:"gateway_response"`

	PaidAt *time.Time `json:"paid_at"`

	models.CommonTimestampsField
}

// TableName specifies the table name.
func (Payment) TableName() string {
	return "payments"
}
