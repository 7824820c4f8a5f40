package migrations

import (
	"paylink/app/models/payment"
	"paylink/app/models/webhooklog"
)

// RegisterTables returns the models migrated at startup.
func RegisterTables() []interface{} {
	return []interface{}{
		&payment.Payment{},
		&webhooklog.WebhookLog{},
	}
}
