package payment

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// Status values a payment moves through. The intended path is
// pending → processing → completed/failed/cancelled; storage does not
// enforce it.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
	StatusCancelled  = "cancelled"
)

// DefaultCurrency applies when a link is created without one.
const DefaultCurrency = "TZS"

// JSON stores a free-form object in a json column.
type JSON map[string]interface{}

// Value implements driver.Valuer.
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements sql.Scanner.
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = make(JSON)
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("invalid scan source for JSON column")
	}
	return json.Unmarshal(bytes, j)
}

// IsTerminal reports whether the payment reached a final state.
func (p *Payment) IsTerminal() bool {
	return p.Status == StatusCompleted || p.Status == StatusFailed || p.Status == StatusCancelled
}

// IsCompleted reports whether the payment succeeded.
func (p *Payment) IsCompleted() bool {
	return p.Status == StatusCompleted
}

// IsPending reports whether the payment awaits processing.
func (p *Payment) IsPending() bool {
	return p.Status == StatusPending
}
