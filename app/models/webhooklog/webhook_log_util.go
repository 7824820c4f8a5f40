package webhooklog

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// Audit outcomes.
const (
	StatusProcessed         = "processed"
	StatusError             = "error"
	StatusNoMatchingPayment = "no_matching_payment"
)

// JSON stores the raw inbound payload in a json column.
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
