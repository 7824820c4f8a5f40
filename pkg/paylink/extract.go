package paylink

import (
	"strings"

	"github.com/spf13/cast"
)

// Gateway webhook payloads are loosely specified: the same logical field
// arrives under different keys depending on provider version. Each logical
// field is an ordered list of candidate keys with an optional transform,
// applied first-success-wins.
type extractor struct {
	keys      []string
	transform func(string) string
}

var (
	transactionIDField = extractor{keys: []string{"tranid", "transaction_id", "id"}}
	statusField        = extractor{keys: []string{"status", "state"}, transform: strings.ToLower}
	phoneField         = extractor{keys: []string{"number", "phone_number"}}
)

// apply returns the first non-empty candidate value, coerced to string.
func (e extractor) apply(payload map[string]interface{}) string {
	for _, key := range e.keys {
		v, ok := payload[key]
		if !ok || v == nil {
			continue
		}
		s := cast.ToString(v)
		if s == "" {
			continue
		}
		if e.transform != nil {
			s = e.transform(s)
		}
		return s
	}
	return ""
}

// extractAmount best-effort parses the amount field; ok is false when the
// field is absent or unparseable. Absence is not an error.
func extractAmount(payload map[string]interface{}) (float64, bool) {
	v, exists := payload["amount"]
	if !exists || v == nil {
		return 0, false
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, false
	}
	return f, true
}

// externalIDField resolves the gateway transaction id out of a stored
// response blob. The reconciler writes external_transaction_id explicitly;
// raw gateway responses carry one of the provider keys.
var externalIDField = extractor{keys: []string{"external_transaction_id", "tranid", "transaction_id", "order_id", "id"}}
