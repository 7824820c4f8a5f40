package paylink

import "fmt"

// Error codes surfaced to API callers.
const (
	CodeDuplicateLink      = "DUPLICATE_LINK"
	CodePaymentNotFound    = "PAYMENT_NOT_FOUND"
	CodeGatewayError       = "GATEWAY_ERROR"
	CodeStorageUnavailable = "STORAGE_UNAVAILABLE"
)

// Error pairs a stable machine code with a human message. The wrapped cause
// stays available through errors.Unwrap.
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors by code so sentinels below work with errors.Is even
// when a cause is attached.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Sentinels for errors.Is checks.
var (
	ErrDuplicateLink      = &Error{Code: CodeDuplicateLink, Message: "payment link identifier already exists"}
	ErrPaymentNotFound    = &Error{Code: CodePaymentNotFound, Message: "payment not found"}
	ErrGateway            = &Error{Code: CodeGatewayError, Message: "gateway call failed"}
	ErrStorageUnavailable = &Error{Code: CodeStorageUnavailable, Message: "storage unavailable"}
)

func duplicateLinkError(err error) *Error {
	return &Error{Code: CodeDuplicateLink, Message: "payment link identifier already exists", Err: err}
}

func paymentNotFoundError(linkID string) *Error {
	return &Error{Code: CodePaymentNotFound, Message: fmt.Sprintf("no payment for link %s", linkID)}
}

func gatewayError(err error) *Error {
	return &Error{Code: CodeGatewayError, Message: "gateway call failed", Err: err}
}

func storageError(err error) *Error {
	return &Error{Code: CodeStorageUnavailable, Message: "storage unavailable", Err: err}
}
