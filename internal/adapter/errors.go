package adapter

import "errors"

var (
	// ErrPaymentUnauthorized means the provider rejected the configured
	// consumer credentials.
	ErrPaymentUnauthorized = errors.New("payment provider rejected credentials")
	// ErrPaymentRejected means the provider refused the STK push request.
	ErrPaymentRejected = errors.New("payment provider rejected request")
)
