package models

// PaymentRequest carries the fields needed to start an M-Pesa STK push.
// Amount is kept as a string because the upstream API expects whole
// shillings in string form and the value arrives from a field map anyway.
type PaymentRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Amount      string `json:"amount"`
	Reference   string `json:"reference"`
	Description string `json:"description"`
}

// PaymentResponse echoes the upstream STK push acknowledgement.
type PaymentResponse struct {
	MerchantRequestID string `json:"MerchantRequestID"`
	CheckoutRequestID string `json:"CheckoutRequestID"`
	ResponseCode      string `json:"ResponseCode"`
	CustomerMessage   string `json:"CustomerMessage"`
}
