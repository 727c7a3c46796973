package entities

type PaymentIntentRequest struct {
	Price float64 `json:"price"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// PaymentConfirmation is the PATCH /bookings/{id} payload. The appointment
// snapshot travels with the payment so the confirmation email can be built
// without a fresh lookup.
type PaymentConfirmation struct {
	TransactionID string         `json:"transactionId"`
	Amount        int            `json:"amount"`
	Patient       string         `json:"patient"`
	Appointment   BookingRequest `json:"appointment"`
}
