package models

// CheckoutSessionResult is handed to the client-side embedded checkout UI.
type CheckoutSessionResult struct {
	ClientSecret string `json:"clientSecret"`
	SessionID    string `json:"sessionId"`
}

// SessionStatusView is the composed view returned by the status endpoint.
type SessionStatusView struct {
	Booking       Booking `json:"booking"`
	Hotel         Hotel   `json:"hotel"`
	Status        string  `json:"status"`
	CustomerEmail string  `json:"customer_email"`
	PaymentStatus string  `json:"paymentStatus"`
}
