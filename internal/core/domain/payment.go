package domain

import "time"

// PaymentStatus is the settlement state of a payment.
type PaymentStatus string

const (
	PaymentUnpaid    PaymentStatus = "unpaid"
	PaymentPaid      PaymentStatus = "paid"
	PaymentFailed    PaymentStatus = "failed"
	PaymentCancelled PaymentStatus = "cancelled"
)

// Valid reports whether s is a known payment status.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentUnpaid, PaymentPaid, PaymentFailed, PaymentCancelled:
		return true
	}
	return false
}

// PaymentMethod is how a payment is settled.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCOD    PaymentMethod = "cod"
	PaymentOnline PaymentMethod = "online"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentCOD || m == PaymentOnline
}

// Payment records the settlement of a booking. PaymentDate is stamped when
// the status transitions to paid.
type Payment struct {
	ID            string        `json:"id"`
	BookingID     string        `json:"booking_id"`
	Amount        float64       `json:"amount"`
	Status        PaymentStatus `json:"status"`
	Method        PaymentMethod `json:"payment_method,omitempty"`
	TransactionID string        `json:"transaction_id,omitempty"`
	PaymentDate   *time.Time    `json:"payment_date,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
