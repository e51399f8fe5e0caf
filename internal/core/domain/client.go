package domain

import "time"

// ClientRole distinguishes the two external client kinds. Customers log in
// with a phone-bound OTP; suppliers never do.
type ClientRole string

const (
	ClientRoleCustomer ClientRole = "customer"
	ClientRoleSupplier ClientRole = "supplier"
)

// Valid reports whether r is a known client role.
func (r ClientRole) Valid() bool {
	return r == ClientRoleCustomer || r == ClientRoleSupplier
}

// ClientForm links a booking to an externally hosted form document.
type ClientForm struct {
	BookingID string `json:"booking_id" bson:"booking_id"`
	Link      string `json:"link" bson:"link"`
}

// Client models an external principal (customer or supplier). UserID is a
// minted human-readable identifier prefixed "C" (customer) or "S" (supplier).
// At most one non-expired OTP exists per client; a successful verification
// clears OTP and OTPExpiry together.
type Client struct {
	ID        string       `json:"id"`
	UserID    string       `json:"user_id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Phone     string       `json:"phone"`
	Address   string       `json:"address"`
	Role      ClientRole   `json:"role"`
	OTP       string       `json:"-"`
	OTPExpiry *time.Time   `json:"-"`
	Forms     []ClientForm `json:"forms"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
