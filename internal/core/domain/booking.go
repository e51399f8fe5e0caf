package domain

import "time"

// BookingStatus is the lifecycle state of a booking. CWA and BWA mark
// arrival at the respective warehouse.
type BookingStatus string

const (
	BookingProcessing BookingStatus = "processing"
	BookingPending    BookingStatus = "pending"
	BookingAccepted   BookingStatus = "accepted"
	BookingCancelled  BookingStatus = "cancelled"
	BookingDelivered  BookingStatus = "delivered"
	BookingAtCWA      BookingStatus = "CWA"
	BookingAtBWA      BookingStatus = "BWA"
)

// Valid reports whether s is a known booking status.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingProcessing, BookingPending, BookingAccepted,
		BookingCancelled, BookingDelivered, BookingAtCWA, BookingAtBWA:
		return true
	}
	return false
}

// BookingType distinguishes bundled shipments from single-product ones.
type BookingType string

const (
	BookingBundled BookingType = "bundled"
	BookingSingle  BookingType = "single"
)

// Valid reports whether t is a known booking type.
func (t BookingType) Valid() bool {
	return t == BookingBundled || t == BookingSingle
}

// SupplierStatus records who fulfils the supply side of a booking.
type SupplierStatus string

const (
	SupplierClientSelf   SupplierStatus = "clientself"
	SupplierSupplierSelf SupplierStatus = "supplierself"
	SupplierPending      SupplierStatus = "pending"
)

// Party is a sender or receiver contact.
type Party struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
	Phone string `json:"phone" bson:"phone"`
}

// Booking is a shipment booking. BookingID is a minted identifier
// prefixed "B".
type Booking struct {
	ID             string         `json:"id"`
	BookingID      string         `json:"booking_id"`
	Sender         Party          `json:"sender"`
	Receiver       Party          `json:"receiver"`
	Type           BookingType    `json:"type"`
	SupplierStatus SupplierStatus `json:"supplier_status"`
	SupplierID     string         `json:"supplier_id,omitempty"`
	Status         BookingStatus  `json:"status"`
	Location       string         `json:"location"`
	ContainerID    string         `json:"container_id,omitempty"`
	PaymentID      string         `json:"payment_id,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
