package ports

import (
	"context"

	"github.com/cargolink/logistics-api/internal/core/domain"
)

// ListBookingsFilter carries query parameters for listing bookings.
type ListBookingsFilter struct {
	Status domain.BookingStatus // empty = all
	Page   int
	Limit  int
}

// BookingRepository defines persistence for bookings, keyed by the minted
// booking identifier.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	FindByBookingID(ctx context.Context, bookingID string) (*domain.Booking, error)
	List(ctx context.Context, filter ListBookingsFilter) ([]*domain.Booking, int64, error)
	UpdateStatus(ctx context.Context, bookingID string, status domain.BookingStatus) (*domain.Booking, error)
}

// CreateBookingInput carries a booking creation request.
type CreateBookingInput struct {
	Sender     domain.Party
	Receiver   domain.Party
	Type       domain.BookingType
	Location   string
	SupplierID string
}

// BookingService implements booking use cases around the identifier minter.
type BookingService interface {
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	Get(ctx context.Context, bookingID string) (*domain.Booking, error)
	List(ctx context.Context, filter ListBookingsFilter) ([]*domain.Booking, int64, error)
	UpdateStatus(ctx context.Context, bookingID string, status domain.BookingStatus) (*domain.Booking, error)
}
