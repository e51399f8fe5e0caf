package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/cargolink/logistics-api/internal/core/domain"
	"github.com/cargolink/logistics-api/internal/core/ports"
)

// BookingService implements booking use cases. The minted bookingId is
// assigned explicitly before the first persist.
type BookingService struct {
	repo   ports.BookingRepository
	minter ports.IdentifierMinter
	logger zerolog.Logger
}

func NewBookingService(repo ports.BookingRepository, minter ports.IdentifierMinter, logger zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, minter: minter, logger: logger}
}

func (s *BookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
	bookingID, err := s.minter.Mint(ctx, ports.KindBooking, "")
	if err != nil {
		return nil, err
	}

	supplierStatus := domain.SupplierPending
	if input.SupplierID != "" {
		supplierStatus = domain.SupplierSupplierSelf
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		BookingID:      bookingID,
		Sender:         input.Sender,
		Receiver:       input.Receiver,
		Type:           input.Type,
		SupplierStatus: supplierStatus,
		SupplierID:     input.SupplierID,
		Status:         domain.BookingProcessing,
		Location:       input.Location,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.repo.Create(ctx, booking)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("booking_id", created.BookingID).Msg("booking created")
	return created, nil
}

func (s *BookingService) Get(ctx context.Context, bookingID string) (*domain.Booking, error) {
	return s.repo.FindByBookingID(ctx, bookingID)
}

func (s *BookingService) List(ctx context.Context, filter ports.ListBookingsFilter) ([]*domain.Booking, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}
	return s.repo.List(ctx, filter)
}

func (s *BookingService) UpdateStatus(ctx context.Context, bookingID string, status domain.BookingStatus) (*domain.Booking, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	updated, err := s.repo.UpdateStatus(ctx, bookingID, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("booking_id", bookingID).Str("status", string(status)).Msg("booking status updated")
	return updated, nil
}
