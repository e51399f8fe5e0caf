package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/cargolink/logistics-api/internal/core/domain"
	"github.com/cargolink/logistics-api/internal/core/ports"
)

// PaymentService implements payment use cases.
type PaymentService struct {
	repo     ports.PaymentRepository
	bookings ports.BookingRepository
	logger   zerolog.Logger
	now      func() time.Time
}

func NewPaymentService(repo ports.PaymentRepository, bookings ports.BookingRepository, logger zerolog.Logger) *PaymentService {
	return &PaymentService{repo: repo, bookings: bookings, logger: logger, now: time.Now}
}

func (s *PaymentService) Create(ctx context.Context, input ports.CreatePaymentInput) (*domain.Payment, error) {
	if input.Method != "" && !input.Method.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	if _, err := s.bookings.FindByBookingID(ctx, input.BookingID); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	payment := &domain.Payment{
		BookingID: input.BookingID,
		Amount:    input.Amount,
		Status:    domain.PaymentUnpaid,
		Method:    input.Method,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, payment)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("payment_id", created.ID).Str("booking_id", created.BookingID).Msg("payment created")
	return created, nil
}

func (s *PaymentService) Get(ctx context.Context, id string) (*domain.Payment, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateStatus moves a payment to a new settlement state. Transitioning to
// paid stamps the payment date.
func (s *PaymentService) UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus, transactionID string) (*domain.Payment, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	payment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	payment.Status = status
	if transactionID != "" {
		payment.TransactionID = transactionID
	}
	if status == domain.PaymentPaid {
		paidAt := s.now().UTC()
		payment.PaymentDate = &paidAt
	}
	payment.UpdatedAt = s.now().UTC()

	updated, err := s.repo.Update(ctx, payment)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("payment_id", id).Str("status", string(status)).Msg("payment status updated")
	return updated, nil
}
