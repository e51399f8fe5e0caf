package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/cargolink/logistics-api/internal/core/domain"
	"github.com/cargolink/logistics-api/internal/core/ports"
)

type stubPaymentRepo struct {
	payments map[string]*domain.Payment
	nextID   int
}

func newStubPaymentRepo() *stubPaymentRepo {
	return &stubPaymentRepo{payments: make(map[string]*domain.Payment)}
}

func clonePayment(p *domain.Payment) *domain.Payment {
	if p == nil {
		return nil
	}
	clone := *p
	if p.PaymentDate != nil {
		d := *p.PaymentDate
		clone.PaymentDate = &d
	}
	return &clone
}

func (r *stubPaymentRepo) Create(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
	copy := clonePayment(p)
	r.nextID++
	copy.ID = "p" + strconv.Itoa(r.nextID)
	r.payments[copy.ID] = clonePayment(copy)
	return copy, nil
}

func (r *stubPaymentRepo) FindByID(_ context.Context, id string) (*domain.Payment, error) {
	if p, ok := r.payments[id]; ok {
		return clonePayment(p), nil
	}
	return nil, domain.ErrPaymentNotFound
}

func (r *stubPaymentRepo) Update(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
	if _, ok := r.payments[p.ID]; !ok {
		return nil, domain.ErrPaymentNotFound
	}
	r.payments[p.ID] = clonePayment(p)
	return clonePayment(p), nil
}

func newTestPaymentService(repo ports.PaymentRepository, bookings ports.BookingRepository) *PaymentService {
	return NewPaymentService(repo, bookings, zerolog.Nop())
}

func seedBooking(t *testing.T, repo *stubBookingRepo) *domain.Booking {
	t.Helper()
	booking, err := repo.Create(context.Background(), &domain.Booking{
		BookingID: "B0a0b0001",
		Status:    domain.BookingProcessing,
	})
	if err != nil {
		t.Fatalf("seeding booking: %v", err)
	}
	return booking
}

func TestPaymentService_Create(t *testing.T) {
	bookings := newStubBookingRepo()
	booking := seedBooking(t, bookings)
	svc := newTestPaymentService(newStubPaymentRepo(), bookings)

	payment, err := svc.Create(context.Background(), ports.CreatePaymentInput{
		BookingID: booking.BookingID,
		Amount:    149.50,
		Method:    domain.PaymentOnline,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if payment.Status != domain.PaymentUnpaid {
		t.Fatalf("new payment status = %s, want unpaid", payment.Status)
	}
	if payment.PaymentDate != nil {
		t.Fatalf("unpaid payment must not carry a payment date")
	}
}

func TestPaymentService_Create_UnknownBooking(t *testing.T) {
	svc := newTestPaymentService(newStubPaymentRepo(), newStubBookingRepo())

	_, err := svc.Create(context.Background(), ports.CreatePaymentInput{BookingID: "Bmissing", Amount: 10})
	if err != domain.ErrBookingNotFound {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestPaymentService_Create_InvalidMethod(t *testing.T) {
	bookings := newStubBookingRepo()
	booking := seedBooking(t, bookings)
	svc := newTestPaymentService(newStubPaymentRepo(), bookings)

	_, err := svc.Create(context.Background(), ports.CreatePaymentInput{
		BookingID: booking.BookingID, Amount: 10, Method: "barter",
	})
	if err != domain.ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestPaymentService_UpdateStatus_PaidStampsDate(t *testing.T) {
	bookings := newStubBookingRepo()
	booking := seedBooking(t, bookings)
	svc := newTestPaymentService(newStubPaymentRepo(), bookings)

	paidAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return paidAt }

	payment, err := svc.Create(context.Background(), ports.CreatePaymentInput{
		BookingID: booking.BookingID, Amount: 99, Method: domain.PaymentCash,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), payment.ID, domain.PaymentPaid, "txn-1")
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if updated.Status != domain.PaymentPaid {
		t.Fatalf("status = %s, want paid", updated.Status)
	}
	if updated.PaymentDate == nil || !updated.PaymentDate.Equal(paidAt) {
		t.Fatalf("payment date = %v, want %v", updated.PaymentDate, paidAt)
	}
	if updated.TransactionID != "txn-1" {
		t.Fatalf("transaction id = %q", updated.TransactionID)
	}
}

func TestPaymentService_UpdateStatus_FailedLeavesDateEmpty(t *testing.T) {
	bookings := newStubBookingRepo()
	booking := seedBooking(t, bookings)
	svc := newTestPaymentService(newStubPaymentRepo(), bookings)

	payment, _ := svc.Create(context.Background(), ports.CreatePaymentInput{
		BookingID: booking.BookingID, Amount: 99,
	})
	updated, err := svc.UpdateStatus(context.Background(), payment.ID, domain.PaymentFailed, "")
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if updated.PaymentDate != nil {
		t.Fatalf("failed payment must not carry a payment date")
	}
}

func TestPaymentService_UpdateStatus_Invalid(t *testing.T) {
	svc := newTestPaymentService(newStubPaymentRepo(), newStubBookingRepo())

	if _, err := svc.UpdateStatus(context.Background(), "p1", "settled", ""); err != domain.ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}
