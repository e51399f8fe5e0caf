package ports

import (
	"context"

	"github.com/cargolink/logistics-api/internal/core/domain"
)

// PaymentRepository defines persistence for payments.
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	FindByID(ctx context.Context, id string) (*domain.Payment, error)
	Update(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
}

// CreatePaymentInput carries a payment creation request.
type CreatePaymentInput struct {
	BookingID string
	Amount    float64
	Method    domain.PaymentMethod
}

// PaymentService implements payment use cases. Settling a payment stamps
// its payment date.
type PaymentService interface {
	Create(ctx context.Context, input CreatePaymentInput) (*domain.Payment, error)
	Get(ctx context.Context, id string) (*domain.Payment, error)
	UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus, transactionID string) (*domain.Payment, error)
}
