package ports

import (
	"context"

	"github.com/cargolink/logistics-api/internal/core/domain"
)

// UserRepository defines persistence for staff accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.StaffUser) (*domain.StaffUser, error)
	FindByID(ctx context.Context, id string) (*domain.StaffUser, error)
	FindByEmail(ctx context.Context, email string) (*domain.StaffUser, error)
	// ExistsByEmailOrPhone reports whether any account already uses the email
	// or the phone number.
	ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error)
	FindAll(ctx context.Context) ([]*domain.StaffUser, error)
	Update(ctx context.Context, user *domain.StaffUser) (*domain.StaffUser, error)
	Count(ctx context.Context) (int64, error)
}
