package ports

import (
	"context"

	"github.com/cargolink/logistics-api/internal/core/domain"
)

// RegisterInput carries a staff registration request.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  string
}

// UpdateProfileInput carries a partial staff profile update. Empty fields
// are left untouched; a non-empty password is re-hashed before persisting.
type UpdateProfileInput struct {
	Name     string
	Address  string
	Phone    string
	Password string
}

// AuthService implements staff registration, password login, profile
// management and role administration.
type AuthService interface {
	// Register creates a staff account and returns it with a session token.
	// The first account ever created is elevated to super-admin.
	Register(ctx context.Context, input RegisterInput) (*domain.StaffUser, string, error)
	// Login authenticates by email and password and returns a session token.
	Login(ctx context.Context, email, password string) (*domain.StaffUser, string, error)
	// CurrentUser loads the staff account bound to a verified token.
	CurrentUser(ctx context.Context, id string) (*domain.StaffUser, error)
	UpdateProfile(ctx context.Context, id string, input UpdateProfileInput) (*domain.StaffUser, error)
	ListUsers(ctx context.Context) ([]*domain.StaffUser, error)
	// UpdateRole sets the role of the account identified by email.
	UpdateRole(ctx context.Context, email string, role domain.Role) (*domain.StaffUser, error)
}
