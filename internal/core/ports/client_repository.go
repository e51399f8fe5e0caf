package ports

import (
	"context"
	"time"

	"github.com/cargolink/logistics-api/internal/core/domain"
)

// ListClientsFilter carries query parameters for listing clients.
type ListClientsFilter struct {
	Role  domain.ClientRole // empty = all roles
	Page  int               // 1-based
	Limit int
}

// ClientRepository defines persistence for external clients, including the
// embedded OTP challenge state.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	FindByPhone(ctx context.Context, phone string) (*domain.Client, error)
	// FindByEmailOrPhone looks up an existing client with the given role
	// using either contact field; used for duplicate detection.
	FindByEmailOrPhone(ctx context.Context, email, phone string, role domain.ClientRole) (*domain.Client, error)
	List(ctx context.Context, filter ListClientsFilter) ([]*domain.Client, int64, error)
	Update(ctx context.Context, client *domain.Client) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
	AddForm(ctx context.Context, id string, form domain.ClientForm) (*domain.Client, error)

	// SetOTP stores a fresh code and absolute expiry on the client identified
	// by phone, overwriting any previous challenge.
	SetOTP(ctx context.Context, phone, code string, expiry time.Time) error
	// ConsumeOTP atomically clears the OTP state of the customer identified
	// by phone iff the stored code matches and has not expired at now, and
	// returns the client. A miss (no matching document) returns
	// domain.ErrInvalidOTP; callers classify the precise cause afterwards.
	ConsumeOTP(ctx context.Context, phone, code string, now time.Time) (*domain.Client, error)
}
