package ports

import (
	"context"

	"github.com/cargolink/logistics-api/internal/core/domain"
)

// CreateClientInput carries a client registration request.
type CreateClientInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Role    domain.ClientRole
}

// CreateClientResult is returned by ClientService.Create. When an existing
// supplier matches the contact details, the existing record is returned with
// AlreadyExists set and no token is issued.
type CreateClientResult struct {
	Client        *domain.Client
	Token         string
	AlreadyExists bool
}

// UpdateClientInput carries a partial client profile update.
type UpdateClientInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// ClientService implements client registration and CRUD.
type ClientService interface {
	Create(ctx context.Context, input CreateClientInput) (*CreateClientResult, error)
	List(ctx context.Context, filter ListClientsFilter) ([]*domain.Client, int64, error)
	Get(ctx context.Context, id string) (*domain.Client, error)
	Update(ctx context.Context, id string, input UpdateClientInput) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
	AddForm(ctx context.Context, id, bookingID, link string) (*domain.Client, error)
}
