package ports

import (
	"context"

	"github.com/cargolink/logistics-api/internal/core/domain"
)

// ContainerRepository defines persistence for containers, keyed by the
// minted container identifier.
type ContainerRepository interface {
	Create(ctx context.Context, c *domain.Container) (*domain.Container, error)
	FindByContainerID(ctx context.Context, containerID string) (*domain.Container, error)
	List(ctx context.Context) ([]*domain.Container, error)
}

// CreateContainerInput carries a container creation request.
type CreateContainerInput struct {
	Model       string
	Medium      domain.TransportMedium
	Location    string
	Ports       []string
	Description string
}

// ContainerService implements container use cases.
type ContainerService interface {
	Create(ctx context.Context, input CreateContainerInput) (*domain.Container, error)
	Get(ctx context.Context, containerID string) (*domain.Container, error)
	List(ctx context.Context) ([]*domain.Container, error)
}
