package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/cargolink/logistics-api/internal/core/domain"
	"github.com/cargolink/logistics-api/internal/core/ports"
)

// ContainerService implements container use cases.
type ContainerService struct {
	repo   ports.ContainerRepository
	minter ports.IdentifierMinter
	logger zerolog.Logger
}

func NewContainerService(repo ports.ContainerRepository, minter ports.IdentifierMinter, logger zerolog.Logger) *ContainerService {
	return &ContainerService{repo: repo, minter: minter, logger: logger}
}

func (s *ContainerService) Create(ctx context.Context, input ports.CreateContainerInput) (*domain.Container, error) {
	containerID, err := s.minter.Mint(ctx, ports.KindContainer, "")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	container := &domain.Container{
		ContainerID: containerID,
		Model:       input.Model,
		Status:      domain.ContainerAvailable,
		Medium:      input.Medium,
		Location:    input.Location,
		Ports:       input.Ports,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, container)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("container_id", created.ContainerID).Msg("container created")
	return created, nil
}

func (s *ContainerService) Get(ctx context.Context, containerID string) (*domain.Container, error) {
	return s.repo.FindByContainerID(ctx, containerID)
}

func (s *ContainerService) List(ctx context.Context) ([]*domain.Container, error) {
	return s.repo.List(ctx)
}
