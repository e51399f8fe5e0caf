package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/cargolink/logistics-api/internal/core/domain"
	"github.com/cargolink/logistics-api/internal/core/ports"
)

// WarehouseService implements warehouse use cases.
type WarehouseService struct {
	repo   ports.WarehouseRepository
	minter ports.IdentifierMinter
	logger zerolog.Logger
}

func NewWarehouseService(repo ports.WarehouseRepository, minter ports.IdentifierMinter, logger zerolog.Logger) *WarehouseService {
	return &WarehouseService{repo: repo, minter: minter, logger: logger}
}

func (s *WarehouseService) Create(ctx context.Context, name domain.WarehouseName, location string) (*domain.Warehouse, error) {
	if !name.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	warehouseID, err := s.minter.Mint(ctx, ports.KindWarehouse, "")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	warehouse := &domain.Warehouse{
		WarehouseID: warehouseID,
		Name:        name,
		Location:    location,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, warehouse)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("warehouse_id", created.WarehouseID).Msg("warehouse created")
	return created, nil
}

func (s *WarehouseService) List(ctx context.Context) ([]*domain.Warehouse, error) {
	return s.repo.List(ctx)
}
