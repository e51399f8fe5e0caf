package ports

import (
	"context"

	"github.com/cargolink/logistics-api/internal/core/domain"
)

// WarehouseRepository defines persistence for warehouses, keyed by the
// minted warehouse identifier.
type WarehouseRepository interface {
	Create(ctx context.Context, w *domain.Warehouse) (*domain.Warehouse, error)
	FindByWarehouseID(ctx context.Context, warehouseID string) (*domain.Warehouse, error)
	List(ctx context.Context) ([]*domain.Warehouse, error)
}

// WarehouseService implements warehouse use cases.
type WarehouseService interface {
	Create(ctx context.Context, name domain.WarehouseName, location string) (*domain.Warehouse, error)
	List(ctx context.Context) ([]*domain.Warehouse, error)
}
