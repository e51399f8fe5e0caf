package domain

import "time"

// WarehouseName identifies one of the two fixed warehouse sites.
type WarehouseName string

const (
	WarehouseCWA WarehouseName = "CWA"
	WarehouseBWA WarehouseName = "BWA"
)

// Valid reports whether n is a known warehouse name.
func (n WarehouseName) Valid() bool {
	return n == WarehouseCWA || n == WarehouseBWA
}

// Warehouse is a storage site. WarehouseID is a minted identifier
// prefixed "W".
type Warehouse struct {
	ID          string        `json:"id"`
	WarehouseID string        `json:"warehouse_id"`
	Name        WarehouseName `json:"name"`
	Location    string        `json:"location"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
