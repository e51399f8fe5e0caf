package ports

import (
	"context"

	"github.com/cargolink/logistics-api/internal/core/domain"
)

// EntityKind names an entity family that receives minted identifiers.
type EntityKind string

const (
	KindClient    EntityKind = "client"
	KindBooking   EntityKind = "booking"
	KindContainer EntityKind = "container"
	KindWarehouse EntityKind = "warehouse"
)

// IdentifierMinter produces unique, human-readable, prefixed sequential
// identifiers. Minting happens exactly once, before an entity's first
// persist; entities that already carry an identifier are never re-minted.
type IdentifierMinter interface {
	// Mint returns the next identifier for kind. The role argument is only
	// consulted for KindClient, where it selects the "C"/"S" prefix.
	Mint(ctx context.Context, kind EntityKind, role domain.ClientRole) (string, error)
}

// SequenceRepository hands out monotonically increasing sequence numbers per
// entity kind. Next must be atomic: two concurrent calls for the same kind
// never observe the same value.
type SequenceRepository interface {
	Next(ctx context.Context, kind EntityKind) (int64, error)
}
