package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/cargolink/logistics-api/internal/core/domain"
	"github.com/cargolink/logistics-api/internal/core/ports"
)

// mintFormat describes how identifiers of one kind are rendered.
type mintFormat struct {
	prefix    string
	saltBytes int
}

// Booking and container identifiers carry a wider salt than warehouses and
// clients, matching the relative creation rates of each kind.
var mintFormats = map[ports.EntityKind]mintFormat{
	ports.KindClient:    {prefix: "C", saltBytes: 2},
	ports.KindBooking:   {prefix: "B", saltBytes: 4},
	ports.KindContainer: {prefix: "CON", saltBytes: 4},
	ports.KindWarehouse: {prefix: "W", saltBytes: 3},
}

// Minter generates identifiers of the form {prefix}{hexSalt}{0-padded seq}.
// The sequence component comes from an atomic per-kind counter, so two
// concurrent creations never mint the same identifier; the salt keeps
// identifiers hard to enumerate.
type Minter struct {
	seq ports.SequenceRepository
}

func NewMinter(seq ports.SequenceRepository) *Minter {
	return &Minter{seq: seq}
}

func (m *Minter) Mint(ctx context.Context, kind ports.EntityKind, role domain.ClientRole) (string, error) {
	format, ok := mintFormats[kind]
	if !ok {
		return "", fmt.Errorf("mint: unknown entity kind %q", kind)
	}

	prefix := format.prefix
	if kind == ports.KindClient && role == domain.ClientRoleSupplier {
		prefix = "S"
	}

	n, err := m.seq.Next(ctx, kind)
	if err != nil {
		return "", fmt.Errorf("mint %s: %w", kind, err)
	}

	salt := make([]byte, format.saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("mint %s: %w", kind, err)
	}

	return fmt.Sprintf("%s%s%04d", prefix, hex.EncodeToString(salt), n), nil
}
