package service

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/cargolink/logistics-api/internal/core/domain"
	"github.com/cargolink/logistics-api/internal/core/ports"
)

type stubSequenceRepo struct {
	counters map[ports.EntityKind]int64
}

func newStubSequenceRepo() *stubSequenceRepo {
	return &stubSequenceRepo{counters: make(map[ports.EntityKind]int64)}
}

func (r *stubSequenceRepo) Next(_ context.Context, kind ports.EntityKind) (int64, error) {
	r.counters[kind]++
	return r.counters[kind], nil
}

func TestMinter_Formats(t *testing.T) {
	cases := []struct {
		kind      ports.EntityKind
		role      domain.ClientRole
		prefix    string
		saltChars int
	}{
		{ports.KindClient, domain.ClientRoleCustomer, "C", 4},
		{ports.KindClient, domain.ClientRoleSupplier, "S", 4},
		{ports.KindBooking, "", "B", 8},
		{ports.KindContainer, "", "CON", 8},
		{ports.KindWarehouse, "", "W", 6},
	}

	hexRe := regexp.MustCompile(`^[0-9a-f]+$`)
	for _, tc := range cases {
		minter := NewMinter(newStubSequenceRepo())
		id, err := minter.Mint(context.Background(), tc.kind, tc.role)
		if err != nil {
			t.Fatalf("%s: Mint returned error: %v", tc.kind, err)
		}
		if !strings.HasPrefix(id, tc.prefix) {
			t.Fatalf("%s: identifier %q missing prefix %q", tc.kind, id, tc.prefix)
		}
		rest := strings.TrimPrefix(id, tc.prefix)
		wantLen := tc.saltChars + 4
		if len(rest) != wantLen {
			t.Fatalf("%s: identifier %q body has %d chars, want %d", tc.kind, id, len(rest), wantLen)
		}
		salt, seq := rest[:tc.saltChars], rest[tc.saltChars:]
		if !hexRe.MatchString(salt) {
			t.Fatalf("%s: salt %q is not lowercase hex", tc.kind, salt)
		}
		if seq != "0001" {
			t.Fatalf("%s: first sequence rendered %q, want 0001", tc.kind, seq)
		}
	}
}

func TestMinter_SequenceAdvances(t *testing.T) {
	minter := NewMinter(newStubSequenceRepo())

	for i := 1; i <= 3; i++ {
		id, err := minter.Mint(context.Background(), ports.KindBooking, "")
		if err != nil {
			t.Fatalf("Mint returned error: %v", err)
		}
		seq := id[len(id)-4:]
		n, err := strconv.Atoi(seq)
		if err != nil || n != i {
			t.Fatalf("mint %d: sequence suffix %q, want %04d", i, seq, i)
		}
	}
}

func TestMinter_SequencesIndependentPerKind(t *testing.T) {
	repo := newStubSequenceRepo()
	minter := NewMinter(repo)

	for i := 0; i < 5; i++ {
		if _, err := minter.Mint(context.Background(), ports.KindBooking, ""); err != nil {
			t.Fatalf("Mint returned error: %v", err)
		}
	}
	id, err := minter.Mint(context.Background(), ports.KindWarehouse, "")
	if err != nil {
		t.Fatalf("Mint returned error: %v", err)
	}
	if !strings.HasSuffix(id, "0001") {
		t.Fatalf("warehouse counter leaked from booking counter: %q", id)
	}
}

func TestMinter_UnknownKind(t *testing.T) {
	minter := NewMinter(newStubSequenceRepo())
	if _, err := minter.Mint(context.Background(), ports.EntityKind("ship"), ""); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}
