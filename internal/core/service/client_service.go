package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/cargolink/logistics-api/internal/core/domain"
	"github.com/cargolink/logistics-api/internal/core/ports"
)

// ClientService implements client registration and CRUD. The minted userId
// is assigned here, explicitly, before the first persist.
type ClientService struct {
	repo   ports.ClientRepository
	minter ports.IdentifierMinter
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, minter ports.IdentifierMinter, tokens ports.TokenService, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, minter: minter, tokens: tokens, logger: logger}
}

// Create registers a client. A supplier whose contact details already exist
// is returned as-is (idempotent onboarding); a customer duplicate is an
// error directing them to the login flow.
func (s *ClientService) Create(ctx context.Context, input ports.CreateClientInput) (*ports.CreateClientResult, error) {
	existing, err := s.repo.FindByEmailOrPhone(ctx, input.Email, input.Phone, input.Role)
	if err != nil && err != domain.ErrClientNotFound {
		return nil, err
	}
	if existing != nil {
		if input.Role == domain.ClientRoleSupplier {
			return &ports.CreateClientResult{Client: existing, AlreadyExists: true}, nil
		}
		return nil, domain.ErrCustomerRegistered
	}

	userID, err := s.minter.Mint(ctx, ports.KindClient, input.Role)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	client := &domain.Client{
		UserID:    userID,
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
		Role:      input.Role,
		Forms:     []domain.ClientForm{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, client)
	if err != nil {
		// The role-scoped lookup above misses cross-role conflicts; the
		// unique indexes catch those at insert time.
		if errors.Is(err, domain.ErrClientExists) && input.Role == domain.ClientRoleCustomer {
			return nil, domain.ErrCustomerRegistered
		}
		return nil, err
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("client_id", created.ID).Str("user_id", created.UserID).Str("role", string(created.Role)).Msg("client created")
	return &ports.CreateClientResult{Client: created, Token: token}, nil
}

func (s *ClientService) List(ctx context.Context, filter ports.ListClientsFilter) ([]*domain.Client, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}
	return s.repo.List(ctx, filter)
}

func (s *ClientService) Get(ctx context.Context, id string) (*domain.Client, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ClientService) Update(ctx context.Context, id string, input ports.UpdateClientInput) (*domain.Client, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		client.Name = input.Name
	}
	if input.Email != "" {
		client.Email = input.Email
	}
	if input.Phone != "" {
		client.Phone = input.Phone
	}
	if input.Address != "" {
		client.Address = input.Address
	}
	client.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, client)
}

func (s *ClientService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("client_id", id).Msg("client deleted")
	return nil
}

func (s *ClientService) AddForm(ctx context.Context, id, bookingID, link string) (*domain.Client, error) {
	return s.repo.AddForm(ctx, id, domain.ClientForm{BookingID: bookingID, Link: link})
}
