package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/cargolink/logistics-api/internal/core/domain"
	"github.com/cargolink/logistics-api/internal/core/ports"
)

// AuthService implements staff registration, password login, profile
// management and role administration.
type AuthService struct {
	repo   ports.UserRepository
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, logger: logger}
}

// Register creates a staff account. The first account ever created becomes
// super-admin; everyone after that starts as a plain user. The password is
// hashed before anything is persisted.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.StaffUser, string, error) {
	exists, err := s.repo.ExistsByEmailOrPhone(ctx, input.Email, input.Phone)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", domain.ErrUserExists
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, "", err
	}
	role := domain.RoleUser
	if count == 0 {
		role = domain.RoleSuperAdmin
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	user := &domain.StaffUser{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Phone:        input.Phone,
		Address:      input.Address,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("staff user registered")
	return created, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.StaffUser, string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrWrongPassword
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, id string) (*domain.StaffUser, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateProfile applies a partial update. Only a non-empty password is
// re-hashed; saves that do not touch the password leave the hash alone.
func (s *AuthService) UpdateProfile(ctx context.Context, id string, input ports.UpdateProfileInput) (*domain.StaffUser, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Address != "" {
		user.Address = input.Address
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, user)
}

func (s *AuthService) ListUsers(ctx context.Context) ([]*domain.StaffUser, error) {
	return s.repo.FindAll(ctx)
}

func (s *AuthService) UpdateRole(ctx context.Context, email string, role domain.Role) (*domain.StaffUser, error) {
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	user.Role = role
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", updated.ID).Str("role", string(role)).Msg("staff role updated")
	return updated, nil
}
