package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/cargolink/logistics-api/internal/core/domain"
	"github.com/cargolink/logistics-api/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.StaffUser
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.StaffUser)}
}

func cloneStaffUser(u *domain.StaffUser) *domain.StaffUser {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.StaffUser) (*domain.StaffUser, error) {
	copy := cloneStaffUser(user)
	r.nextID++
	copy.ID = "u" + strconv.Itoa(r.nextID)
	r.users[copy.ID] = cloneStaffUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.StaffUser, error) {
	if u, ok := r.users[id]; ok {
		return cloneStaffUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.StaffUser, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneStaffUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ExistsByEmailOrPhone(_ context.Context, email, phone string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email || u.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.StaffUser, error) {
	out := make([]*domain.StaffUser, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneStaffUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.StaffUser) (*domain.StaffUser, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneStaffUser(user)
	return cloneStaffUser(user), nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func newTestAuthService(repo ports.UserRepository) *AuthService {
	tokens := NewTokenService("secret", time.Hour, "")
	return NewAuthService(repo, tokens, zerolog.Nop())
}

func TestAuthService_Register_FirstUserIsSuperAdmin(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	user, token, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Alice", Email: "alice@example.com", Password: "pass123", Phone: "111",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleSuperAdmin {
		t.Fatalf("first user role = %s, want super-admin", user.Role)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_SubsequentUsersArePlain(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	_, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Alice", Email: "alice@example.com", Password: "pass", Phone: "111",
	})
	if err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	user, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Bob", Email: "bob@example.com", Password: "pass", Phone: "222",
	})
	if err != nil {
		t.Fatalf("second register failed: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("second user role = %s, want user", user.Role)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	input := ports.RegisterInput{Name: "Bob", Email: "bob@example.com", Password: "pass", Phone: "222"}
	if _, _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), input); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	// Same phone with a fresh email is also a duplicate.
	input.Email = "bob2@example.com"
	if _, _, err := svc.Register(context.Background(), input); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists for duplicate phone, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Carol", Email: "carol@example.com", Password: "s3cret", Phone: "333",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, token, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Name != "Carol" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	_, _, _ = svc.Register(context.Background(), ports.RegisterInput{
		Name: "Dave", Email: "dave@example.com", Password: "goodpass", Phone: "444",
	})
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); err != domain.ErrWrongPassword {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_UpdateProfile_PasswordOnlyRehashedWhenSet(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	created, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Eve", Email: "eve@example.com", Password: "original", Phone: "555",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	originalHash := created.PasswordHash

	updated, err := svc.UpdateProfile(context.Background(), created.ID, ports.UpdateProfileInput{Name: "Eve Updated"})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if updated.Name != "Eve Updated" {
		t.Fatalf("name not updated: %q", updated.Name)
	}
	if updated.PasswordHash != originalHash {
		t.Fatalf("password hash changed on name-only update")
	}

	updated, err = svc.UpdateProfile(context.Background(), created.ID, ports.UpdateProfileInput{Password: "newpass"})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if updated.PasswordHash == originalHash {
		t.Fatalf("password hash not re-derived for new password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newpass")); err != nil {
		t.Fatalf("new hash does not match new password: %v", err)
	}
}

func TestAuthService_UpdateRole(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	_, _, _ = svc.Register(context.Background(), ports.RegisterInput{
		Name: "Frank", Email: "frank@example.com", Password: "pass", Phone: "666",
	})
	_, _, _ = svc.Register(context.Background(), ports.RegisterInput{
		Name: "Grace", Email: "grace@example.com", Password: "pass", Phone: "777",
	})

	updated, err := svc.UpdateRole(context.Background(), "grace@example.com", domain.RoleWarehouseManager)
	if err != nil {
		t.Fatalf("UpdateRole returned error: %v", err)
	}
	if updated.Role != domain.RoleWarehouseManager {
		t.Fatalf("role = %s, want warehouse-manager", updated.Role)
	}

	if _, err := svc.UpdateRole(context.Background(), "grace@example.com", "invented"); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if _, err := svc.UpdateRole(context.Background(), "nobody@example.com", domain.RoleAdmin); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
