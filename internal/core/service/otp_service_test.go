package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/cargolink/logistics-api/internal/core/domain"
	"github.com/cargolink/logistics-api/internal/core/ports"
)

type stubClientRepo struct {
	clients map[string]*domain.Client // keyed by phone
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: make(map[string]*domain.Client)}
}

func cloneClient(c *domain.Client) *domain.Client {
	if c == nil {
		return nil
	}
	clone := *c
	if c.OTPExpiry != nil {
		exp := *c.OTPExpiry
		clone.OTPExpiry = &exp
	}
	return &clone
}

func (r *stubClientRepo) Create(_ context.Context, client *domain.Client) (*domain.Client, error) {
	copy := cloneClient(client)
	if copy.ID == "" {
		copy.ID = "id-" + client.Phone
	}
	r.clients[copy.Phone] = cloneClient(copy)
	return copy, nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id string) (*domain.Client, error) {
	for _, c := range r.clients {
		if c.ID == id {
			return cloneClient(c), nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (r *stubClientRepo) FindByPhone(_ context.Context, phone string) (*domain.Client, error) {
	if c, ok := r.clients[phone]; ok {
		return cloneClient(c), nil
	}
	return nil, domain.ErrClientNotFound
}

func (r *stubClientRepo) FindByEmailOrPhone(_ context.Context, email, phone string, role domain.ClientRole) (*domain.Client, error) {
	for _, c := range r.clients {
		if c.Role == role && (c.Email == email || c.Phone == phone) {
			return cloneClient(c), nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (r *stubClientRepo) List(_ context.Context, _ ports.ListClientsFilter) ([]*domain.Client, int64, error) {
	out := make([]*domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, cloneClient(c))
	}
	return out, int64(len(out)), nil
}

func (r *stubClientRepo) Update(_ context.Context, client *domain.Client) (*domain.Client, error) {
	r.clients[client.Phone] = cloneClient(client)
	return cloneClient(client), nil
}

func (r *stubClientRepo) Delete(_ context.Context, id string) error {
	for phone, c := range r.clients {
		if c.ID == id {
			delete(r.clients, phone)
			return nil
		}
	}
	return domain.ErrClientNotFound
}

func (r *stubClientRepo) AddForm(_ context.Context, id string, form domain.ClientForm) (*domain.Client, error) {
	for _, c := range r.clients {
		if c.ID == id {
			c.Forms = append(c.Forms, form)
			return cloneClient(c), nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (r *stubClientRepo) SetOTP(_ context.Context, phone, code string, expiry time.Time) error {
	c, ok := r.clients[phone]
	if !ok {
		return domain.ErrClientNotFound
	}
	c.OTP = code
	c.OTPExpiry = &expiry
	return nil
}

func (r *stubClientRepo) ConsumeOTP(_ context.Context, phone, code string, now time.Time) (*domain.Client, error) {
	c, ok := r.clients[phone]
	if !ok || c.Role != domain.ClientRoleCustomer {
		return nil, domain.ErrInvalidOTP
	}
	if c.OTP == "" || c.OTP != code || c.OTPExpiry == nil || !now.Before(*c.OTPExpiry) {
		return nil, domain.ErrInvalidOTP
	}
	c.OTP = ""
	c.OTPExpiry = nil
	return cloneClient(c), nil
}

// faultyClientRepo injects store failures on the read paths Verify touches.
type faultyClientRepo struct {
	*stubClientRepo
	consumeErr error
	findErr    error
}

func (r *faultyClientRepo) ConsumeOTP(ctx context.Context, phone, code string, now time.Time) (*domain.Client, error) {
	if r.consumeErr != nil {
		return nil, r.consumeErr
	}
	return r.stubClientRepo.ConsumeOTP(ctx, phone, code, now)
}

func (r *faultyClientRepo) FindByPhone(ctx context.Context, phone string) (*domain.Client, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.stubClientRepo.FindByPhone(ctx, phone)
}

type stubThrottle struct {
	allowed bool
	calls   int
}

func (t *stubThrottle) Allow(_ context.Context, _ string) (bool, error) {
	t.calls++
	return t.allowed, nil
}

type recordingNotifier struct {
	phone string
	code  string
	err   error
}

func (n *recordingNotifier) SendOTP(_ context.Context, phone, code string) error {
	n.phone = phone
	n.code = code
	return n.err
}

func newTestOTPService(repo ports.ClientRepository, throttle ports.OTPThrottle, notifier ports.OTPNotifier) *OTPService {
	tokens := NewTokenService("secret", time.Hour, "")
	return NewOTPService(repo, tokens, throttle, notifier, 4*time.Minute, zerolog.Nop())
}

func seedCustomer(repo *stubClientRepo, phone string) *domain.Client {
	created, _ := repo.Create(context.Background(), &domain.Client{
		Name:  "Customer " + phone,
		Phone: phone,
		Role:  domain.ClientRoleCustomer,
	})
	return created
}

func TestOTPService_Generate_StoresCodeWithExpiry(t *testing.T) {
	repo := newStubClientRepo()
	seedCustomer(repo, "111")
	notifier := &recordingNotifier{}
	svc := newTestOTPService(repo, &stubThrottle{allowed: true}, notifier)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	challenge, err := svc.Generate(context.Background(), "111")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	n, err := strconv.Atoi(challenge.Code)
	if err != nil || n < 1000 || n > 9999 {
		t.Fatalf("code %q is not a 4-digit number", challenge.Code)
	}
	if !challenge.ExpiresAt.Equal(base.Add(4 * time.Minute)) {
		t.Fatalf("expiry = %v, want %v", challenge.ExpiresAt, base.Add(4*time.Minute))
	}

	stored, _ := repo.FindByPhone(context.Background(), "111")
	if stored.OTP != challenge.Code {
		t.Fatalf("stored code %q, challenge code %q", stored.OTP, challenge.Code)
	}
	if notifier.phone != "111" || notifier.code != challenge.Code {
		t.Fatalf("notifier got phone=%q code=%q", notifier.phone, notifier.code)
	}
}

func TestOTPService_Generate_OverwritesPreviousCode(t *testing.T) {
	repo := newStubClientRepo()
	seedCustomer(repo, "111")
	svc := newTestOTPService(repo, &stubThrottle{allowed: true}, &recordingNotifier{})

	first, err := svc.Generate(context.Background(), "111")
	if err != nil {
		t.Fatalf("first Generate returned error: %v", err)
	}
	second, err := svc.Generate(context.Background(), "111")
	if err != nil {
		t.Fatalf("second Generate returned error: %v", err)
	}

	stored, _ := repo.FindByPhone(context.Background(), "111")
	if stored.OTP != second.Code {
		t.Fatalf("stored code %q, want latest %q", stored.OTP, second.Code)
	}
	if first.Code != second.Code {
		if _, err := svc.Verify(context.Background(), "111", first.Code); err != domain.ErrInvalidOTP {
			t.Fatalf("superseded code: expected ErrInvalidOTP, got %v", err)
		}
	}
}

func TestOTPService_Generate_SupplierRefused(t *testing.T) {
	repo := newStubClientRepo()
	_, _ = repo.Create(context.Background(), &domain.Client{Phone: "222", Role: domain.ClientRoleSupplier})
	svc := newTestOTPService(repo, &stubThrottle{allowed: true}, &recordingNotifier{})

	if _, err := svc.Generate(context.Background(), "222"); err != domain.ErrSupplierLogin {
		t.Fatalf("expected ErrSupplierLogin, got %v", err)
	}
}

func TestOTPService_Generate_UnknownPhone(t *testing.T) {
	svc := newTestOTPService(newStubClientRepo(), &stubThrottle{allowed: true}, &recordingNotifier{})

	if _, err := svc.Generate(context.Background(), "999"); err != domain.ErrClientNotFound {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestOTPService_Generate_Throttled(t *testing.T) {
	repo := newStubClientRepo()
	seedCustomer(repo, "111")
	throttle := &stubThrottle{allowed: false}
	svc := newTestOTPService(repo, throttle, &recordingNotifier{})

	if _, err := svc.Generate(context.Background(), "111"); err != domain.ErrOTPThrottled {
		t.Fatalf("expected ErrOTPThrottled, got %v", err)
	}
	if throttle.calls != 1 {
		t.Fatalf("throttle consulted %d times, want 1", throttle.calls)
	}
	stored, _ := repo.FindByPhone(context.Background(), "111")
	if stored.OTP != "" {
		t.Fatalf("throttled generate still stored a code")
	}
}

func TestOTPService_Generate_NotifierFailureNotFatal(t *testing.T) {
	repo := newStubClientRepo()
	seedCustomer(repo, "111")
	notifier := &recordingNotifier{err: context.DeadlineExceeded}
	svc := newTestOTPService(repo, &stubThrottle{allowed: true}, notifier)

	challenge, err := svc.Generate(context.Background(), "111")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	stored, _ := repo.FindByPhone(context.Background(), "111")
	if stored.OTP != challenge.Code {
		t.Fatalf("code not stored despite notifier failure")
	}
}

func TestOTPService_Verify_Success(t *testing.T) {
	repo := newStubClientRepo()
	created := seedCustomer(repo, "111")
	svc := newTestOTPService(repo, &stubThrottle{allowed: true}, &recordingNotifier{})

	challenge, err := svc.Generate(context.Background(), "111")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	result, err := svc.Verify(context.Background(), "111", challenge.Code)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if result.Client.ID != created.ID {
		t.Fatalf("verified client %q, want %q", result.Client.ID, created.ID)
	}

	stored, _ := repo.FindByPhone(context.Background(), "111")
	if stored.OTP != "" || stored.OTPExpiry != nil {
		t.Fatalf("otp state not cleared after verification")
	}
}

func TestOTPService_Verify_SingleUse(t *testing.T) {
	repo := newStubClientRepo()
	seedCustomer(repo, "111")
	svc := newTestOTPService(repo, &stubThrottle{allowed: true}, &recordingNotifier{})

	challenge, _ := svc.Generate(context.Background(), "111")
	if _, err := svc.Verify(context.Background(), "111", challenge.Code); err != nil {
		t.Fatalf("first Verify returned error: %v", err)
	}
	if _, err := svc.Verify(context.Background(), "111", challenge.Code); err != domain.ErrInvalidOTP {
		t.Fatalf("second Verify: expected ErrInvalidOTP, got %v", err)
	}
}

func TestOTPService_Verify_Expired(t *testing.T) {
	repo := newStubClientRepo()
	seedCustomer(repo, "111")
	svc := newTestOTPService(repo, &stubThrottle{allowed: true}, &recordingNotifier{})

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }
	challenge, _ := svc.Generate(context.Background(), "111")

	// Exactly at the expiry instant the code is already dead.
	svc.now = func() time.Time { return base.Add(4 * time.Minute) }
	if _, err := svc.Verify(context.Background(), "111", challenge.Code); err != domain.ErrOTPExpired {
		t.Fatalf("expected ErrOTPExpired, got %v", err)
	}
}

func TestOTPService_Verify_WrongCode(t *testing.T) {
	repo := newStubClientRepo()
	seedCustomer(repo, "111")
	svc := newTestOTPService(repo, &stubThrottle{allowed: true}, &recordingNotifier{})

	challenge, _ := svc.Generate(context.Background(), "111")
	wrong := "1000"
	if wrong == challenge.Code {
		wrong = "1001"
	}
	if _, err := svc.Verify(context.Background(), "111", wrong); err != domain.ErrInvalidOTP {
		t.Fatalf("expected ErrInvalidOTP, got %v", err)
	}
}

func TestOTPService_Verify_WrongCodeBeatsExpiredCode(t *testing.T) {
	repo := newStubClientRepo()
	seedCustomer(repo, "111")
	svc := newTestOTPService(repo, &stubThrottle{allowed: true}, &recordingNotifier{})

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }
	challenge, _ := svc.Generate(context.Background(), "111")

	// Both wrong and expired: the code mismatch wins.
	svc.now = func() time.Time { return base.Add(10 * time.Minute) }
	wrong := "1000"
	if wrong == challenge.Code {
		wrong = "1001"
	}
	if _, err := svc.Verify(context.Background(), "111", wrong); err != domain.ErrInvalidOTP {
		t.Fatalf("expected ErrInvalidOTP, got %v", err)
	}
}

func TestOTPService_Verify_UnknownPhone(t *testing.T) {
	svc := newTestOTPService(newStubClientRepo(), &stubThrottle{allowed: true}, &recordingNotifier{})

	if _, err := svc.Verify(context.Background(), "999", "1234"); err != domain.ErrCustomerNotFound {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestOTPService_Verify_StoreFailurePropagated(t *testing.T) {
	base := newStubClientRepo()
	seedCustomer(base, "111")
	infra := errors.New("connection reset by peer")
	repo := &faultyClientRepo{
		stubClientRepo: base,
		consumeErr:     fmt.Errorf("consume otp: %w", infra),
	}
	svc := newTestOTPService(repo, &stubThrottle{allowed: true}, &recordingNotifier{})

	_, err := svc.Verify(context.Background(), "111", "1234")
	if !errors.Is(err, infra) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
	if errors.Is(err, domain.ErrCustomerNotFound) || errors.Is(err, domain.ErrInvalidOTP) {
		t.Fatalf("store error misreported as a domain failure: %v", err)
	}
}

func TestOTPService_Verify_LookupFailurePropagated(t *testing.T) {
	base := newStubClientRepo()
	seedCustomer(base, "111")
	infra := errors.New("connection reset by peer")
	repo := &faultyClientRepo{
		stubClientRepo: base,
		findErr:        fmt.Errorf("find client by phone: %w", infra),
	}
	svc := newTestOTPService(repo, &stubThrottle{allowed: true}, &recordingNotifier{})

	// The consume misses (no challenge outstanding) and the follow-up read
	// fails; the read failure must surface, not a customer-not-found verdict.
	_, err := svc.Verify(context.Background(), "111", "1234")
	if !errors.Is(err, infra) {
		t.Fatalf("expected lookup error to propagate, got %v", err)
	}
	if errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("lookup error misreported as ErrCustomerNotFound")
	}
}

func TestOTPService_Verify_NoChallengeOutstanding(t *testing.T) {
	repo := newStubClientRepo()
	seedCustomer(repo, "111")
	svc := newTestOTPService(repo, &stubThrottle{allowed: true}, &recordingNotifier{})

	if _, err := svc.Verify(context.Background(), "111", "1234"); err != domain.ErrInvalidOTP {
		t.Fatalf("expected ErrInvalidOTP, got %v", err)
	}
}
