package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/cargolink/logistics-api/internal/core/domain"
	"github.com/cargolink/logistics-api/internal/core/ports"
)

const defaultOTPTTL = 4 * time.Minute

// OTPService implements the one-time-code login flow for customers. Codes
// are 4-digit, uniformly drawn from [1000, 9999], valid for ttl and consumed
// exactly once. This is a deliberately low-security factor: the code proves
// possession of the phone, not cryptographic identity.
type OTPService struct {
	clients  ports.ClientRepository
	tokens   ports.TokenService
	throttle ports.OTPThrottle
	notifier ports.OTPNotifier
	ttl      time.Duration
	logger   zerolog.Logger
	now      func() time.Time
}

func NewOTPService(
	clients ports.ClientRepository,
	tokens ports.TokenService,
	throttle ports.OTPThrottle,
	notifier ports.OTPNotifier,
	ttl time.Duration,
	logger zerolog.Logger,
) *OTPService {
	if ttl <= 0 {
		ttl = defaultOTPTTL
	}
	return &OTPService{
		clients:  clients,
		tokens:   tokens,
		throttle: throttle,
		notifier: notifier,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
	}
}

// Generate creates and stores a fresh code for the client bound to phone,
// overwriting any previous challenge, and hands the code to the notifier.
func (s *OTPService) Generate(ctx context.Context, phone string) (*ports.OTPChallenge, error) {
	client, err := s.clients.FindByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if client.Role == domain.ClientRoleSupplier {
		return nil, domain.ErrSupplierLogin
	}

	if s.throttle != nil {
		allowed, err := s.throttle.Allow(ctx, phone)
		if err != nil {
			return nil, fmt.Errorf("otp throttle: %w", err)
		}
		if !allowed {
			return nil, domain.ErrOTPThrottled
		}
	}

	code := fmt.Sprintf("%d", 1000+rand.Intn(9000))
	expiry := s.now().Add(s.ttl)

	if err := s.clients.SetOTP(ctx, phone, code, expiry); err != nil {
		return nil, err
	}

	if err := s.notifier.SendOTP(ctx, phone, code); err != nil {
		// The challenge is already stored; a failed send is not fatal, the
		// client can request a new code after the cooldown.
		s.logger.Error().Err(err).Str("phone", phone).Msg("otp delivery failed")
	}

	s.logger.Info().Str("client_id", client.ID).Time("expires_at", expiry).Msg("otp generated")
	return &ports.OTPChallenge{Code: code, ExpiresAt: expiry}, nil
}

// Verify consumes the code bound to phone and issues a session token. The
// clearing of the stored code and the success decision are a single
// compare-and-swap against the store, so a code that verified once can never
// verify again, even under concurrent attempts.
func (s *OTPService) Verify(ctx context.Context, phone, code string) (*ports.OTPVerifyResult, error) {
	now := s.now()

	client, err := s.clients.ConsumeOTP(ctx, phone, code, now)
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidOTP) {
			return nil, err
		}
		return nil, s.classifyVerifyFailure(ctx, phone, code, now)
	}

	token, err := s.tokens.Issue(client.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("client_id", client.ID).Msg("otp verified")
	return &ports.OTPVerifyResult{Client: client, Token: token}, nil
}

// classifyVerifyFailure runs after a missed consume to produce the precise
// error. The read never mutates, so racing verifiers still see exactly one
// winner: the code check runs before the expiry check, matching the order
// callers observe on the happy path. Store failures pass through untouched.
func (s *OTPService) classifyVerifyFailure(ctx context.Context, phone, code string, now time.Time) error {
	client, err := s.clients.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return domain.ErrCustomerNotFound
		}
		return err
	}
	if client.Role != domain.ClientRoleCustomer {
		return domain.ErrCustomerNotFound
	}
	if client.OTP == "" || client.OTP != code {
		return domain.ErrInvalidOTP
	}
	if client.OTPExpiry == nil || !now.Before(*client.OTPExpiry) {
		return domain.ErrOTPExpired
	}
	// Matching unexpired code but the consume missed: another verifier won.
	return domain.ErrInvalidOTP
}
