package ports

import (
	"context"
	"time"

	"github.com/cargolink/logistics-api/internal/core/domain"
)

// OTPChallenge is returned by OTPService.Generate. The code is only exposed
// to callers so that non-production environments can echo it; delivery goes
// through the OTPNotifier.
type OTPChallenge struct {
	Code      string
	ExpiresAt time.Time
}

// OTPVerifyResult is returned on successful OTP verification.
type OTPVerifyResult struct {
	Client *domain.Client
	Token  string
}

// OTPService implements the one-time-code login flow for customers.
type OTPService interface {
	// Generate creates a fresh 4-digit code for the client bound to phone,
	// stores it with an absolute expiry, and hands it to the notifier.
	// Suppliers are refused.
	Generate(ctx context.Context, phone string) (*OTPChallenge, error)
	// Verify consumes the code bound to phone. A code verifies at most once.
	Verify(ctx context.Context, phone, code string) (*OTPVerifyResult, error)
}

// OTPNotifier delivers codes out-of-band (SMS, email). Production wires a
// real gateway; development logs the send.
type OTPNotifier interface {
	SendOTP(ctx context.Context, phone, code string) error
}

// OTPThrottle rate-limits code generation per phone number.
type OTPThrottle interface {
	// Allow reports whether a new code may be generated for phone, and, when
	// allowed, starts the cooldown window.
	Allow(ctx context.Context, phone string) (bool, error)
}
