package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultCooldown = time.Minute

// OTPThrottle rate-limits OTP generation per phone number.
// Key format: otp_cooldown:<phone>
type OTPThrottle struct {
	client   *redis.Client
	cooldown time.Duration
}

// NewOTPThrottle creates an OTPThrottle wrapping the given Redis client.
func NewOTPThrottle(client *redis.Client, cooldown time.Duration) *OTPThrottle {
	if cooldown <= 0 {
		cooldown = defaultCooldown
	}
	return &OTPThrottle{client: client, cooldown: cooldown}
}

// Allow reports whether a new code may be generated for phone. The SETNX is
// atomic: the first caller in a cooldown window wins and starts the window,
// every other caller is refused until it expires.
func (t *OTPThrottle) Allow(ctx context.Context, phone string) (bool, error) {
	ok, err := t.client.SetNX(ctx, t.key(phone), "1", t.cooldown).Result()
	if err != nil {
		return false, fmt.Errorf("otp cooldown check: %w", err)
	}
	return ok, nil
}

func (t *OTPThrottle) key(phone string) string {
	return fmt.Sprintf("otp_cooldown:%s", phone)
}
