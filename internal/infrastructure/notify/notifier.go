// Package notify holds OTP delivery implementations. Production deployments
// substitute a real SMS or email gateway; the log notifier is the default so
// development environments work without one.
package notify

import (
	"context"

	"github.com/rs/zerolog"
)

// LogNotifier writes the send to the log instead of delivering it. The code
// itself is never logged.
type LogNotifier struct {
	logger zerolog.Logger
}

func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) SendOTP(_ context.Context, phone, _ string) error {
	n.logger.Info().Str("phone", phone).Msg("otp dispatched")
	return nil
}
