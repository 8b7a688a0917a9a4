package wealthsimple

import (
	"fmt"
	"time"

	"github.com/pquerna/otp/totp"
)

// OTPCode returns the current one-time password for the given
// authenticator secret, using the RFC 6238 defaults the trade
// service's login expects (SHA-1, 6 digits, 30 second step).
func OTPCode(secret string) (string, error) {
	return otpCode(secret, time.Now())
}

func otpCode(secret string, at time.Time) (string, error) {
	code, err := totp.GenerateCode(secret, at)
	if err != nil {
		return "", fmt.Errorf("generating one-time password: %w", err)
	}
	return code, nil
}
