package marketplace

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	otpDigits      = 6
	phoneMinDigits = 7
	phoneMaxDigits = 15
	titleMaxLen    = 200
)

// normalizePhone strips separators and returns the number as '+' followed by
// digits, so every spelling of a number maps to one account.
func normalizePhone(phone string) (string, error) {
	phone = strings.TrimSpace(phone)
	phone = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	digits := strings.TrimPrefix(phone, "+")
	if len(digits) < phoneMinDigits || len(digits) > phoneMaxDigits {
		return "", ErrPhoneNotValid
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", ErrPhoneNotValid
		}
	}
	return "+" + digits, nil
}

func validateOTP(code string) error {
	if len(code) != otpDigits {
		return ErrOTPNotValid
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return ErrOTPNotValid
		}
	}
	return nil
}

func generateOTP() (string, error) {
	limit := big.NewInt(1)
	for i := 0; i < otpDigits; i++ {
		limit.Mul(limit, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("failed generate otp: %w", err)
	}
	return fmt.Sprintf("%0*d", otpDigits, n.Int64()), nil
}

func hashCode(code string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	return string(bytes), err
}

func checkCodeHash(code, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(code))
	return err == nil
}

func validateTitle(title, description string) bool {
	title = strings.TrimSpace(title)
	return title != "" && len(title) <= titleMaxLen && strings.TrimSpace(description) != ""
}
