package service

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/auth"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/validation"
	apperrors "github.com/Fatenkh7/CODSOFT-T2-Backend/pkg/util/errorutil"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func patchString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

// hashPassword checks the plaintext rule and returns the bcrypt hash.
func hashPassword(password string, cost int) (string, error) {
	if err := validation.Var("password", password, auth.PasswordRule); err != nil {
		return "", err
	}
	if len(password) > auth.MaxPasswordBytes {
		return "", passwordTooLong()
	}
	hashed, err := auth.HashPassword(password, cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", passwordTooLong()
	}
	return hashed, err
}

func passwordTooLong() error {
	return apperrors.NewSchemaViolation("password", fmt.Sprintf("password is too long (maximum %d bytes)", auth.MaxPasswordBytes))
}
