package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/clientehm/api/internal/platform/apperr"
)

// bcrypt ignores input past 72 bytes.
const maxSecretBytes = 72

// Hasher hashes passwords and keywords with bcrypt.
type Hasher struct {
	cost      int
	minLength int
}

func NewHasher(cost, minLength int) *Hasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	if minLength <= 0 {
		minLength = 8
	}
	return &Hasher{cost: cost, minLength: minLength}
}

func (h *Hasher) Hash(secret string) (string, error) {
	if len(secret) > maxSecretBytes {
		return "", apperr.InvalidArgument("Valor excede o tamanho máximo permitido")
	}
	b, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash secret: %w", err)
	}
	return string(b), nil
}

// Matches reports whether secret matches hash. A malformed hash is an
// error; a mismatch is not.
func (h *Hasher) Matches(hash, secret string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("compare secret: %w", err)
}

// CheckStrength enforces the password policy.
func (h *Hasher) CheckStrength(password string) error {
	if len([]rune(password)) < h.minLength {
		return apperr.WeakPassword(fmt.Sprintf("A senha deve ter no mínimo %d caracteres.", h.minLength))
	}
	if len(password) > maxSecretBytes {
		return apperr.WeakPassword(fmt.Sprintf("A senha não pode exceder %d bytes.", maxSecretBytes))
	}
	return nil
}
