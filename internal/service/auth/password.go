package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/vladislavdragonenkov/salesops/internal/domain"
)

// DefaultBcryptCost соответствует стоимости хэширования в проде.
const DefaultBcryptCost = 10

// PasswordHasher хэширует и проверяет пароли через bcrypt.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher создаёт hasher с заданной стоимостью; cost <= 0
// заменяется значением по умолчанию.
func NewPasswordHasher(cost int) PasswordHasher {
	if cost <= 0 {
		cost = DefaultBcryptCost
	}
	return PasswordHasher{cost: cost}
}

// Hash возвращает bcrypt-хэш пароля.
func (h PasswordHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", domain.ErrPasswordRequired
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Compare сверяет пароль с хэшем; несовпадение возвращается как
// ErrInvalidCredentials, чтобы не раскрывать причину отказа.
func (h PasswordHasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return domain.ErrInvalidCredentials
	}
	return fmt.Errorf("compare password: %w", err)
}
