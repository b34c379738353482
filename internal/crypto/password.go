package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch возвращается, если пароль не соответствует хешу
var ErrPasswordMismatch = errors.New("password does not match")

// PasswordCost стоимость bcrypt по умолчанию
const PasswordCost = bcrypt.DefaultCost

// Hasher хеширует и проверяет пароли с помощью bcrypt.
// Cost можно уменьшить в тестах (bcrypt.MinCost), чтобы они работали быстрее.
type Hasher struct {
	Cost int
}

// NewHasher создает Hasher с заданной стоимостью
func NewHasher(cost int) *Hasher {
	return &Hasher{Cost: cost}
}

// HashPassword возвращает bcrypt хеш пароля
func (h *Hasher) HashPassword(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = PasswordCost
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashed), nil
}

// VerifyPassword проверяет пароль против сохраненного хеша.
// Возвращает ErrPasswordMismatch при несовпадении.
func (h *Hasher) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword == "" {
		return fmt.Errorf("hashed password cannot be empty")
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return fmt.Errorf("failed to compare password: %w", err)
	}

	return nil
}
