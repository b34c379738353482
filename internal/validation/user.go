package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MinPasswordLen минимальная длина пароля
const MinPasswordLen = 6

// NormalizeEmail приводит email к каноническому виду: без пробелов по краям, в нижнем регистре.
// Email используется как логин, поэтому регистр не должен влиять на поиск.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateName проверяет, что имя не пустое
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// ValidateEmail проверяет, что email не пустой
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email is required")
	}
	return nil
}

// ValidatePassword проверяет минимальные требования к паролю.
// Длина считается в символах, а не в байтах.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}
	return nil
}

// ValidatePasswordConfirmation проверяет совпадение пароля и подтверждения
func ValidatePasswordConfirmation(password, confirmPassword string) error {
	if password != confirmPassword {
		return fmt.Errorf("passwords do not match")
	}
	return nil
}
