package models

import "time"

// User представляет зарегистрированного пользователя
type User struct {
	CreatedAt    time.Time `json:"created_at"` // время регистрации
	ID           string    `json:"id"`         // UUID пользователя
	Name         string    `json:"name"`       // отображаемое имя
	Email        string    `json:"email"`      // уникальный email в нижнем регистре, используется как логин
	PasswordHash string    `json:"-"`          // bcrypt хеш пароля, наружу не отдается
}
