package domain

import "regexp"

// Минимальная проверка формы local@domain; полноценная RFC-валидация здесь не нужна.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// User представляет покупателя.
type User struct {
	ID       int64
	Username string
	Email    string
}

// Validate проверяет обязательные поля перед созданием пользователя.
func (u *User) Validate() error {
	if u.Username == "" {
		return NewValidationError("Username is required.")
	}
	if u.Email == "" {
		return NewValidationError("Email is required.")
	}
	if !emailPattern.MatchString(u.Email) {
		return NewValidationError("Invalid email format.")
	}
	return nil
}
