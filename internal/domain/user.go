package domain

import "time"

// User — продавец. Владеет клиентами и заказами, которые создал.
type User struct {
	ID        string
	Name      string
	Firstname string
	Email     string
	// PasswordHash хранит bcrypt-хэш; исходный пароль нигде не сохраняется.
	PasswordHash string
	CreatedAt    time.Time
}

// ValidateInvariants проверяет обязательные поля пользователя.
func (u *User) ValidateInvariants() []error {
	var errs []error

	if u.Name == "" || u.Firstname == "" {
		errs = append(errs, ErrNameRequired)
	}
	if u.Email == "" {
		errs = append(errs, ErrEmailRequired)
	}
	if u.PasswordHash == "" {
		errs = append(errs, ErrPasswordRequired)
	}

	return errs
}
