package domain

import "time"

// Customer — клиент продавца. SalesmanID назначается при создании и
// больше не меняется: все чтения и мутации, кроме создания, доступны
// только владельцу.
type Customer struct {
	ID        string
	Name      string
	Firstname string
	Company   string
	Email     string
	Phone     string
	SalesmanID string
	CreatedAt  time.Time
}

// ValidateInvariants проверяет обязательные поля клиента.
func (c *Customer) ValidateInvariants() []error {
	var errs []error

	if c.Name == "" || c.Firstname == "" {
		errs = append(errs, ErrNameRequired)
	}
	if c.Company == "" {
		errs = append(errs, ErrCompanyRequired)
	}
	if c.Email == "" {
		errs = append(errs, ErrEmailRequired)
	}

	return errs
}
