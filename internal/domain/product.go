package domain

import "time"

// Product — позиция каталога. Stock — единственное конкурентно изменяемое
// поле: оно мутирует только как побочный эффект create/update/delete заказа
// и никогда не опускается ниже нуля.
type Product struct {
	ID        string
	Name      string
	Stock     int32
	Price     float64
	CreatedAt time.Time
}

// ValidateInvariants проверяет базовые инварианты товара.
func (p *Product) ValidateInvariants() []error {
	var errs []error

	if p.Name == "" {
		errs = append(errs, ErrNameRequired)
	}
	if p.Stock < 0 {
		errs = append(errs, ErrStockNegative)
	}
	if p.Price < 0 {
		errs = append(errs, ErrPriceNegative)
	}

	return errs
}
