package domain

import "context"

// StockDelta — знаковое изменение остатка товара: отрицательное значение
// списывает остаток, положительное восстанавливает.
type StockDelta struct {
	ProductID string
	Delta     int32
}

// StockLedger применяет пакет дельт к остаткам товаров по принципу
// «всё или ничего»: если хотя бы одна дельта увела бы остаток в минус,
// ни одна дельта пакета не применяется и возвращается
// *InsufficientStockError. Каждая дельта выражается как условная запись
// против текущего сохранённого значения, поэтому повтор неудавшегося
// вызова безопасен.
type StockLedger interface {
	ApplyDeltas(ctx context.Context, deltas []StockDelta) error
}
