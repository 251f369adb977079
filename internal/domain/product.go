package domain

// Product представляет товар каталога.
// Stock изменяется только сервисом жизненного цикла заказов.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Stock       int
}

// Validate проверяет поля товара перед созданием.
func (p *Product) Validate() error {
	if p.Name == "" {
		return NewValidationError("Product name is required.")
	}
	if p.Price < 0 {
		return NewValidationError("Price must be non-negative.")
	}
	if p.Stock < 0 {
		return NewValidationError("Stock must be non-negative.")
	}
	return nil
}
