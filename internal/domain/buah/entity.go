package buah

import "time"

// Buah is a fruit product listed by a store
type Buah struct {
	ID          string
	Name        string
	Price       string
	Stock       *int
	Unit        string
	Image       string
	Description string
	CreatorID   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (b *Buah) StockOrZero() int {
	if b.Stock == nil {
		return 0
	}
	return *b.Stock
}
