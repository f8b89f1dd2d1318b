package domain

import "time"

type Product struct {
	ID          string
	Name        string
	Description string
	Category    string
	Price       Money
	ImageURL    string
	Active      bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Product) Info() ProductInfo {
	return ProductInfo{Name: p.Name, Price: p.Price, Category: p.Category}
}
