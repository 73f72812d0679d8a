package domain

import "time"

// Product always carries the full category it belongs to. Clients submit
// only category.categoryId; the use case layer resolves it to the stored
// category before the product is persisted or returned.
type Product struct {
	ProductID   int64     `json:"productId"`
	ProductName string    `json:"productName"`
	Category    *Category `json:"category"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

type ProductRepository interface {
	// GetByID loads the product with its category eagerly joined.
	GetByID(id int64) (*Product, error)
	GetByName(name string) (*Product, error)
	// ListPage returns the 0-indexed page of products in id order,
	// categories included.
	ListPage(page, size int) ([]Product, error)
	Create(product *Product) (*Product, error)
	Update(product *Product) (*Product, error)
	DeleteByID(id int64) error
}
