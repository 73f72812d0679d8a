package domain

import "time"

// Category groups products. CategoryName is unique across the catalog;
// uniqueness is enforced by the use case layer, not by the store.
type Category struct {
	CategoryID   int64     `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

type CategoryRepository interface {
	GetByID(id int64) (*Category, error)
	GetByName(name string) (*Category, error)
	// ListPage returns the 0-indexed page of categories in id order.
	ListPage(page, size int) ([]Category, error)
	Create(category *Category) (*Category, error)
	Update(category *Category) (*Category, error)
	// DeleteWithProducts removes the category and every product that
	// references it inside a single transaction.
	DeleteWithProducts(id int64) error
}
