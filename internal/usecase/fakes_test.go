package usecase

import (
	"fmt"
	"io"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// fakeStore holds categories and products in insertion order so the
// workflows can be exercised without a database. failWith, when set,
// makes every repository call fail with that error.
type fakeStore struct {
	categories     []domain.Category
	products       []domain.Product
	nextCategoryID int64
	nextProductID  int64
	failWith       error
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextCategoryID: 1, nextProductID: 1}
}

func (s *fakeStore) categoryRepo() domain.CategoryRepository { return &fakeCategoryRepo{store: s} }
func (s *fakeStore) productRepo() domain.ProductRepository   { return &fakeProductRepo{store: s} }

type fakeCategoryRepo struct {
	store *fakeStore
}

func (r *fakeCategoryRepo) GetByID(id int64) (*domain.Category, error) {
	if r.store.failWith != nil {
		return nil, r.store.failWith
	}
	for i := range r.store.categories {
		if r.store.categories[i].CategoryID == id {
			category := r.store.categories[i]
			return &category, nil
		}
	}
	return nil, domain.NewError(domain.KindNotFound, fmt.Sprintf("category with id %d not found", id))
}

func (r *fakeCategoryRepo) GetByName(name string) (*domain.Category, error) {
	if r.store.failWith != nil {
		return nil, r.store.failWith
	}
	for i := range r.store.categories {
		if r.store.categories[i].CategoryName == name {
			category := r.store.categories[i]
			return &category, nil
		}
	}
	return nil, domain.NewError(domain.KindNotFound, fmt.Sprintf("category with name '%s' not found", name))
}

func (r *fakeCategoryRepo) ListPage(page, size int) ([]domain.Category, error) {
	if r.store.failWith != nil {
		return nil, r.store.failWith
	}
	return pageOf(r.store.categories, page, size), nil
}

func (r *fakeCategoryRepo) Create(category *domain.Category) (*domain.Category, error) {
	if r.store.failWith != nil {
		return nil, r.store.failWith
	}
	category.CategoryID = r.store.nextCategoryID
	r.store.nextCategoryID++
	r.store.categories = append(r.store.categories, *category)
	return category, nil
}

func (r *fakeCategoryRepo) Update(category *domain.Category) (*domain.Category, error) {
	if r.store.failWith != nil {
		return nil, r.store.failWith
	}
	for i := range r.store.categories {
		if r.store.categories[i].CategoryID == category.CategoryID {
			r.store.categories[i] = *category
			return category, nil
		}
	}
	return nil, domain.NewError(domain.KindNotFound, fmt.Sprintf("category with id %d not found for update", category.CategoryID))
}

func (r *fakeCategoryRepo) DeleteWithProducts(id int64) error {
	if r.store.failWith != nil {
		return r.store.failWith
	}
	for i := range r.store.categories {
		if r.store.categories[i].CategoryID == id {
			r.store.categories = append(r.store.categories[:i], r.store.categories[i+1:]...)
			kept := r.store.products[:0]
			for _, product := range r.store.products {
				if product.Category == nil || product.Category.CategoryID != id {
					kept = append(kept, product)
				}
			}
			r.store.products = kept
			return nil
		}
	}
	return domain.NewError(domain.KindNotFound, fmt.Sprintf("category with id %d not found for deletion", id))
}

type fakeProductRepo struct {
	store *fakeStore
}

func (r *fakeProductRepo) GetByID(id int64) (*domain.Product, error) {
	if r.store.failWith != nil {
		return nil, r.store.failWith
	}
	for i := range r.store.products {
		if r.store.products[i].ProductID == id {
			product := r.store.products[i]
			return &product, nil
		}
	}
	return nil, domain.NewError(domain.KindNotFound, fmt.Sprintf("product with id %d not found", id))
}

func (r *fakeProductRepo) GetByName(name string) (*domain.Product, error) {
	if r.store.failWith != nil {
		return nil, r.store.failWith
	}
	for i := range r.store.products {
		if r.store.products[i].ProductName == name {
			product := r.store.products[i]
			return &product, nil
		}
	}
	return nil, domain.NewError(domain.KindNotFound, fmt.Sprintf("product with name '%s' not found", name))
}

func (r *fakeProductRepo) ListPage(page, size int) ([]domain.Product, error) {
	if r.store.failWith != nil {
		return nil, r.store.failWith
	}
	return pageOf(r.store.products, page, size), nil
}

func (r *fakeProductRepo) Create(product *domain.Product) (*domain.Product, error) {
	if r.store.failWith != nil {
		return nil, r.store.failWith
	}
	product.ProductID = r.store.nextProductID
	r.store.nextProductID++
	r.store.products = append(r.store.products, *product)
	return product, nil
}

func (r *fakeProductRepo) Update(product *domain.Product) (*domain.Product, error) {
	if r.store.failWith != nil {
		return nil, r.store.failWith
	}
	for i := range r.store.products {
		if r.store.products[i].ProductID == product.ProductID {
			r.store.products[i] = *product
			return product, nil
		}
	}
	return nil, domain.NewError(domain.KindNotFound, fmt.Sprintf("product with id %d not found for update", product.ProductID))
}

func (r *fakeProductRepo) DeleteByID(id int64) error {
	if r.store.failWith != nil {
		return r.store.failWith
	}
	for i := range r.store.products {
		if r.store.products[i].ProductID == id {
			r.store.products = append(r.store.products[:i], r.store.products[i+1:]...)
			return nil
		}
	}
	return domain.NewError(domain.KindNotFound, fmt.Sprintf("product with id %d not found for deletion", id))
}

func pageOf[T any](items []T, page, size int) []T {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 5
	}
	start := page * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}
