package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type postgresProductRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresProductRepository(db *sql.DB, logger *logrus.Logger) domain.ProductRepository {
	return &postgresProductRepository{
		db:  db,
		log: logger,
	}
}

// Products are always read with their category joined in, matching the
// eager category embedding of product responses.
const productSelect = `
        SELECT p.product_id, p.product_name, p.price, p.quantity, p.description,
               p.created_at, p.updated_at,
               c.category_id, c.category_name, c.description, c.created_at, c.updated_at
        FROM products p
        JOIN categories c ON c.category_id = p.category_id`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	product := &domain.Product{Category: &domain.Category{}}
	err := row.Scan(
		&product.ProductID,
		&product.ProductName,
		&product.Price,
		&product.Quantity,
		&product.Description,
		&product.CreatedAt,
		&product.UpdatedAt,
		&product.Category.CategoryID,
		&product.Category.CategoryName,
		&product.Category.Description,
		&product.Category.CreatedAt,
		&product.Category.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *postgresProductRepository) GetByID(id int64) (*domain.Product, error) {
	query := productSelect + ` WHERE p.product_id = $1`
	product, err := scanProduct(r.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(domain.KindNotFound, fmt.Sprintf("product with id %d not found", id))
		}
		r.log.Errorf("Failed to get product by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get product by id: %w", err)
	}
	return product, nil
}

func (r *postgresProductRepository) GetByName(name string) (*domain.Product, error) {
	query := productSelect + ` WHERE p.product_name = $1`
	product, err := scanProduct(r.db.QueryRow(query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(domain.KindNotFound, fmt.Sprintf("product with name '%s' not found", name))
		}
		r.log.Errorf("Failed to get product by name '%s': %v", name, err)
		return nil, fmt.Errorf("could not get product by name: %w", err)
	}
	return product, nil
}

func (r *postgresProductRepository) ListPage(page, size int) ([]domain.Product, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 5
	}

	query := productSelect + `
        ORDER BY p.product_id ASC
        LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(query, size, page*size)
	if err != nil {
		r.log.Errorf("Failed to list products (page %d, size %d): %v", page, size, err)
		return nil, fmt.Errorf("could not list products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			r.log.Errorf("Failed to scan product row: %v", err)
			return nil, fmt.Errorf("error scanning product data: %w", err)
		}
		products = append(products, *product)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during products list iteration: %v", err)
		return nil, fmt.Errorf("error iterating products: %w", err)
	}
	return products, nil
}

func (r *postgresProductRepository) Create(product *domain.Product) (*domain.Product, error) {
	query := `
        INSERT INTO products (product_name, category_id, price, quantity, description, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING product_id`
	err := r.db.QueryRow(query,
		product.ProductName,
		product.Category.CategoryID,
		product.Price,
		product.Quantity,
		product.Description,
		product.CreatedAt,
		product.UpdatedAt,
	).Scan(&product.ProductID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			r.log.Warnf("Attempted to create product referencing missing category ID %d", product.Category.CategoryID)
			return nil, domain.NewError(domain.KindReference, fmt.Sprintf("category with id %d does not exist", product.Category.CategoryID))
		}
		r.log.Errorf("Failed to create product '%s': %v", product.ProductName, err)
		return nil, fmt.Errorf("could not create product: %w", err)
	}
	r.log.Infof("Product created with ID: %d, Name: %s", product.ProductID, product.ProductName)
	return product, nil
}

func (r *postgresProductRepository) Update(product *domain.Product) (*domain.Product, error) {
	query := `
        UPDATE products
        SET product_name = $1, category_id = $2, price = $3, quantity = $4, description = $5, updated_at = $6
        WHERE product_id = $7`
	result, err := r.db.Exec(query,
		product.ProductName,
		product.Category.CategoryID,
		product.Price,
		product.Quantity,
		product.Description,
		product.UpdatedAt,
		product.ProductID,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			r.log.Warnf("Attempted to update product ID %d referencing missing category ID %d", product.ProductID, product.Category.CategoryID)
			return nil, domain.NewError(domain.KindReference, fmt.Sprintf("category with id %d does not exist", product.Category.CategoryID))
		}
		r.log.Errorf("Failed to update product ID %d: %v", product.ProductID, err)
		return nil, fmt.Errorf("could not update product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after updating product ID %d: %v", product.ProductID, err)
		return nil, fmt.Errorf("could not confirm product update: %w", err)
	}
	if rowsAffected == 0 {
		return nil, domain.NewError(domain.KindNotFound, fmt.Sprintf("product with id %d not found for update", product.ProductID))
	}

	r.log.Infof("Product updated with ID: %d", product.ProductID)
	return product, nil
}

func (r *postgresProductRepository) DeleteByID(id int64) error {
	result, err := r.db.Exec(`DELETE FROM products WHERE product_id = $1`, id)
	if err != nil {
		r.log.Errorf("Failed to delete product ID %d: %v", id, err)
		return fmt.Errorf("could not delete product: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after deleting product ID %d: %v", id, err)
		return fmt.Errorf("could not confirm product deletion: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewError(domain.KindNotFound, fmt.Sprintf("product with id %d not found for deletion", id))
	}
	r.log.Infof("Product deleted with ID: %d", id)
	return nil
}
