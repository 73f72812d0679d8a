package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type postgresCategoryRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresCategoryRepository(db *sql.DB, logger *logrus.Logger) domain.CategoryRepository {
	return &postgresCategoryRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresCategoryRepository) GetByID(id int64) (*domain.Category, error) {
	query := `
        SELECT category_id, category_name, description, created_at, updated_at
        FROM categories
        WHERE category_id = $1`
	category := &domain.Category{}
	err := r.db.QueryRow(query, id).Scan(
		&category.CategoryID,
		&category.CategoryName,
		&category.Description,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(domain.KindNotFound, fmt.Sprintf("category with id %d not found", id))
		}
		r.log.Errorf("Failed to get category by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get category by id: %w", err)
	}
	return category, nil
}

func (r *postgresCategoryRepository) GetByName(name string) (*domain.Category, error) {
	query := `
        SELECT category_id, category_name, description, created_at, updated_at
        FROM categories
        WHERE category_name = $1`
	category := &domain.Category{}
	err := r.db.QueryRow(query, name).Scan(
		&category.CategoryID,
		&category.CategoryName,
		&category.Description,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(domain.KindNotFound, fmt.Sprintf("category with name '%s' not found", name))
		}
		r.log.Errorf("Failed to get category by name '%s': %v", name, err)
		return nil, fmt.Errorf("could not get category by name: %w", err)
	}
	return category, nil
}

func (r *postgresCategoryRepository) ListPage(page, size int) ([]domain.Category, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 5
	}

	query := `
        SELECT category_id, category_name, description, created_at, updated_at
        FROM categories
        ORDER BY category_id ASC
        LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(query, size, page*size)
	if err != nil {
		r.log.Errorf("Failed to list categories (page %d, size %d): %v", page, size, err)
		return nil, fmt.Errorf("could not list categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(
			&category.CategoryID,
			&category.CategoryName,
			&category.Description,
			&category.CreatedAt,
			&category.UpdatedAt,
		); err != nil {
			r.log.Errorf("Failed to scan category row: %v", err)
			return nil, fmt.Errorf("error scanning category data: %w", err)
		}
		categories = append(categories, category)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during categories list iteration: %v", err)
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}
	return categories, nil
}

func (r *postgresCategoryRepository) Create(category *domain.Category) (*domain.Category, error) {
	query := `
        INSERT INTO categories (category_name, description, created_at, updated_at)
        VALUES ($1, $2, $3, $4)
        RETURNING category_id`
	err := r.db.QueryRow(query,
		category.CategoryName,
		category.Description,
		category.CreatedAt,
		category.UpdatedAt,
	).Scan(&category.CategoryID)
	if err != nil {
		r.log.Errorf("Failed to create category '%s': %v", category.CategoryName, err)
		return nil, fmt.Errorf("could not create category: %w", err)
	}
	r.log.Infof("Category created with ID: %d, Name: %s", category.CategoryID, category.CategoryName)
	return category, nil
}

func (r *postgresCategoryRepository) Update(category *domain.Category) (*domain.Category, error) {
	query := `
        UPDATE categories
        SET category_name = $1, description = $2, updated_at = $3
        WHERE category_id = $4`
	result, err := r.db.Exec(query,
		category.CategoryName,
		category.Description,
		category.UpdatedAt,
		category.CategoryID,
	)
	if err != nil {
		r.log.Errorf("Failed to update category ID %d: %v", category.CategoryID, err)
		return nil, fmt.Errorf("could not update category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after updating category ID %d: %v", category.CategoryID, err)
		return nil, fmt.Errorf("could not confirm category update: %w", err)
	}
	if rowsAffected == 0 {
		return nil, domain.NewError(domain.KindNotFound, fmt.Sprintf("category with id %d not found for update", category.CategoryID))
	}

	r.log.Infof("Category updated with ID: %d", category.CategoryID)
	return category, nil
}

// DeleteWithProducts removes the category and its products in one
// transaction so a failure mid-delete leaves no half-removed state.
func (r *postgresCategoryRepository) DeleteWithProducts(id int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		r.log.Errorf("Failed to begin cascade delete for category ID %d: %v", id, err)
		return fmt.Errorf("could not begin category delete: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM products WHERE category_id = $1`, id); err != nil {
		r.log.Errorf("Failed to delete products of category ID %d: %v", id, err)
		return fmt.Errorf("could not delete products of category: %w", err)
	}

	result, err := tx.Exec(`DELETE FROM categories WHERE category_id = $1`, id)
	if err != nil {
		r.log.Errorf("Failed to delete category ID %d: %v", id, err)
		return fmt.Errorf("could not delete category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after deleting category ID %d: %v", id, err)
		return fmt.Errorf("could not confirm category deletion: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewError(domain.KindNotFound, fmt.Sprintf("category with id %d not found for deletion", id))
	}

	if err := tx.Commit(); err != nil {
		r.log.Errorf("Failed to commit cascade delete for category ID %d: %v", id, err)
		return fmt.Errorf("could not commit category delete: %w", err)
	}

	r.log.Infof("Category deleted with ID: %d (products cascaded)", id)
	return nil
}
