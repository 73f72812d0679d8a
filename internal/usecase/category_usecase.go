package usecase

import (
	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type CategoryUseCase interface {
	ListCategories(page, size int) ([]domain.Category, error)
	GetCategoryByID(id int64) (*domain.Category, error)
	AddCategory(category *domain.Category) (*domain.Category, error)
	UpdateCategory(id int64, category *domain.Category) (*domain.Category, error)
	DeleteCategory(id int64) error
}

type categoryUseCase struct {
	categoryRepo domain.CategoryRepository
	log          *logrus.Logger
}

func NewCategoryUseCase(repo domain.CategoryRepository, logger *logrus.Logger) CategoryUseCase {
	return &categoryUseCase{
		categoryRepo: repo,
		log:          logger,
	}
}

func (uc *categoryUseCase) ListCategories(page, size int) ([]domain.Category, error) {
	uc.log.Infof("Use Case: Listing categories (page: %d, size: %d)", page, size)

	categories, err := uc.categoryRepo.ListPage(page, size)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list categories: %v", err)
		return nil, domain.NewError(domain.KindInternal, "An error occurred while fetching categories.")
	}

	// An empty page is reported as not-found rather than an empty list;
	// existing clients depend on the 404.
	if len(categories) == 0 {
		uc.log.Warnf("Use Case: No categories on page %d (size %d)", page, size)
		return nil, domain.NewError(domain.KindEmpty, "No categories found in the system.")
	}

	uc.log.Infof("Use Case: Retrieved %d categories", len(categories))
	return categories, nil
}

func (uc *categoryUseCase) GetCategoryByID(id int64) (*domain.Category, error) {
	uc.log.Infof("Use Case: Fetching category ID %d", id)

	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		if domain.IsNotFound(err) {
			uc.log.Warnf("Use Case: Category ID %d not found", id)
			return nil, domain.NewError(domain.KindNotFound, "Category not found in the system.")
		}
		uc.log.Errorf("Use Case: Repository failed to get category ID %d: %v", id, err)
		return nil, domain.NewError(domain.KindInternal, "An error occurred while fetching a category.")
	}

	return category, nil
}

func (uc *categoryUseCase) AddCategory(category *domain.Category) (*domain.Category, error) {
	if category.CategoryName == "" {
		uc.log.Warn("Use Case: Attempted to add category with empty name")
		return nil, domain.NewError(domain.KindValidation, "Category name is required.")
	}
	if category.Description == "" {
		uc.log.Warnf("Use Case: Attempted to add category '%s' with empty description", category.CategoryName)
		return nil, domain.NewError(domain.KindValidation, "Category description is required.")
	}

	existing, err := uc.categoryRepo.GetByName(category.CategoryName)
	if err != nil && !domain.IsNotFound(err) {
		uc.log.Errorf("Use Case: Name lookup failed for category '%s': %v", category.CategoryName, err)
		return nil, domain.NewError(domain.KindInternal, "An error occurred while adding the category.")
	}
	if existing != nil {
		uc.log.Warnf("Use Case: Category name '%s' already taken by ID %d", category.CategoryName, existing.CategoryID)
		return nil, domain.NewError(domain.KindDuplicate, "This Category already exist.")
	}

	now := today()
	category.CreatedAt = now
	category.UpdatedAt = now

	created, err := uc.categoryRepo.Create(category)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create category '%s': %v", category.CategoryName, err)
		return nil, domain.NewError(domain.KindInternal, "An error occurred while adding the category.")
	}

	uc.log.Infof("Use Case: Category '%s' created with ID %d", created.CategoryName, created.CategoryID)
	return created, nil
}

func (uc *categoryUseCase) UpdateCategory(id int64, category *domain.Category) (*domain.Category, error) {
	if category.CategoryName == "" {
		uc.log.Warnf("Use Case: Attempted update for category ID %d with empty name", id)
		return nil, domain.NewError(domain.KindValidation, "Category name is required.")
	}
	if category.Description == "" {
		uc.log.Warnf("Use Case: Attempted update for category ID %d with empty description", id)
		return nil, domain.NewError(domain.KindValidation, "Category description is required.")
	}

	existing, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		if domain.IsNotFound(err) {
			uc.log.Warnf("Use Case: Category ID %d not found for update", id)
			return nil, domain.NewError(domain.KindNotFound, "Category not found.")
		}
		uc.log.Errorf("Use Case: Repository failed to get category ID %d for update: %v", id, err)
		return nil, domain.NewError(domain.KindInternal, "An error occurred while updating the category.")
	}

	sameName, err := uc.categoryRepo.GetByName(category.CategoryName)
	if err != nil && !domain.IsNotFound(err) {
		uc.log.Errorf("Use Case: Name lookup failed for category '%s': %v", category.CategoryName, err)
		return nil, domain.NewError(domain.KindInternal, "An error occurred while updating the category.")
	}
	if sameName != nil && sameName.CategoryID != id {
		uc.log.Warnf("Use Case: Category name '%s' already taken by ID %d", category.CategoryName, sameName.CategoryID)
		return nil, domain.NewError(domain.KindDuplicate, "Category name already exists.")
	}

	existing.CategoryName = category.CategoryName
	existing.Description = category.Description
	existing.UpdatedAt = today()

	updated, err := uc.categoryRepo.Update(existing)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to update category ID %d: %v", id, err)
		return nil, domain.NewError(domain.KindInternal, "An error occurred while updating the category.")
	}

	uc.log.Infof("Use Case: Category ID %d updated", updated.CategoryID)
	return updated, nil
}

func (uc *categoryUseCase) DeleteCategory(id int64) error {
	if _, err := uc.categoryRepo.GetByID(id); err != nil {
		if domain.IsNotFound(err) {
			uc.log.Warnf("Use Case: Category ID %d not found for delete", id)
			return domain.NewError(domain.KindNotFound, "Category not found in the system.")
		}
		uc.log.Errorf("Use Case: Repository failed to get category ID %d for delete: %v", id, err)
		return domain.NewError(domain.KindInternal, "An error occurred while deleting the category.")
	}

	if err := uc.categoryRepo.DeleteWithProducts(id); err != nil {
		if domain.IsNotFound(err) {
			return domain.NewError(domain.KindNotFound, "Category not found in the system.")
		}
		uc.log.Errorf("Use Case: Repository failed cascade delete for category ID %d: %v", id, err)
		return domain.NewError(domain.KindInternal, "An error occurred while deleting the category.")
	}

	uc.log.Infof("Use Case: Category ID %d and its products deleted", id)
	return nil
}
