package usecase

import (
	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type ProductUseCase interface {
	ListProducts(page, size int) ([]domain.Product, error)
	GetProductByID(id int64) (*domain.Product, error)
	AddProduct(product *domain.Product) (*domain.Product, error)
	UpdateProduct(id int64, product *domain.Product) (*domain.Product, error)
	DeleteProduct(id int64) error
}

type productUseCase struct {
	productRepo  domain.ProductRepository
	categoryRepo domain.CategoryRepository
	log          *logrus.Logger
}

func NewProductUseCase(pRepo domain.ProductRepository, cRepo domain.CategoryRepository, logger *logrus.Logger) ProductUseCase {
	return &productUseCase{
		productRepo:  pRepo,
		categoryRepo: cRepo,
		log:          logger,
	}
}

func (uc *productUseCase) ListProducts(page, size int) ([]domain.Product, error) {
	uc.log.Infof("Use Case: Listing products (page: %d, size: %d)", page, size)

	products, err := uc.productRepo.ListPage(page, size)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products: %v", err)
		return nil, domain.NewError(domain.KindInternal, "Something went wrong.")
	}

	if len(products) == 0 {
		uc.log.Warnf("Use Case: No products on page %d (size %d)", page, size)
		return nil, domain.NewError(domain.KindEmpty, "No products found in the system.")
	}

	uc.log.Infof("Use Case: Retrieved %d products", len(products))
	return products, nil
}

func (uc *productUseCase) GetProductByID(id int64) (*domain.Product, error) {
	uc.log.Infof("Use Case: Fetching product ID %d", id)

	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		if domain.IsNotFound(err) {
			uc.log.Warnf("Use Case: Product ID %d not found", id)
			return nil, domain.NewError(domain.KindNotFound, "Product not found in the system.")
		}
		uc.log.Errorf("Use Case: Repository failed to get product ID %d: %v", id, err)
		return nil, domain.NewError(domain.KindInternal, "Something went wrong.")
	}

	return product, nil
}

func (uc *productUseCase) AddProduct(product *domain.Product) (*domain.Product, error) {
	if err := uc.validateFields(product); err != nil {
		return nil, err
	}

	existing, err := uc.productRepo.GetByName(product.ProductName)
	if err != nil && !domain.IsNotFound(err) {
		uc.log.Errorf("Use Case: Name lookup failed for product '%s': %v", product.ProductName, err)
		return nil, domain.NewError(domain.KindInternal, "Something went wrong.")
	}
	if existing != nil {
		uc.log.Warnf("Use Case: Product name '%s' already taken by ID %d", product.ProductName, existing.ProductID)
		return nil, domain.NewError(domain.KindDuplicate, "Product name already exists.")
	}

	category, err := uc.resolveCategory(product.Category)
	if err != nil {
		return nil, err
	}
	product.Category = category

	now := today()
	product.CreatedAt = now
	product.UpdatedAt = now

	created, err := uc.productRepo.Create(product)
	if err != nil {
		if domain.KindOf(err) == domain.KindReference {
			return nil, domain.NewError(domain.KindReference, "Product category not found in the system.")
		}
		uc.log.Errorf("Use Case: Repository failed to create product '%s': %v", product.ProductName, err)
		return nil, domain.NewError(domain.KindInternal, "Something went wrong.")
	}

	uc.log.Infof("Use Case: Product '%s' created with ID %d", created.ProductName, created.ProductID)
	return created, nil
}

func (uc *productUseCase) UpdateProduct(id int64, product *domain.Product) (*domain.Product, error) {
	if err := uc.validateFields(product); err != nil {
		return nil, err
	}
	if product.Category == nil {
		uc.log.Warnf("Use Case: Attempted update for product ID %d without a category", id)
		return nil, domain.NewError(domain.KindValidation, "Product category is required.")
	}

	sameName, err := uc.productRepo.GetByName(product.ProductName)
	if err != nil && !domain.IsNotFound(err) {
		uc.log.Errorf("Use Case: Name lookup failed for product '%s': %v", product.ProductName, err)
		return nil, domain.NewError(domain.KindInternal, "Something went wrong.")
	}
	if sameName != nil && sameName.ProductID != id {
		uc.log.Warnf("Use Case: Product name '%s' already taken by ID %d", product.ProductName, sameName.ProductID)
		return nil, domain.NewError(domain.KindDuplicate, "Product name already exists.")
	}

	category, err := uc.resolveCategory(product.Category)
	if err != nil {
		return nil, err
	}

	existing, err := uc.productRepo.GetByID(id)
	if err != nil {
		if domain.IsNotFound(err) {
			uc.log.Warnf("Use Case: Product ID %d not found for update", id)
			return nil, domain.NewError(domain.KindNotFound, "Product not found in the system.")
		}
		uc.log.Errorf("Use Case: Repository failed to get product ID %d for update: %v", id, err)
		return nil, domain.NewError(domain.KindInternal, "Something went wrong.")
	}

	existing.ProductName = product.ProductName
	existing.Quantity = product.Quantity
	existing.Price = product.Price
	existing.Description = product.Description
	existing.Category = category
	existing.UpdatedAt = today()

	updated, err := uc.productRepo.Update(existing)
	if err != nil {
		if domain.KindOf(err) == domain.KindReference {
			return nil, domain.NewError(domain.KindReference, "Product category not found in the system.")
		}
		uc.log.Errorf("Use Case: Repository failed to update product ID %d: %v", id, err)
		return nil, domain.NewError(domain.KindInternal, "Something went wrong.")
	}

	uc.log.Infof("Use Case: Product ID %d updated", updated.ProductID)
	return updated, nil
}

func (uc *productUseCase) DeleteProduct(id int64) error {
	if _, err := uc.productRepo.GetByID(id); err != nil {
		if domain.IsNotFound(err) {
			uc.log.Warnf("Use Case: Product ID %d not found for delete", id)
			return domain.NewError(domain.KindNotFound, "Product not found in the system.")
		}
		uc.log.Errorf("Use Case: Repository failed to get product ID %d for delete: %v", id, err)
		return domain.NewError(domain.KindInternal, "Something went wrong.")
	}

	if err := uc.productRepo.DeleteByID(id); err != nil {
		if domain.IsNotFound(err) {
			return domain.NewError(domain.KindNotFound, "Product not found in the system.")
		}
		uc.log.Errorf("Use Case: Repository failed to delete product ID %d: %v", id, err)
		return domain.NewError(domain.KindInternal, "Something went wrong.")
	}

	uc.log.Infof("Use Case: Product ID %d deleted", id)
	return nil
}

func (uc *productUseCase) validateFields(product *domain.Product) error {
	if product.ProductName == "" {
		uc.log.Warn("Use Case: Attempted to save product with empty name")
		return domain.NewError(domain.KindValidation, "Product name is required.")
	}
	if product.Description == "" {
		uc.log.Warnf("Use Case: Attempted to save product '%s' with empty description", product.ProductName)
		return domain.NewError(domain.KindValidation, "Product description is required.")
	}
	if product.Price <= 0 {
		uc.log.Warnf("Use Case: Attempted to save product '%s' with invalid price: %f", product.ProductName, product.Price)
		return domain.NewError(domain.KindValidation, "Product price must be greater than 0.")
	}
	if product.Quantity <= 0 {
		uc.log.Warnf("Use Case: Attempted to save product '%s' with invalid quantity: %d", product.ProductName, product.Quantity)
		return domain.NewError(domain.KindValidation, "Product quantity must be greater than 0.")
	}
	return nil
}

// resolveCategory swaps the client-supplied reference for the stored
// category so the persisted product always carries the canonical entity.
func (uc *productUseCase) resolveCategory(ref *domain.Category) (*domain.Category, error) {
	if ref == nil {
		uc.log.Warn("Use Case: Product submitted without a category reference")
		return nil, domain.NewError(domain.KindReference, "Product category not found in the system.")
	}

	category, err := uc.categoryRepo.GetByID(ref.CategoryID)
	if err != nil {
		if domain.IsNotFound(err) {
			uc.log.Warnf("Use Case: Referenced category ID %d does not exist", ref.CategoryID)
			return nil, domain.NewError(domain.KindReference, "Product category not found in the system.")
		}
		uc.log.Errorf("Use Case: Repository failed to resolve category ID %d: %v", ref.CategoryID, err)
		return nil, domain.NewError(domain.KindInternal, "Something went wrong.")
	}
	return category, nil
}
