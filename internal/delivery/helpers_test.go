package delivery

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"catalog_service/internal/domain"
	"catalog_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newRouter(categoryUC usecase.CategoryUseCase, productUC usecase.ProductUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	if categoryUC != nil {
		NewCategoryHandler(categoryUC, testLogger()).RegisterRoutes(api)
	}
	if productUC != nil {
		NewProductHandler(productUC, testLogger()).RegisterRoutes(api)
	}
	return router
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

// stubCategoryUseCase lets each test pin only the calls it expects.
type stubCategoryUseCase struct {
	listFn   func(page, size int) ([]domain.Category, error)
	getFn    func(id int64) (*domain.Category, error)
	addFn    func(category *domain.Category) (*domain.Category, error)
	updateFn func(id int64, category *domain.Category) (*domain.Category, error)
	deleteFn func(id int64) error
}

func (s *stubCategoryUseCase) ListCategories(page, size int) ([]domain.Category, error) {
	return s.listFn(page, size)
}
func (s *stubCategoryUseCase) GetCategoryByID(id int64) (*domain.Category, error) {
	return s.getFn(id)
}
func (s *stubCategoryUseCase) AddCategory(category *domain.Category) (*domain.Category, error) {
	return s.addFn(category)
}
func (s *stubCategoryUseCase) UpdateCategory(id int64, category *domain.Category) (*domain.Category, error) {
	return s.updateFn(id, category)
}
func (s *stubCategoryUseCase) DeleteCategory(id int64) error {
	return s.deleteFn(id)
}

type stubProductUseCase struct {
	listFn   func(page, size int) ([]domain.Product, error)
	getFn    func(id int64) (*domain.Product, error)
	addFn    func(product *domain.Product) (*domain.Product, error)
	updateFn func(id int64, product *domain.Product) (*domain.Product, error)
	deleteFn func(id int64) error
}

func (s *stubProductUseCase) ListProducts(page, size int) ([]domain.Product, error) {
	return s.listFn(page, size)
}
func (s *stubProductUseCase) GetProductByID(id int64) (*domain.Product, error) {
	return s.getFn(id)
}
func (s *stubProductUseCase) AddProduct(product *domain.Product) (*domain.Product, error) {
	return s.addFn(product)
}
func (s *stubProductUseCase) UpdateProduct(id int64, product *domain.Product) (*domain.Product, error) {
	return s.updateFn(id, product)
}
func (s *stubProductUseCase) DeleteProduct(id int64) error {
	return s.deleteFn(id)
}
