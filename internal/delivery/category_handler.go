package delivery

import (
	"net/http"

	"catalog_service/internal/domain"
	"catalog_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CategoryHandler struct {
	useCase usecase.CategoryUseCase
	log     *logrus.Logger
}

func NewCategoryHandler(uc usecase.CategoryUseCase, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *CategoryHandler) RegisterRoutes(router gin.IRouter) {
	categories := router.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.POST("", h.AddCategory)
		categories.GET("/:id", h.GetCategory)
		categories.PUT("/:id", h.UpdateCategory)
		categories.DELETE("/:id", h.DeleteCategory)
	}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	page := queryInt(c, "page", defaultPage)
	size := queryInt(c, "size", defaultSize)

	categories, err := h.useCase.ListCategories(page, size)
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "Request successful", categories)
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.log.Warnf("Invalid category ID parameter: %s", c.Param("id"))
		BadRequest(c, "Invalid category ID format")
		return
	}

	category, err := h.useCase.GetCategoryByID(id)
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "Request successful", category)
}

func (h *CategoryHandler) AddCategory(c *gin.Context) {
	var category domain.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		h.log.Warnf("Failed to bind JSON for add category: %v", err)
		BadRequest(c, "Invalid request body.")
		return
	}

	created, err := h.useCase.AddCategory(&category)
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "Category added successfully", created)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.log.Warnf("Invalid category ID parameter for update: %s", c.Param("id"))
		BadRequest(c, "Invalid category ID format")
		return
	}

	var category domain.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		h.log.Warnf("Failed to bind JSON for update category ID %d: %v", id, err)
		BadRequest(c, "Invalid request body.")
		return
	}

	updated, err := h.useCase.UpdateCategory(id, &category)
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "Category updated successfully", updated)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.log.Warnf("Invalid category ID parameter for delete: %s", c.Param("id"))
		BadRequest(c, "Invalid category ID format")
		return
	}

	if err := h.useCase.DeleteCategory(id); err != nil {
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "Category and its products deleted successfully", nil)
}
