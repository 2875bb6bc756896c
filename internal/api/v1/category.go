package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/herfando/core-api/internal/model"
	"github.com/herfando/core-api/internal/service"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
	log             *logrus.Logger
}

func NewCategoryHandler(categoryService *service.CategoryService, log *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, log: log}
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("failed to list categories")
		c.JSON(http.StatusInternalServerError, APIResponse{
			Success: false,
			Message: "Failed to fetch categories",
			Data:    gin.H{"categories": []model.Category{}},
			Meta:    meta(c),
		})
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: "Categories with books fetched successfully",
		Data:    gin.H{"categories": categories},
		Meta:    meta(c),
	})
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid request parameters",
			Errors:  gin.H{"validation_error": err.Error()},
			Meta:    meta(c),
		})
		return
	}

	category := &model.Category{Name: req.Name}
	if err := h.categoryService.Create(c.Request.Context(), category); err != nil {
		h.log.WithError(err).Error("failed to create category")
		c.JSON(http.StatusInternalServerError, APIResponse{
			Success: false,
			Message: "Server error",
			Meta:    meta(c),
		})
		return
	}

	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Message: "Category created successfully",
		Data:    category,
		Meta:    meta(c),
	})
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid category ID",
			Errors:  gin.H{"error": "category ID must be a number"},
			Meta:    meta(c),
		})
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid request parameters",
			Errors:  gin.H{"validation_error": err.Error()},
			Meta:    meta(c),
		})
		return
	}

	category := &model.Category{ID: id, Name: req.Name}
	if err := h.categoryService.Update(c.Request.Context(), category); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, APIResponse{
				Success: false,
				Message: "Category not found",
				Meta:    meta(c),
			})
			return
		}
		h.log.WithError(err).Error("failed to update category")
		c.JSON(http.StatusInternalServerError, APIResponse{
			Success: false,
			Message: "Server error",
			Meta:    meta(c),
		})
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: "Category updated successfully",
		Data:    category,
		Meta:    meta(c),
	})
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid category ID",
			Errors:  gin.H{"error": "category ID must be a number"},
			Meta:    meta(c),
		})
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, APIResponse{
				Success: false,
				Message: "Category not found",
				Meta:    meta(c),
			})
			return
		}
		h.log.WithError(err).Error("failed to delete category")
		c.JSON(http.StatusInternalServerError, APIResponse{
			Success: false,
			Message: "Server error",
			Meta:    meta(c),
		})
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: "Category deleted successfully",
		Meta:    meta(c),
	})
}
