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

type AuthorHandler struct {
	authorService *service.AuthorService
	log           *logrus.Logger
}

func NewAuthorHandler(authorService *service.AuthorService, log *logrus.Logger) *AuthorHandler {
	return &AuthorHandler{authorService: authorService, log: log}
}

type AuthorRequest struct {
	Name string `json:"name" binding:"required"`
	Bio  string `json:"bio"`
}

func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.authorService.List(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("failed to list authors")
		c.JSON(http.StatusInternalServerError, APIResponse{
			Success: false,
			Message: "Server error",
			Meta:    meta(c),
		})
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: "Authors fetched successfully",
		Data:    gin.H{"authors": authors},
		Meta:    meta(c),
	})
}

func (h *AuthorHandler) Create(c *gin.Context) {
	var req AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid request parameters",
			Errors:  gin.H{"validation_error": err.Error()},
			Meta:    meta(c),
		})
		return
	}

	author := &model.Author{Name: req.Name, Bio: req.Bio}
	if err := h.authorService.Create(c.Request.Context(), author); err != nil {
		h.log.WithError(err).Error("failed to create author")
		c.JSON(http.StatusInternalServerError, APIResponse{
			Success: false,
			Message: "Server error",
			Meta:    meta(c),
		})
		return
	}

	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Message: "Author created successfully",
		Data:    author,
		Meta:    meta(c),
	})
}

func (h *AuthorHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid author ID",
			Errors:  gin.H{"error": "author ID must be a number"},
			Meta:    meta(c),
		})
		return
	}

	var req AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid request parameters",
			Errors:  gin.H{"validation_error": err.Error()},
			Meta:    meta(c),
		})
		return
	}

	author := &model.Author{ID: id, Name: req.Name, Bio: req.Bio}
	if err := h.authorService.Update(c.Request.Context(), author); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, APIResponse{
				Success: false,
				Message: "Author not found",
				Meta:    meta(c),
			})
			return
		}
		h.log.WithError(err).Error("failed to update author")
		c.JSON(http.StatusInternalServerError, APIResponse{
			Success: false,
			Message: "Server error",
			Meta:    meta(c),
		})
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: "Author updated successfully",
		Data:    author,
		Meta:    meta(c),
	})
}

func (h *AuthorHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid author ID",
			Errors:  gin.H{"error": "author ID must be a number"},
			Meta:    meta(c),
		})
		return
	}

	if err := h.authorService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, APIResponse{
				Success: false,
				Message: "Author not found",
				Meta:    meta(c),
			})
			return
		}
		h.log.WithError(err).Error("failed to delete author")
		c.JSON(http.StatusInternalServerError, APIResponse{
			Success: false,
			Message: "Server error",
			Meta:    meta(c),
		})
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: "Author deleted successfully",
		Meta:    meta(c),
	})
}
