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

type BookHandler struct {
	bookService *service.BookService
	log         *logrus.Logger
}

func NewBookHandler(bookService *service.BookService, log *logrus.Logger) *BookHandler {
	return &BookHandler{bookService: bookService, log: log}
}

type BookRequest struct {
	Title           string  `json:"title" binding:"required"`
	Description     string  `json:"description"`
	ISBN            string  `json:"isbn" binding:"required"`
	PublishedYear   int     `json:"published_year"`
	CoverImage      string  `json:"cover_image"`
	Price           float64 `json:"price"`
	AuthorID        int64   `json:"author_id" binding:"required"`
	CategoryID      int64   `json:"category_id" binding:"required"`
	TotalCopies     int     `json:"total_copies" binding:"required"`
	AvailableCopies int     `json:"available_copies"`
}

func (r *BookRequest) toModel() *model.Book {
	return &model.Book{
		Title:           r.Title,
		Description:     r.Description,
		ISBN:            r.ISBN,
		PublishedYear:   r.PublishedYear,
		CoverImage:      r.CoverImage,
		Price:           r.Price,
		AuthorID:        r.AuthorID,
		CategoryID:      r.CategoryID,
		TotalCopies:     r.TotalCopies,
		AvailableCopies: r.AvailableCopies,
	}
}

func (h *BookHandler) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid request parameters",
			Errors:  gin.H{"validation_error": "page must be a number"},
			Meta:    meta(c),
		})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid request parameters",
			Errors:  gin.H{"validation_error": "limit must be a number"},
			Meta:    meta(c),
		})
		return
	}

	books, pagination, err := h.bookService.List(c.Request.Context(), page, limit)
	if err != nil {
		h.log.WithError(err).Error("failed to list books")
		c.JSON(http.StatusInternalServerError, APIResponse{
			Success: false,
			Message: "Server error",
			Meta:    meta(c),
		})
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: "List books fetched",
		Data: gin.H{
			"books":      books,
			"pagination": pagination,
		},
		Meta: meta(c),
	})
}

func (h *BookHandler) Recommend(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid request parameters",
			Errors:  gin.H{"validation_error": "limit must be a number"},
			Meta:    meta(c),
		})
		return
	}

	books, err := h.bookService.Recommend(c.Request.Context(), limit)
	if err != nil {
		h.log.WithError(err).Error("failed to recommend books")
		c.JSON(http.StatusInternalServerError, APIResponse{
			Success: false,
			Message: "Server error",
			Meta:    meta(c),
		})
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: "Recommended books",
		Data:    gin.H{"mode": "random", "books": books},
		Meta:    meta(c),
	})
}

func (h *BookHandler) Detail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid book ID",
			Errors:  gin.H{"error": "book ID must be a number"},
			Meta:    meta(c),
		})
		return
	}

	book, err := h.bookService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, APIResponse{
				Success: false,
				Message: "Book not found",
				Meta:    meta(c),
			})
			return
		}
		h.log.WithError(err).Error("failed to get book")
		c.JSON(http.StatusInternalServerError, APIResponse{
			Success: false,
			Message: "Server error",
			Meta:    meta(c),
		})
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: "Book detail fetched",
		Data:    book,
		Meta:    meta(c),
	})
}

func (h *BookHandler) Create(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid request parameters",
			Errors:  gin.H{"validation_error": err.Error()},
			Meta:    meta(c),
		})
		return
	}

	book := req.toModel()
	if err := h.bookService.Create(c.Request.Context(), book); err != nil {
		h.log.WithError(err).Error("failed to create book")
		c.JSON(http.StatusInternalServerError, APIResponse{
			Success: false,
			Message: "Server error",
			Meta:    meta(c),
		})
		return
	}

	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Message: "Book created",
		Data:    book,
		Meta:    meta(c),
	})
}

func (h *BookHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid book ID",
			Errors:  gin.H{"error": "book ID must be a number"},
			Meta:    meta(c),
		})
		return
	}

	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid request parameters",
			Errors:  gin.H{"validation_error": err.Error()},
			Meta:    meta(c),
		})
		return
	}

	book := req.toModel()
	book.ID = id
	if err := h.bookService.Update(c.Request.Context(), book); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, APIResponse{
				Success: false,
				Message: "Book not found",
				Meta:    meta(c),
			})
			return
		}
		h.log.WithError(err).Error("failed to update book")
		c.JSON(http.StatusInternalServerError, APIResponse{
			Success: false,
			Message: "Server error",
			Meta:    meta(c),
		})
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: "Book updated",
		Data:    book,
		Meta:    meta(c),
	})
}

func (h *BookHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid book ID",
			Errors:  gin.H{"error": "book ID must be a number"},
			Meta:    meta(c),
		})
		return
	}

	if err := h.bookService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, APIResponse{
				Success: false,
				Message: "Book not found",
				Meta:    meta(c),
			})
			return
		}
		h.log.WithError(err).Error("failed to delete book")
		c.JSON(http.StatusInternalServerError, APIResponse{
			Success: false,
			Message: "Server error",
			Meta:    meta(c),
		})
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: "Book deleted",
		Meta:    meta(c),
	})
}

// Import accepts an xlsx workbook and bulk-inserts books from its Books
// sheet.
func (h *BookHandler) Import(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "File upload failed",
			Errors:  gin.H{"upload_error": "a file form field is required"},
			Meta:    meta(c),
		})
		return
	}

	f, err := file.Open()
	if err != nil {
		h.log.WithError(err).Error("failed to open uploaded file")
		c.JSON(http.StatusInternalServerError, APIResponse{
			Success: false,
			Message: "Failed to open file",
			Meta:    meta(c),
		})
		return
	}
	defer f.Close()

	report, err := h.bookService.Import(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid Excel file",
			Errors:  gin.H{"file_error": err.Error()},
			Meta:    meta(c),
		})
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: "Import successful",
		Data:    report,
		Meta:    meta(c),
	})
}
