package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/herfando/core-api/pkg/middleware"
)

type Handlers struct {
	Auth       *AuthHandler
	Books      *BookHandler
	Authors    *AuthorHandler
	Categories *CategoryHandler
	AuthMW     *middleware.AuthMiddleware
}

func RegisterRoutes(rg *gin.RouterGroup, h *Handlers) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
	}

	books := rg.Group("/books")
	{
		books.GET("", h.Books.List)
		books.GET("/recommend", h.Books.Recommend)
		books.GET("/:id", h.Books.Detail)
	}
	booksAdmin := books.Group("", h.AuthMW.RequireAuth(), h.AuthMW.RequireAdmin())
	{
		booksAdmin.POST("", h.Books.Create)
		booksAdmin.POST("/import", h.Books.Import)
		booksAdmin.PUT("/:id", h.Books.Update)
		booksAdmin.DELETE("/:id", h.Books.Delete)
	}

	authors := rg.Group("/authors")
	authors.GET("", h.Authors.List)
	authorsAdmin := authors.Group("", h.AuthMW.RequireAuth(), h.AuthMW.RequireAdmin())
	{
		authorsAdmin.POST("", h.Authors.Create)
		authorsAdmin.PUT("/:id", h.Authors.Update)
		authorsAdmin.DELETE("/:id", h.Authors.Delete)
	}

	categories := rg.Group("/categories")
	categories.GET("", h.Categories.List)
	categoriesAdmin := categories.Group("", h.AuthMW.RequireAuth(), h.AuthMW.RequireAdmin())
	{
		categoriesAdmin.POST("", h.Categories.Create)
		categoriesAdmin.PUT("/:id", h.Categories.Update)
		categoriesAdmin.DELETE("/:id", h.Categories.Delete)
	}
}

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthHandler(p Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := p.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
