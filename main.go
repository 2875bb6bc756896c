package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	apiv1 "github.com/herfando/core-api/internal/api/v1"
	"github.com/herfando/core-api/internal/config"
	"github.com/herfando/core-api/internal/db"
	"github.com/herfando/core-api/internal/repository"
	"github.com/herfando/core-api/internal/service"
	"github.com/herfando/core-api/pkg/auth"
	"github.com/herfando/core-api/pkg/middleware"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	if err := godotenv.Load(); err != nil {
		log.WithError(err).Debug(".env file not loaded")
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("DB connection failed")
	}
	defer pool.Close()

	if err := db.RunMigrations(ctx, pool); err != nil {
		log.WithError(err).Fatal("migrations failed")
	}

	userRepo := repository.NewUserRepo(pool)
	bookRepo := repository.NewBookRepo(pool)
	authorRepo := repository.NewAuthorRepo(pool)
	categoryRepo := repository.NewCategoryRepo(pool)

	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL())

	handlers := &apiv1.Handlers{
		Auth:       apiv1.NewAuthHandler(service.NewAuthService(userRepo, hasher, tokens, cfg.RegisterWithToken), log),
		Books:      apiv1.NewBookHandler(service.NewBookService(bookRepo), log),
		Authors:    apiv1.NewAuthorHandler(service.NewAuthorService(authorRepo), log),
		Categories: apiv1.NewCategoryHandler(service.NewCategoryService(categoryRepo), log),
		AuthMW:     middleware.NewAuthMiddleware(tokens, userRepo),
	}

	r := gin.Default()
	r.SetTrustedProxies(nil)
	r.Use(apiv1.CORSMiddleware())
	r.Use(apiv1.RequestIDMiddleware())

	r.GET("/healthz", apiv1.HealthHandler(pool))
	apiv1.RegisterRoutes(r.Group("/api/v1"), handlers)

	log.WithField("addr", cfg.HTTPAddr).Info("server starting")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
