// @title         edulink API
// @version       1.0
// @description   Backend for the edulink study-group platform: email/password authentication with JWT sessions, a user directory in PostgreSQL and study groups in MongoDB.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token. Formats supported: "Bearer <JWT>" or "<JWT>".
package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	swagger "github.com/gofiber/swagger"

	_ "github.com/mathewkioko/edulink/docs"

	httpapi "github.com/mathewkioko/edulink/api/http"
	"github.com/mathewkioko/edulink/api/http/handlers"
	"github.com/mathewkioko/edulink/pkg/auth"
	"github.com/mathewkioko/edulink/pkg/config"
	"github.com/mathewkioko/edulink/pkg/group"
	"github.com/mathewkioko/edulink/pkg/health"
	"github.com/mathewkioko/edulink/pkg/health/checkers"
	mongorepo "github.com/mathewkioko/edulink/pkg/repository/mongodb"
	pgrepo "github.com/mathewkioko/edulink/pkg/repository/postgres"
	"github.com/mathewkioko/edulink/pkg/security/jwt"
	mongostore "github.com/mathewkioko/edulink/pkg/storage/mongodb"
	pgstore "github.com/mathewkioko/edulink/pkg/storage/postgres"
	"github.com/mathewkioko/edulink/pkg/user"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Load configuration from env/.env; a missing JWT_SECRET_KEY or datastore
	// address aborts startup.
	cfg, err := config.Load()
	if err != nil {
		fatal(log, "configuration", err)
	}

	ctx := context.Background()

	// Connect to PostgreSQL (users)
	pool, err := pgstore.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		fatal(log, "postgres connect", err)
	}
	defer pool.Close()

	// Connect to MongoDB (groups)
	mongoClient, err := mongostore.Connect(ctx, cfg.MongoURI)
	if err != nil {
		fatal(log, "mongo connect", err)
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	// Wire dependencies (Clean Architecture)
	userRepo, err := pgrepo.NewUserRepository(pool)
	if err != nil {
		fatal(log, "init user repo", err)
	}
	groupRepo := mongorepo.NewGroupRepository(mongoClient.Database(cfg.MongoDB))

	// Token codec; rejecting an empty secret here is the startup precondition
	// for every later issue/verify call.
	codec, err := jwt.NewCodec(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	if err != nil {
		fatal(log, "init token codec", err)
	}

	authUC := auth.NewService(userRepo, codec)
	resolver := auth.NewResolver(codec, userRepo)
	userUC := user.NewService(userRepo)
	groupUC := group.NewService(groupRepo)

	// Health service: compose checkers for both datastores
	readiness := health.NewService(
		checkers.NewPostgresChecker(pool),
		checkers.NewMongoChecker(mongoClient),
	)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.CORSOrigins, ","),
		AllowCredentials: true,
	}))

	// Session middleware for protected routes
	authMW := jwt.NewAuthMiddleware(resolver, log)

	// Register routes
	httpapi.Register(app,
		handlers.NewAuthHandler(authUC),
		handlers.NewUserHandler(userUC),
		handlers.NewGroupHandler(groupUC),
		handlers.NewHealthHandler(readiness),
		authMW,
	)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Start server
	log.Info("HTTP server listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		fatal(log, "server stopped", err)
	}
}

func fatal(log *slog.Logger, msg string, err error) {
	log.Error(msg, "error", err)
	os.Exit(1)
}
