package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Moinuddin-dotcom/roadmap-server/bootstrap"
	"github.com/Moinuddin-dotcom/roadmap-server/config"
	"github.com/Moinuddin-dotcom/roadmap-server/database"
	"github.com/Moinuddin-dotcom/roadmap-server/dto"
	"github.com/Moinuddin-dotcom/roadmap-server/internal/controllers"
	"github.com/Moinuddin-dotcom/roadmap-server/internal/middleware"
	"github.com/Moinuddin-dotcom/roadmap-server/internal/repository"
	"github.com/Moinuddin-dotcom/roadmap-server/internal/routes"
	"github.com/Moinuddin-dotcom/roadmap-server/internal/token"
)

// errorHandler is the single error-to-status mapping for every route:
// fiber errors keep their code, unknown store failures become a logged 500.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	} else if errors.Is(err, repository.ErrNotFound) {
		code = fiber.StatusNotFound
	}
	if code >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("request failed")
		return c.Status(code).JSON(dto.ErrorResponse{Error: "internal server error"})
	}
	return c.Status(code).JSON(dto.ErrorResponse{Message: err.Error()})
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	client := database.ConnectMongo(cfg.MongoURI)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}()

	db := client.Database(cfg.MongoDB)
	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes failed")
	}

	tokens := token.NewService(cfg.JWTSecret, cfg.Production)
	gate := middleware.RequireAuth(tokens)

	app := fiber.New(fiber.Config{ErrorHandler: errorHandler})
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigin,
		AllowCredentials: true,
		AllowMethods:     "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello from Roadmap app Server....")
	})

	routes.SetupAuth(app, &controllers.AuthHandler{Tokens: tokens})
	routes.SetupUsers(app, &controllers.UserHandler{Users: repository.NewUserRepository(db)}, gate)

	posts := &controllers.PostHandler{Posts: repository.NewPostRepository(db)}
	routes.SetupPosts(app, posts, gate)
	routes.SetupLikes(app, posts, gate)
	routes.SetupComments(app, posts, gate)

	log.Info().Str("port", cfg.Port).Msg("server running")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
