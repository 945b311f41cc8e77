package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"pokemonreview/internal/service"
)

// Services groups the use cases exposed over HTTP. Sprites is nil when object
// storage is not configured.
type Services struct {
	Pokemon service.PokemonService
	Review  service.ReviewService
	Sprites service.SpriteService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. rdb may be nil.
func RegisterRoutes(app *fiber.App, db *sql.DB, rdb redis.Cmdable, svc Services) {
	app.Get("/health", HealthCheck(db, rdb))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api/pokemon")

	// Static segments before :id.
	api.Get("/", ListPokemon(svc.Pokemon))
	api.Post("/create", CreatePokemon(svc.Pokemon))
	api.Get("/type/:type", GetPokemonByType(svc.Pokemon))
	api.Get("/:id", GetPokemon(svc.Pokemon))
	api.Put("/:id/update", UpdatePokemon(svc.Pokemon))
	api.Delete("/:id/delete", DeletePokemon(svc.Pokemon))

	api.Post("/:pokemonId/reviews", CreateReview(svc.Review))
	api.Get("/:pokemonId/reviews", ListReviews(svc.Review))
	api.Get("/:pokemonId/reviews/:id", GetReview(svc.Review))
	api.Put("/:pokemonId/reviews/:id", UpdateReview(svc.Review))
	api.Delete("/:pokemonId/reviews/:id", DeleteReview(svc.Review))

	if svc.Sprites != nil {
		api.Post("/:id/sprite", UploadSprite(svc.Sprites))
		api.Get("/:id/sprite", GetSprite(svc.Sprites))
	}
}
