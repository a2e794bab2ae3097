// handlers/api_routes.go
package handlers

import (
	"wolf-scoring-system/middleware"
	"wolf-scoring-system/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// SetupAPIRoutes mounts the five scoring resources under /api. Every route
// sits behind the session gate, so unauthenticated calls never reach a
// service.
func SetupAPIRoutes(
	app *fiber.App,
	store *session.Store,
	games *services.GameService,
	metas *services.SavedGameMetaService,
	holes *services.GameHoleDataService,
	players *services.GamePlayerService,
	scores *services.PlayerHoleScoreService,
) {
	api := app.Group("/api", middleware.SessionAuthMiddleware(store))

	api.Get("/games", games.GetAllGames)
	api.Get("/games/:id", games.GetGameByID)
	api.Post("/games", games.CreateGame)
	api.Put("/games/:id", games.UpdateGame)
	api.Delete("/games/:id", games.DeleteGame)

	api.Get("/saved-game-meta", metas.GetAllSavedGameMeta)
	api.Get("/saved-game-meta/:id", metas.GetSavedGameMetaByID)
	api.Post("/saved-game-meta", metas.CreateSavedGameMeta)
	api.Put("/saved-game-meta/:id", metas.UpdateSavedGameMeta)
	api.Delete("/saved-game-meta/:id", metas.DeleteSavedGameMeta)

	api.Get("/game-hole-data", holes.GetAllGameHoleData)
	api.Get("/game-hole-data/:id", holes.GetGameHoleDataByID)
	api.Post("/game-hole-data", holes.CreateGameHoleData)
	api.Put("/game-hole-data/:id", holes.UpdateGameHoleData)
	api.Delete("/game-hole-data/:id", holes.DeleteGameHoleData)

	api.Get("/game-players", players.GetAllGamePlayers)
	api.Get("/game-players/:id", players.GetGamePlayerByID)
	api.Post("/game-players", players.CreateGamePlayer)
	api.Put("/game-players/:id", players.UpdateGamePlayer)
	api.Delete("/game-players/:id", players.DeleteGamePlayer)

	api.Get("/player-hole-scores", scores.GetAllPlayerHoleScores)
	api.Get("/player-hole-scores/:id", scores.GetPlayerHoleScoreByID)
	api.Post("/player-hole-scores", scores.CreatePlayerHoleScore)
	api.Put("/player-hole-scores/:id", scores.UpdatePlayerHoleScore)
	api.Delete("/player-hole-scores/:id", scores.DeletePlayerHoleScore)
}
