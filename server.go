package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"wolf-scoring-system/handlers"
	"wolf-scoring-system/models"
	"wolf-scoring-system/services"
	"wolf-scoring-system/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/template/html/v2"
	"gorm.io/gorm"
)

// autoMigrate keeps the schema in step with the models. Game goes first;
// every other scoring table hangs off it.
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Game{},
		&models.SavedGameMeta{},
		&models.GameHoleData{},
		&models.GamePlayer{},
		&models.PlayerHoleScore{},
		&models.Role{},
		&models.User{},
	)
}

// newApp wires the full HTTP surface over an opened store: auth pages, the
// /api resources, and the admin console. main adds the env-dependent pieces
// (CORS, workers) on top.
func newApp(db *gorm.DB) (*fiber.App, *session.Store, error) {
	engine := html.NewFileSystem(http.FS(views.FS), ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
	})

	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsEnv == "" {
		log.Println("ALLOWED_ORIGINS not set, using default: http://localhost:3000")
		allowedOriginsEnv = "http://localhost:3000"
	}
	allowedOriginsList := strings.Split(allowedOriginsEnv, ",")
	for i, origin := range allowedOriginsList {
		allowedOriginsList[i] = strings.TrimSpace(origin)
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(allowedOriginsList, ","),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Cookie",
		AllowCredentials: true,
	}))

	store := session.New(session.Config{
		CookieHTTPOnly: true,
	})

	authService := services.NewAuthService(db, store)
	if err := authService.EnsureDefaultRole(); err != nil {
		return nil, nil, err
	}

	gameService := services.NewGameService(db)
	savedGameMetaService := services.NewSavedGameMetaService(db)
	gameHoleDataService := services.NewGameHoleDataService(db)
	gamePlayerService := services.NewGamePlayerService(db)
	playerHoleScoreService := services.NewPlayerHoleScoreService(db)
	adminService := services.NewAdminService(db)

	handlers.SetupAuthRoutes(app, authService)
	handlers.SetupAPIRoutes(app, store,
		gameService,
		savedGameMetaService,
		gameHoleDataService,
		gamePlayerService,
		playerHoleScoreService,
	)
	handlers.SetupAdminRoutes(app, adminService, store)

	return app, store, nil
}
