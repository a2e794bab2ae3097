package services

import (
	"errors"

	"wolf-scoring-system/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type GameService struct {
	DB *gorm.DB
}

func NewGameService(db *gorm.DB) *GameService {
	return &GameService{DB: db}
}

// GetAllGames returns every game. No ordering is imposed; callers must not
// depend on one.
func (s *GameService) GetAllGames(c *fiber.Ctx) error {
	games := []models.Game{}
	if err := s.DB.Find(&games).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch games"})
	}
	return c.JSON(games)
}

func (s *GameService) GetGameByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var game models.Game
	if err := s.DB.First(&game, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "game not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}
	return c.JSON(game)
}

// CreateGame inserts a new game, substituting defaults for omitted fields.
func (s *GameService) CreateGame(c *fiber.Ctx) error {
	var in models.GameInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}

	game := models.NewGame(in)
	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&game).Error
	}); err != nil {
		return writeStoreError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": game.ID})
}

// UpdateGame applies a partial patch. updated_at refreshes on every
// successful update, even when the patch is empty.
func (s *GameService) UpdateGame(c *fiber.Ctx) error {
	id := c.Params("id")

	var game models.Game
	if err := s.DB.First(&game, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "game not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}

	var patch models.GamePatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	patch.Apply(&game)

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Save(&game).Error
	}); err != nil {
		return writeStoreError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Game updated successfully"})
}

// DeleteGame removes a game and everything it owns in one transaction:
// scores, players, hole data, then the saved-game bookmark, then the game
// row itself. Partial cascades must never be observable.
func (s *GameService) DeleteGame(c *fiber.Ctx) error {
	id := c.Params("id")

	var game models.Game
	if err := s.DB.First(&game, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "game not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return deleteGameCascade(tx, id)
	}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "delete transaction failed"})
	}

	return c.JSON(fiber.Map{"message": "Game deleted successfully"})
}

// deleteGameCascade fans the delete out to the four dependent tables and the
// meta row inside the caller's transaction. Fixed order, leaves last.
func deleteGameCascade(tx *gorm.DB, gameID string) error {
	if err := tx.Where("game_id = ?", gameID).Delete(&models.PlayerHoleScore{}).Error; err != nil {
		return err
	}
	if err := tx.Where("game_id = ?", gameID).Delete(&models.GamePlayer{}).Error; err != nil {
		return err
	}
	if err := tx.Where("game_id = ?", gameID).Delete(&models.GameHoleData{}).Error; err != nil {
		return err
	}
	if err := tx.Where("id = ?", gameID).Delete(&models.SavedGameMeta{}).Error; err != nil {
		return err
	}
	return tx.Where("id = ?", gameID).Delete(&models.Game{}).Error
}
