package services

import (
	"errors"

	"wolf-scoring-system/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type GamePlayerService struct {
	DB *gorm.DB
}

func NewGamePlayerService(db *gorm.DB) *GamePlayerService {
	return &GamePlayerService{DB: db}
}

func (s *GamePlayerService) GetAllGamePlayers(c *fiber.Ctx) error {
	players := []models.GamePlayer{}
	if err := s.DB.Find(&players).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch game players"})
	}
	return c.JSON(players)
}

func (s *GamePlayerService) GetGamePlayerByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var player models.GamePlayer
	if err := s.DB.First(&player, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "game player not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}
	return c.JSON(player)
}

func (s *GamePlayerService) CreateGamePlayer(c *fiber.Ctx) error {
	var in models.GamePlayerInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	if in.GameID == nil || in.PlayerNumber == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "game_id and player_number are required"})
	}

	player := models.NewGamePlayer(in)
	if err := player.Validate(); err != nil {
		return writeStoreError(c, err)
	}
	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&player).Error
	}); err != nil {
		return writeStoreError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": player.ID})
}

func (s *GamePlayerService) UpdateGamePlayer(c *fiber.Ctx) error {
	id := c.Params("id")

	var player models.GamePlayer
	if err := s.DB.First(&player, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "game player not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}

	var patch models.GamePlayerPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	patch.Apply(&player)

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Save(&player).Error
	}); err != nil {
		return writeStoreError(c, err)
	}

	return c.JSON(fiber.Map{"message": "GamePlayer updated successfully"})
}

func (s *GamePlayerService) DeleteGamePlayer(c *fiber.Ctx) error {
	id := c.Params("id")

	var player models.GamePlayer
	if err := s.DB.First(&player, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "game player not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&player).Error
	}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "delete transaction failed"})
	}

	return c.JSON(fiber.Map{"message": "GamePlayer deleted successfully"})
}
