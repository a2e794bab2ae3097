package services

import (
	"errors"

	"wolf-scoring-system/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PlayerHoleScoreService struct {
	DB *gorm.DB
}

func NewPlayerHoleScoreService(db *gorm.DB) *PlayerHoleScoreService {
	return &PlayerHoleScoreService{DB: db}
}

func (s *PlayerHoleScoreService) GetAllPlayerHoleScores(c *fiber.Ctx) error {
	scores := []models.PlayerHoleScore{}
	if err := s.DB.Find(&scores).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch player hole scores"})
	}
	return c.JSON(scores)
}

func (s *PlayerHoleScoreService) GetPlayerHoleScoreByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var score models.PlayerHoleScore
	if err := s.DB.First(&score, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "player hole score not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}
	return c.JSON(score)
}

func (s *PlayerHoleScoreService) CreatePlayerHoleScore(c *fiber.Ctx) error {
	var in models.PlayerHoleScoreInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	if in.GameID == nil || in.PlayerNumber == nil || in.HoleNumber == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "game_id, player_number and hole_number are required"})
	}

	score := models.NewPlayerHoleScore(in)
	if err := score.Validate(); err != nil {
		return writeStoreError(c, err)
	}
	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&score).Error
	}); err != nil {
		return writeStoreError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": score.ID})
}

func (s *PlayerHoleScoreService) UpdatePlayerHoleScore(c *fiber.Ctx) error {
	id := c.Params("id")

	var score models.PlayerHoleScore
	if err := s.DB.First(&score, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "player hole score not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}

	var patch models.PlayerHoleScorePatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	patch.Apply(&score)

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Save(&score).Error
	}); err != nil {
		return writeStoreError(c, err)
	}

	return c.JSON(fiber.Map{"message": "PlayerHoleScore updated successfully"})
}

func (s *PlayerHoleScoreService) DeletePlayerHoleScore(c *fiber.Ctx) error {
	id := c.Params("id")

	var score models.PlayerHoleScore
	if err := s.DB.First(&score, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "player hole score not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&score).Error
	}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "delete transaction failed"})
	}

	return c.JSON(fiber.Map{"message": "PlayerHoleScore deleted successfully"})
}
