package services

import (
	"errors"

	"wolf-scoring-system/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type GameHoleDataService struct {
	DB *gorm.DB
}

func NewGameHoleDataService(db *gorm.DB) *GameHoleDataService {
	return &GameHoleDataService{DB: db}
}

func (s *GameHoleDataService) GetAllGameHoleData(c *fiber.Ctx) error {
	holeData := []models.GameHoleData{}
	if err := s.DB.Find(&holeData).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch game hole data"})
	}
	return c.JSON(holeData)
}

func (s *GameHoleDataService) GetGameHoleDataByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var data models.GameHoleData
	if err := s.DB.First(&data, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "game hole data not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}
	return c.JSON(data)
}

func (s *GameHoleDataService) CreateGameHoleData(c *fiber.Ctx) error {
	var in models.GameHoleDataInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	if in.GameID == nil || in.HoleNumber == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "game_id and hole_number are required"})
	}

	data := models.NewGameHoleData(in)
	if err := data.Validate(); err != nil {
		return writeStoreError(c, err)
	}
	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&data).Error
	}); err != nil {
		return writeStoreError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": data.ID})
}

func (s *GameHoleDataService) UpdateGameHoleData(c *fiber.Ctx) error {
	id := c.Params("id")

	var data models.GameHoleData
	if err := s.DB.First(&data, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "game hole data not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}

	var patch models.GameHoleDataPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	patch.Apply(&data)

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Save(&data).Error
	}); err != nil {
		return writeStoreError(c, err)
	}

	return c.JSON(fiber.Map{"message": "GameHoleData updated successfully"})
}

func (s *GameHoleDataService) DeleteGameHoleData(c *fiber.Ctx) error {
	id := c.Params("id")

	var data models.GameHoleData
	if err := s.DB.First(&data, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "game hole data not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&data).Error
	}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "delete transaction failed"})
	}

	return c.JSON(fiber.Map{"message": "GameHoleData deleted successfully"})
}
