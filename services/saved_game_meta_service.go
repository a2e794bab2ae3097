package services

import (
	"errors"

	"wolf-scoring-system/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SavedGameMetaService struct {
	DB *gorm.DB
}

func NewSavedGameMetaService(db *gorm.DB) *SavedGameMetaService {
	return &SavedGameMetaService{DB: db}
}

func (s *SavedGameMetaService) GetAllSavedGameMeta(c *fiber.Ctx) error {
	metas := []models.SavedGameMeta{}
	if err := s.DB.Find(&metas).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch saved game meta"})
	}
	return c.JSON(metas)
}

func (s *SavedGameMetaService) GetSavedGameMetaByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var meta models.SavedGameMeta
	if err := s.DB.First(&meta, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "saved game meta not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}
	return c.JSON(meta)
}

// CreateSavedGameMeta differs from the other creates: the client supplies the
// id itself (it must reference an existing game; the store's foreign key
// enforces that), and none of the fields are defaulted.
func (s *SavedGameMetaService) CreateSavedGameMeta(c *fiber.Ctx) error {
	var in models.SavedGameMetaInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	if in.ID == nil || in.Name == nil || in.SavedAt == nil || in.Hole == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id, name, saved_at and hole are required"})
	}

	meta := models.SavedGameMeta{
		ID:      *in.ID,
		Name:    *in.Name,
		SavedAt: *in.SavedAt,
		Hole:    *in.Hole,
	}
	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&meta).Error
	}); err != nil {
		return writeStoreError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": meta.ID})
}

func (s *SavedGameMetaService) UpdateSavedGameMeta(c *fiber.Ctx) error {
	id := c.Params("id")

	var meta models.SavedGameMeta
	if err := s.DB.First(&meta, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "saved game meta not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}

	var patch models.SavedGameMetaPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	patch.Apply(&meta)

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Save(&meta).Error
	}); err != nil {
		return writeStoreError(c, err)
	}

	return c.JSON(fiber.Map{"message": "SavedGameMeta updated successfully"})
}

func (s *SavedGameMetaService) DeleteSavedGameMeta(c *fiber.Ctx) error {
	id := c.Params("id")

	var meta models.SavedGameMeta
	if err := s.DB.First(&meta, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "saved game meta not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&meta).Error
	}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "delete transaction failed"})
	}

	return c.JSON(fiber.Map{"message": "SavedGameMeta deleted successfully"})
}
