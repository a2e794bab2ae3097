package services

import (
	"errors"

	"wolf-scoring-system/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// writeStoreError maps a repository error onto the wire. Constraint
// violations (range checks caught up front, or the store's own translated
// uniqueness/foreign-key errors) come back 409; anything else is a server
// fault. The store's error text is passed through untranslated.
func writeStoreError(c *fiber.Ctx, err error) error {
	var cerr *models.ConstraintError
	switch {
	case errors.As(err, &cerr):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": cerr.Error()})
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}
}
