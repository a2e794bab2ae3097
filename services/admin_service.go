package services

import (
	"sort"
	"time"

	"wolf-scoring-system/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// AdminResource is one table exposed in the console. The slug doubles as the
// URL key under /admin.
type AdminResource struct {
	Name  string
	Slug  string
	Table string
}

// AdminService is a thin generated console over the same store the API
// uses: generic row listing and editing for every registered table, behind
// the same session gate.
type AdminService struct {
	DB        *gorm.DB
	Resources []AdminResource

	bySlug map[string]AdminResource
}

func NewAdminService(db *gorm.DB) *AdminService {
	entries := []struct{ name, table string }{
		{"Games", models.Game{}.TableName()},
		{"Saved Game Meta", models.SavedGameMeta{}.TableName()},
		{"Game Hole Data", models.GameHoleData{}.TableName()},
		{"Game Players", models.GamePlayer{}.TableName()},
		{"Player Hole Scores", models.PlayerHoleScore{}.TableName()},
		{"Users", models.User{}.TableName()},
		{"Roles", models.Role{}.TableName()},
	}

	s := &AdminService{DB: db, bySlug: make(map[string]AdminResource)}
	for _, e := range entries {
		res := AdminResource{Name: e.name, Slug: slug.Make(e.name), Table: e.table}
		s.Resources = append(s.Resources, res)
		s.bySlug[res.Slug] = res
	}
	return s
}

func (s *AdminService) resource(c *fiber.Ctx) (AdminResource, bool) {
	res, ok := s.bySlug[c.Params("table")]
	return res, ok
}

// Index renders the console landing page listing every registered table.
func (s *AdminService) Index(c *fiber.Ctx) error {
	return c.Render("admin_index", fiber.Map{"Resources": s.Resources})
}

// TablePage renders all rows of one table.
func (s *AdminService) TablePage(c *fiber.Ctx) error {
	res, ok := s.resource(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).SendString("unknown table")
	}

	rows := []map[string]interface{}{}
	if err := s.DB.Table(res.Table).Find(&rows).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to fetch rows")
	}

	var columns []string
	if len(rows) > 0 {
		for col := range rows[0] {
			columns = append(columns, col)
		}
		sort.Strings(columns)
	}

	return c.Render("admin_table", fiber.Map{
		"Resource": res,
		"Columns":  columns,
		"Rows":     rows,
	})
}

// ListRows is the JSON listing used by the console.
func (s *AdminService) ListRows(c *fiber.Ctx) error {
	res, ok := s.resource(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown table"})
	}

	rows := []map[string]interface{}{}
	if err := s.DB.Table(res.Table).Find(&rows).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch rows"})
	}
	return c.JSON(rows)
}

// CreateRow inserts a raw column map. The console supplies every column; the
// only thing generated here is a missing id.
func (s *AdminService) CreateRow(c *fiber.Ctx) error {
	res, ok := s.resource(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown table"})
	}

	payload := map[string]interface{}{}
	if err := c.BodyParser(&payload); err != nil || len(payload) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	if _, ok := payload["id"]; !ok {
		payload["id"] = uuid.NewString()
	}

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Table(res.Table).Create(payload).Error
	}); err != nil {
		return writeStoreError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": payload["id"]})
}

// UpdateRow applies a raw column map to one row. Games keep their contract:
// updated_at refreshes on every edit.
func (s *AdminService) UpdateRow(c *fiber.Ctx) error {
	res, ok := s.resource(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown table"})
	}
	id := c.Params("id")

	payload := map[string]interface{}{}
	if err := c.BodyParser(&payload); err != nil || len(payload) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON body"})
	}
	delete(payload, "id")
	if res.Table == (models.Game{}).TableName() {
		payload["updated_at"] = time.Now().UTC()
	}

	var affected int64
	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Table(res.Table).Where("id = ?", id).Updates(payload)
		affected = result.RowsAffected
		return result.Error
	}); err != nil {
		return writeStoreError(c, err)
	}
	if affected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "row not found"})
	}

	return c.JSON(fiber.Map{"message": "Row updated successfully"})
}

// DeleteRow removes one row. Deleting a game goes through the same cascade
// the API uses so the console can never leave orphans behind.
func (s *AdminService) DeleteRow(c *fiber.Ctx) error {
	res, ok := s.resource(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown table"})
	}
	id := c.Params("id")

	if res.Table == (models.Game{}).TableName() {
		var game models.Game
		if err := s.DB.First(&game, "id = ?", id).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "row not found"})
		}
		if err := s.DB.Transaction(func(tx *gorm.DB) error {
			return deleteGameCascade(tx, id)
		}); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "delete transaction failed"})
		}
		return c.JSON(fiber.Map{"message": "Row deleted successfully"})
	}

	var affected int64
	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		// Table names come from the registry above, never from the request.
		result := tx.Exec("DELETE FROM "+res.Table+" WHERE id = ?", id)
		affected = result.RowsAffected
		return result.Error
	}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "delete transaction failed"})
	}
	if affected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "row not found"})
	}

	return c.JSON(fiber.Map{"message": "Row deleted successfully"})
}
