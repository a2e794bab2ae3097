package services

import (
	"errors"
	"log"
	"time"

	"wolf-scoring-system/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const DefaultRoleName = "user"

type AuthService struct {
	DB    *gorm.DB
	Store *session.Store
}

func NewAuthService(db *gorm.DB, store *session.Store) *AuthService {
	return &AuthService{DB: db, Store: store}
}

type credentials struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Username string `json:"username" form:"username"`
}

// EnsureDefaultRole seeds the role every registered user gets.
func (s *AuthService) EnsureDefaultRole() error {
	var role models.Role
	err := s.DB.First(&role, "name = ?", DefaultRoleName).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		role = models.Role{ID: uuid.NewString(), Name: DefaultRoleName, Description: "Registered user"}
		return s.DB.Create(&role).Error
	}
	return err
}

// Index sends authenticated users to the admin console and everyone else to
// the login page.
func (s *AuthService) Index(c *fiber.Ctx) error {
	sess, err := s.Store.Get(c)
	if err == nil {
		if id, _ := sess.Get("user_id").(string); id != "" {
			return c.Redirect("/admin", fiber.StatusFound)
		}
	}
	return c.Redirect("/login", fiber.StatusFound)
}

func (s *AuthService) LoginPage(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{})
}

func (s *AuthService) RegisterPage(c *fiber.Ctx) error {
	return c.Render("register", fiber.Map{})
}

// Login verifies credentials, records the login-tracking fields, and stores
// the user id in the session. Accepts form or JSON bodies.
func (s *AuthService) Login(c *fiber.Ctx) error {
	var creds credentials
	if err := c.BodyParser(&creds); err != nil || creds.Email == "" || creds.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email and password are required"})
	}

	var user models.User
	if err := s.DB.First(&user, "email = ?", creds.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid email or password"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}
	if !user.Active {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "account is disabled"})
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid email or password"})
	}

	now := time.Now().UTC()
	user.LastLoginAt = user.CurrentLoginAt
	user.CurrentLoginAt = &now
	user.LastLoginIP = user.CurrentLoginIP
	user.CurrentLoginIP = c.IP()
	user.LoginCount++
	if err := s.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}

	sess, err := s.Store.Get(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "session store unavailable"})
	}
	sess.Set("user_id", user.ID)
	if err := sess.Save(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save session"})
	}

	log.Printf("[AUTH] login: %s", user.Email)

	if c.Is("json") {
		return c.JSON(fiber.Map{"message": "Logged in successfully"})
	}
	return c.Redirect("/admin", fiber.StatusFound)
}

// Logout destroys the session and sends the browser back to the login page.
func (s *AuthService) Logout(c *fiber.Ctx) error {
	sess, err := s.Store.Get(c)
	if err == nil {
		_ = sess.Destroy()
	}
	if c.Is("json") {
		return c.JSON(fiber.Map{"message": "Logged out successfully"})
	}
	return c.Redirect("/login", fiber.StatusFound)
}

// Register creates a credential record (email + bcrypt hash) and assigns the
// default role. Email uniqueness is the store's constraint.
func (s *AuthService) Register(c *fiber.Ctx) error {
	var creds credentials
	if err := c.BodyParser(&creds); err != nil || creds.Email == "" || creds.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email and password are required"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to hash password"})
	}

	user := models.User{
		ID:       uuid.NewString(),
		Email:    creds.Email,
		Password: string(hash),
		Active:   true,
	}
	if creds.Username != "" {
		user.Username = &creds.Username
	}

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		var role models.Role
		if err := tx.First(&role, "name = ?", DefaultRoleName).Error; err != nil {
			return err
		}
		return tx.Model(&user).Association("Roles").Append(&role)
	}); err != nil {
		return writeStoreError(c, err)
	}

	log.Printf("[AUTH] registered: %s", user.Email)

	if c.Is("json") {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": user.ID})
	}
	return c.Redirect("/login", fiber.StatusFound)
}
