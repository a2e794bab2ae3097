package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB gives every test its own in-memory store with the full schema
// and foreign keys enforced.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, autoMigrate(db))
	return db
}

func newTestServer(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := openTestDB(t)
	app, _, err := newApp(db)
	require.NoError(t, err)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, cookie string) *http.Response {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// authCookie registers a fresh user, logs in, and returns the session
// cookie to attach to subsequent requests.
func authCookie(t *testing.T, app *fiber.App) string {
	t.Helper()

	email := uuid.NewString() + "@example.com"
	creds := map[string]interface{}{"email": email, "password": "secret123"}

	resp := doJSON(t, app, http.MethodPost, "/register", creds, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/login", creds, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NotEmpty(t, resp.Cookies(), "login must set a session cookie")

	c := resp.Cookies()[0]
	return c.Name + "=" + c.Value
}

func decodeObject(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	defer resp.Body.Close()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func decodeList(t *testing.T, resp *http.Response) []map[string]interface{} {
	t.Helper()

	defer resp.Body.Close()
	var out []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// requireMoney compares a serialized monetary value (string or number)
// against its expected decimal value.
func requireMoney(t *testing.T, want string, got interface{}) {
	t.Helper()

	var d decimal.Decimal
	switch v := got.(type) {
	case string:
		parsed, err := decimal.NewFromString(v)
		require.NoError(t, err)
		d = parsed
	case float64:
		d = decimal.NewFromFloat(v)
	default:
		t.Fatalf("unexpected money type %T (%v)", got, got)
	}
	require.True(t, d.Equal(decimal.RequireFromString(want)), "want %s, got %v", want, got)
}

// createGame posts a game payload and returns the new id.
func createGame(t *testing.T, app *fiber.App, cookie string, payload map[string]interface{}) string {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/games", payload, cookie)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	body := decodeObject(t, resp)
	id, _ := body["id"].(string)
	require.NotEmpty(t, id)
	return id
}
