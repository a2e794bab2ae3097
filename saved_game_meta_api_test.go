package main

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestCreateSavedGameMeta(t *testing.T) {
	app, _ := newTestServer(t)
	cookie := authCookie(t, app)
	gameID := createGame(t, app, cookie, map[string]interface{}{})

	savedAt := time.Date(2026, 8, 1, 14, 30, 0, 0, time.UTC)
	resp := doJSON(t, app, http.MethodPost, "/api/saved-game-meta", map[string]interface{}{
		"id":       gameID,
		"name":     "Front nine done",
		"saved_at": savedAt.Format(time.RFC3339),
		"hole":     9,
	}, cookie)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.Equal(t, gameID, decodeObject(t, resp)["id"], "meta id is the game id, not a generated one")

	resp = doJSON(t, app, http.MethodGet, "/api/saved-game-meta/"+gameID, nil, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	meta := decodeObject(t, resp)
	require.Equal(t, "Front nine done", meta["name"])
	require.Equal(t, float64(9), meta["hole"])
}

func TestCreateSavedGameMetaAllFieldsRequired(t *testing.T) {
	app, _ := newTestServer(t)
	cookie := authCookie(t, app)
	gameID := createGame(t, app, cookie, map[string]interface{}{})

	// No field is defaulted: each omission is a malformed request
	payloads := []map[string]interface{}{
		{"name": "x", "saved_at": "2026-08-01T14:30:00Z", "hole": 1},
		{"id": gameID, "saved_at": "2026-08-01T14:30:00Z", "hole": 1},
		{"id": gameID, "name": "x", "hole": 1},
		{"id": gameID, "name": "x", "saved_at": "2026-08-01T14:30:00Z"},
	}
	for _, p := range payloads {
		resp := doJSON(t, app, http.MethodPost, "/api/saved-game-meta", p, cookie)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "payload %v must be rejected", p)
	}
}

func TestCreateSavedGameMetaUnknownGame(t *testing.T) {
	app, _ := newTestServer(t)
	cookie := authCookie(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/saved-game-meta", map[string]interface{}{
		"id":       "00000000-0000-0000-0000-000000000000",
		"name":     "orphan",
		"saved_at": "2026-08-01T14:30:00Z",
		"hole":     1,
	}, cookie)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestCreateSavedGameMetaDuplicate(t *testing.T) {
	app, _ := newTestServer(t)
	cookie := authCookie(t, app)
	gameID := createGame(t, app, cookie, map[string]interface{}{})

	payload := map[string]interface{}{
		"id":       gameID,
		"name":     "first",
		"saved_at": "2026-08-01T14:30:00Z",
		"hole":     1,
	}

	resp := doJSON(t, app, http.MethodPost, "/api/saved-game-meta", payload, cookie)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Shared primary key: one bookmark per game
	resp = doJSON(t, app, http.MethodPost, "/api/saved-game-meta", payload, cookie)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestUpdateSavedGameMetaPartialPatch(t *testing.T) {
	app, _ := newTestServer(t)
	cookie := authCookie(t, app)
	gameID := createGame(t, app, cookie, map[string]interface{}{})

	resp := doJSON(t, app, http.MethodPost, "/api/saved-game-meta", map[string]interface{}{
		"id":       gameID,
		"name":     "before",
		"saved_at": "2026-08-01T14:30:00Z",
		"hole":     3,
	}, cookie)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPut, "/api/saved-game-meta/"+gameID, map[string]interface{}{
		"hole": 11,
	}, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "SavedGameMeta updated successfully", decodeObject(t, resp)["message"])

	resp = doJSON(t, app, http.MethodGet, "/api/saved-game-meta/"+gameID, nil, cookie)
	meta := decodeObject(t, resp)
	require.Equal(t, float64(11), meta["hole"])
	require.Equal(t, "before", meta["name"])
}

func TestDeleteSavedGameMeta(t *testing.T) {
	app, _ := newTestServer(t)
	cookie := authCookie(t, app)
	gameID := createGame(t, app, cookie, map[string]interface{}{})

	resp := doJSON(t, app, http.MethodPost, "/api/saved-game-meta", map[string]interface{}{
		"id":       gameID,
		"name":     "bookmark",
		"saved_at": "2026-08-01T14:30:00Z",
		"hole":     5,
	}, cookie)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/saved-game-meta/"+gameID, nil, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "SavedGameMeta deleted successfully", decodeObject(t, resp)["message"])

	resp = doJSON(t, app, http.MethodGet, "/api/saved-game-meta/"+gameID, nil, cookie)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// The game itself is untouched
	resp = doJSON(t, app, http.MethodGet, "/api/games/"+gameID, nil, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
