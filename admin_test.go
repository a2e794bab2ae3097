package main

import (
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestAdminIndexListsTables(t *testing.T) {
	app, _ := newTestServer(t)
	cookie := authCookie(t, app)

	resp := doJSON(t, app, http.MethodGet, "/admin", nil, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	page := string(body)
	for _, slug := range []string{
		"games", "saved-game-meta", "game-hole-data",
		"game-players", "player-hole-scores", "users", "roles",
	} {
		require.Contains(t, page, "/admin/"+slug)
	}
}

func TestAdminTablePage(t *testing.T) {
	app, _ := newTestServer(t)
	cookie := authCookie(t, app)
	createGame(t, app, cookie, map[string]interface{}{"game_name": "Visible In Admin"})

	resp := doJSON(t, app, http.MethodGet, "/admin/games", nil, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "Visible In Admin")
}

func TestAdminUnknownTable(t *testing.T) {
	app, _ := newTestServer(t)
	cookie := authCookie(t, app)

	resp := doJSON(t, app, http.MethodGet, "/admin/nope", nil, cookie)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/admin/api/nope", nil, cookie)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAdminListRows(t *testing.T) {
	app, _ := newTestServer(t)
	cookie := authCookie(t, app)
	createGame(t, app, cookie, map[string]interface{}{"game_name": "Row One"})

	resp := doJSON(t, app, http.MethodGet, "/admin/api/games", nil, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	rows := decodeList(t, resp)
	require.Len(t, rows, 1)
	require.Equal(t, "Row One", rows[0]["game_name"])
}

func TestAdminUpdateRow(t *testing.T) {
	app, _ := newTestServer(t)
	cookie := authCookie(t, app)
	id := createGame(t, app, cookie, map[string]interface{}{"game_name": "Before"})

	resp := doJSON(t, app, http.MethodPut, "/admin/api/games/"+id, map[string]interface{}{
		"game_name": "After",
	}, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/games/"+id, nil, cookie)
	require.Equal(t, "After", decodeObject(t, resp)["game_name"])

	resp = doJSON(t, app, http.MethodPut, "/admin/api/games/unknown-id", map[string]interface{}{
		"game_name": "x",
	}, cookie)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// The console's game delete must run the same cascade as the API's.
func TestAdminDeleteGameCascades(t *testing.T) {
	app, _ := newTestServer(t)
	cookie := authCookie(t, app)

	gameID := createGame(t, app, cookie, map[string]interface{}{})
	resp := doJSON(t, app, http.MethodPost, "/api/game-players", map[string]interface{}{
		"game_id": gameID, "player_number": 1,
	}, cookie)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	playerID := decodeObject(t, resp)["id"].(string)

	resp = doJSON(t, app, http.MethodDelete, "/admin/api/games/"+gameID, nil, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/games/"+gameID, nil, cookie)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp = doJSON(t, app, http.MethodGet, "/api/game-players/"+playerID, nil, cookie)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAdminRequiresSession(t *testing.T) {
	app, _ := newTestServer(t)

	resp := doJSON(t, app, http.MethodGet, "/admin/api/games", nil, "")
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	require.Equal(t, "/login", resp.Header.Get("Location"))
}
