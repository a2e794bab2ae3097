package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"wolf-scoring-system/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Game{},
		&models.SavedGameMeta{},
		&models.GameHoleData{},
		&models.GamePlayer{},
		&models.PlayerHoleScore{},
	))
	return db
}

func TestSnapshotIncludesAllTables(t *testing.T) {
	db := openTestDB(t)

	game := models.NewGame(models.GameInput{})
	require.NoError(t, db.Create(&game).Error)

	playerNumber := 1
	player := models.NewGamePlayer(models.GamePlayerInput{
		GameID: &game.ID, PlayerNumber: &playerNumber,
	})
	require.NoError(t, db.Create(&player).Error)

	holeNumber := 3
	hole := models.NewGameHoleData(models.GameHoleDataInput{
		GameID: &game.ID, HoleNumber: &holeNumber,
	})
	require.NoError(t, db.Create(&hole).Error)

	data, err := NewBackupClient(db).Snapshot(context.Background())
	require.NoError(t, err)

	var snap map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &snap))
	require.Contains(t, snap, "taken_at")

	counts := map[string]int{
		"games": 1, "game_players": 1, "game_hole_data": 1,
		"saved_game_meta": 0, "player_hole_scores": 0,
	}
	for key, want := range counts {
		var rows []json.RawMessage
		require.NoError(t, json.Unmarshal(snap[key], &rows), key)
		require.Len(t, rows, want, key)
	}
}

func TestSnapshotEmptyStore(t *testing.T) {
	db := openTestDB(t)

	data, err := NewBackupClient(db).Snapshot(context.Background())
	require.NoError(t, err)

	var snap snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	require.Empty(t, snap.Games)
	require.Empty(t, snap.PlayerHoleScores)
}
