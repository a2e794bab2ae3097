package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"wolf-scoring-system/models"
	"wolf-scoring-system/utils"

	"gorm.io/gorm"
)

// BackupClient snapshots the five scoring tables to the backup bucket.
type BackupClient struct {
	DB *gorm.DB
}

func NewBackupClient(db *gorm.DB) *BackupClient {
	return &BackupClient{DB: db}
}

type snapshot struct {
	TakenAt          time.Time                `json:"taken_at"`
	Games            []models.Game            `json:"games"`
	SavedGameMeta    []models.SavedGameMeta   `json:"saved_game_meta"`
	GameHoleData     []models.GameHoleData    `json:"game_hole_data"`
	GamePlayers      []models.GamePlayer      `json:"game_players"`
	PlayerHoleScores []models.PlayerHoleScore `json:"player_hole_scores"`
}

// Snapshot marshals the full scoring dataset. Reads are plain SELECTs; the
// snapshot is advisory, not a point-in-time backup of the store.
func (c *BackupClient) Snapshot(ctx context.Context) ([]byte, error) {
	snap := snapshot{TakenAt: time.Now().UTC()}

	db := c.DB.WithContext(ctx)
	if err := db.Find(&snap.Games).Error; err != nil {
		return nil, fmt.Errorf("failed to read games: %w", err)
	}
	if err := db.Find(&snap.SavedGameMeta).Error; err != nil {
		return nil, fmt.Errorf("failed to read saved game meta: %w", err)
	}
	if err := db.Find(&snap.GameHoleData).Error; err != nil {
		return nil, fmt.Errorf("failed to read game hole data: %w", err)
	}
	if err := db.Find(&snap.GamePlayers).Error; err != nil {
		return nil, fmt.Errorf("failed to read game players: %w", err)
	}
	if err := db.Find(&snap.PlayerHoleScores).Error; err != nil {
		return nil, fmt.Errorf("failed to read player hole scores: %w", err)
	}

	return json.Marshal(snap)
}

func (c *BackupClient) uploadOnce(ctx context.Context) {
	data, err := c.Snapshot(ctx)
	if err != nil {
		log.Printf("[Backup] snapshot failed: %v", err)
		return
	}

	key := fmt.Sprintf("snapshots/%s.json", time.Now().UTC().Format("20060102T150405Z"))
	if err := utils.UploadSnapshot(ctx, key, data); err != nil {
		log.Printf("[Backup] upload failed: %v", err)
		return
	}
	log.Printf("[Backup] uploaded %s (%d bytes)", key, len(data))
}

// PollBackups uploads a snapshot every interval until ctx is cancelled.
func PollBackups(ctx context.Context, client *BackupClient, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("[Backup] polling every %s", interval)
	for {
		select {
		case <-ctx.Done():
			log.Println("[Backup] stopped")
			return
		case <-ticker.C:
			client.uploadOnce(ctx)
		}
	}
}
