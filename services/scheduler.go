// services/scheduler.go
package services

import (
	"log"
	"os"
	"strconv"
	"time"

	"wolf-scoring-system/models"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// StartRetentionScheduler sweeps finished games that nobody has touched for
// GAME_RETENTION_DAYS days. Disabled unless the variable is set.
func (s *GameService) StartRetentionScheduler() {
	daysStr := os.Getenv("GAME_RETENTION_DAYS")
	if daysStr == "" {
		return
	}
	days, err := strconv.Atoi(daysStr)
	if err != nil || days <= 0 {
		log.Printf("[Retention] invalid GAME_RETENTION_DAYS=%q, scheduler disabled", daysStr)
		return
	}

	sched, _ := gocron.NewScheduler()
	sched.Start()

	// Hourly: cascade-delete stale finished games
	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(func() {
			s.sweepFinishedGames(days)
		}),
	)

	log.Printf("[Retention] sweeping finished games older than %d days", days)
}

func (s *GameService) sweepFinishedGames(days int) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	var games []models.Game
	err := s.DB.Where("is_continuing_game = ? AND updated_at < ?", false, cutoff).
		Find(&games).Error
	if err != nil {
		log.Printf("[Retention] DB error: %v", err)
		return
	}

	for _, g := range games {
		err := s.DB.Transaction(func(tx *gorm.DB) error {
			return deleteGameCascade(tx, g.ID)
		})
		if err != nil {
			log.Printf("[Retention] failed to delete game %s: %v", g.ID, err)
		} else {
			log.Printf("[Retention] deleted finished game: %s (%s)", g.GameName, g.ID)
		}
	}
}
