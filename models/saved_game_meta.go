// models/saved_game_meta.go
package models

import "time"

// SavedGameMeta is the bookmark for a saved snapshot of a Game. It shares
// the game's id as its own primary key, so there is at most one per game
// and it dies with the game.
type SavedGameMeta struct {
	ID      string    `json:"id" gorm:"type:uuid;primaryKey"`
	Name    string    `json:"name" gorm:"size:255;not null"`
	SavedAt time.Time `json:"saved_at" gorm:"not null"`
	Hole    int       `json:"hole" gorm:"not null"`
}

func (SavedGameMeta) TableName() string { return "saved_game_meta" }

// SavedGameMetaInput has no optional fields: the client supplies the target
// game's id itself, and name/saved_at/hole are all required.
type SavedGameMetaInput struct {
	ID      *string    `json:"id"`
	Name    *string    `json:"name"`
	SavedAt *time.Time `json:"saved_at"`
	Hole    *int       `json:"hole"`
}

type SavedGameMetaPatch struct {
	Name    *string    `json:"name"`
	SavedAt *time.Time `json:"saved_at"`
	Hole    *int       `json:"hole"`
}

func (p SavedGameMetaPatch) Apply(m *SavedGameMeta) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.SavedAt != nil {
		m.SavedAt = *p.SavedAt
	}
	if p.Hole != nil {
		m.Hole = *p.Hole
	}
}
