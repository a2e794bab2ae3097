// models/game.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Game is one Wolf match in progress. Money columns are numeric(10,2),
// never floats, so per-hole wagers don't accumulate rounding drift.
type Game struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	GameName  string    `json:"game_name" gorm:"size:255;not null"`
	Hole      int       `json:"hole" gorm:"not null"`
	LastSaved time.Time `json:"last_saved" gorm:"not null"`

	Dollars          decimal.Decimal `json:"dollars" gorm:"type:numeric(10,2);not null"`
	TotalDollars     decimal.Decimal `json:"total_dollars" gorm:"type:numeric(10,2);not null"`
	IsContinuingGame bool            `json:"is_continuing_game" gorm:"not null"`

	PressedButton int `json:"pressed_button" gorm:"not null"`

	// Wolf-mode counters
	Wolf                int `json:"wolf" gorm:"not null"`
	WolfBirdiePoints    int `json:"wolf_birdie_points" gorm:"not null"`
	WolfEaglePoints     int `json:"wolf_eagle_points" gorm:"not null"`
	WolfNonEaglePoints  int `json:"wolf_non_eagle_points" gorm:"not null"`
	NonWolfBirdiePoints int `json:"non_wolf_birdie_points" gorm:"not null"`

	Prox int `json:"prox" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Declared from the owning side so the foreign key lands on
	// saved_game_meta.id and the bookmark dies with its game.
	Meta *SavedGameMeta `json:"-" gorm:"foreignKey:ID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Game) TableName() string { return "games" }

// GameInput is the create payload. Nil fields take the documented default.
type GameInput struct {
	GameName            *string          `json:"game_name"`
	Hole                *int             `json:"hole"`
	Dollars             *decimal.Decimal `json:"dollars"`
	TotalDollars        *decimal.Decimal `json:"total_dollars"`
	IsContinuingGame    *bool            `json:"is_continuing_game"`
	PressedButton       *int             `json:"pressed_button"`
	Wolf                *int             `json:"wolf"`
	WolfBirdiePoints    *int             `json:"wolf_birdie_points"`
	WolfEaglePoints     *int             `json:"wolf_eagle_points"`
	WolfNonEaglePoints  *int             `json:"wolf_non_eagle_points"`
	NonWolfBirdiePoints *int             `json:"non_wolf_birdie_points"`
	Prox                *int             `json:"prox"`
}

// NewGame builds a Game from a create payload. Defaults live here and only
// here; last_saved is stamped at create time and is not client-settable.
func NewGame(in GameInput) Game {
	g := Game{
		ID:               uuid.NewString(),
		GameName:         "New Game",
		LastSaved:        time.Now().UTC(),
		Dollars:          decimal.New(200, -2),
		TotalDollars:     decimal.New(0, -2),
		IsContinuingGame: true,
	}
	if in.GameName != nil {
		g.GameName = *in.GameName
	}
	if in.Hole != nil {
		g.Hole = *in.Hole
	}
	if in.Dollars != nil {
		g.Dollars = *in.Dollars
	}
	if in.TotalDollars != nil {
		g.TotalDollars = *in.TotalDollars
	}
	if in.IsContinuingGame != nil {
		g.IsContinuingGame = *in.IsContinuingGame
	}
	if in.PressedButton != nil {
		g.PressedButton = *in.PressedButton
	}
	if in.Wolf != nil {
		g.Wolf = *in.Wolf
	}
	if in.WolfBirdiePoints != nil {
		g.WolfBirdiePoints = *in.WolfBirdiePoints
	}
	if in.WolfEaglePoints != nil {
		g.WolfEaglePoints = *in.WolfEaglePoints
	}
	if in.WolfNonEaglePoints != nil {
		g.WolfNonEaglePoints = *in.WolfNonEaglePoints
	}
	if in.NonWolfBirdiePoints != nil {
		g.NonWolfBirdiePoints = *in.NonWolfBirdiePoints
	}
	if in.Prox != nil {
		g.Prox = *in.Prox
	}
	return g
}

// GamePatch is the partial-update payload. Only non-nil fields are applied;
// last_saved and the timestamps are not patchable.
type GamePatch struct {
	GameName            *string          `json:"game_name"`
	Hole                *int             `json:"hole"`
	Dollars             *decimal.Decimal `json:"dollars"`
	TotalDollars        *decimal.Decimal `json:"total_dollars"`
	IsContinuingGame    *bool            `json:"is_continuing_game"`
	PressedButton       *int             `json:"pressed_button"`
	Wolf                *int             `json:"wolf"`
	WolfBirdiePoints    *int             `json:"wolf_birdie_points"`
	WolfEaglePoints     *int             `json:"wolf_eagle_points"`
	WolfNonEaglePoints  *int             `json:"wolf_non_eagle_points"`
	NonWolfBirdiePoints *int             `json:"non_wolf_birdie_points"`
	Prox                *int             `json:"prox"`
}

func (p GamePatch) Apply(g *Game) {
	if p.GameName != nil {
		g.GameName = *p.GameName
	}
	if p.Hole != nil {
		g.Hole = *p.Hole
	}
	if p.Dollars != nil {
		g.Dollars = *p.Dollars
	}
	if p.TotalDollars != nil {
		g.TotalDollars = *p.TotalDollars
	}
	if p.IsContinuingGame != nil {
		g.IsContinuingGame = *p.IsContinuingGame
	}
	if p.PressedButton != nil {
		g.PressedButton = *p.PressedButton
	}
	if p.Wolf != nil {
		g.Wolf = *p.Wolf
	}
	if p.WolfBirdiePoints != nil {
		g.WolfBirdiePoints = *p.WolfBirdiePoints
	}
	if p.WolfEaglePoints != nil {
		g.WolfEaglePoints = *p.WolfEaglePoints
	}
	if p.WolfNonEaglePoints != nil {
		g.WolfNonEaglePoints = *p.WolfNonEaglePoints
	}
	if p.NonWolfBirdiePoints != nil {
		g.NonWolfBirdiePoints = *p.NonWolfBirdiePoints
	}
	if p.Prox != nil {
		g.Prox = *p.Prox
	}
}
