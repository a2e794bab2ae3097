// models/game_player.go
package models

import "github.com/google/uuid"

// GamePlayer is a participant in a game. Player numbers run 1–9 and are
// unique within a game.
type GamePlayer struct {
	ID           string `json:"id" gorm:"type:uuid;primaryKey"`
	GameID       string `json:"game_id" gorm:"type:uuid;not null;uniqueIndex:uq_game_player"`
	PlayerNumber int    `json:"player_number" gorm:"not null;uniqueIndex:uq_game_player;check:chk_player_number,player_number >= 1 AND player_number <= 9"`

	PlayerName  string `json:"player_name" gorm:"size:255;not null"`
	IsActivated bool   `json:"is_activated" gorm:"not null"`
	Handicap    int    `json:"handicap" gorm:"not null"`

	WolfBirdiePoints    int `json:"wolf_birdie_points" gorm:"not null"`
	WolfEaglePoints     int `json:"wolf_eagle_points" gorm:"not null"`
	WolfNonEaglePoints  int `json:"wolf_non_eagle_points" gorm:"not null"`
	NonWolfBirdiePoints int `json:"non_wolf_birdie_points" gorm:"not null"`

	Game Game `json:"-" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
}

func (GamePlayer) TableName() string { return "game_players" }

func (p *GamePlayer) Validate() error {
	if p.PlayerNumber < 1 || p.PlayerNumber > 9 {
		return &ConstraintError{Rule: "player_number must be between 1 and 9"}
	}
	return nil
}

// GamePlayerInput is the create payload. game_id and player_number are
// required.
type GamePlayerInput struct {
	GameID              *string `json:"game_id"`
	PlayerNumber        *int    `json:"player_number"`
	PlayerName          *string `json:"player_name"`
	IsActivated         *bool   `json:"is_activated"`
	Handicap            *int    `json:"handicap"`
	WolfBirdiePoints    *int    `json:"wolf_birdie_points"`
	WolfEaglePoints     *int    `json:"wolf_eagle_points"`
	WolfNonEaglePoints  *int    `json:"wolf_non_eagle_points"`
	NonWolfBirdiePoints *int    `json:"non_wolf_birdie_points"`
}

func NewGamePlayer(in GamePlayerInput) GamePlayer {
	p := GamePlayer{
		ID:           uuid.NewString(),
		GameID:       *in.GameID,
		PlayerNumber: *in.PlayerNumber,
		IsActivated:  true,
	}
	if in.PlayerName != nil {
		p.PlayerName = *in.PlayerName
	}
	if in.IsActivated != nil {
		p.IsActivated = *in.IsActivated
	}
	if in.Handicap != nil {
		p.Handicap = *in.Handicap
	}
	if in.WolfBirdiePoints != nil {
		p.WolfBirdiePoints = *in.WolfBirdiePoints
	}
	if in.WolfEaglePoints != nil {
		p.WolfEaglePoints = *in.WolfEaglePoints
	}
	if in.WolfNonEaglePoints != nil {
		p.WolfNonEaglePoints = *in.WolfNonEaglePoints
	}
	if in.NonWolfBirdiePoints != nil {
		p.NonWolfBirdiePoints = *in.NonWolfBirdiePoints
	}
	return p
}

// GamePlayerPatch is the partial-update payload; a player cannot be moved to
// another game or number.
type GamePlayerPatch struct {
	PlayerName          *string `json:"player_name"`
	IsActivated         *bool   `json:"is_activated"`
	Handicap            *int    `json:"handicap"`
	WolfBirdiePoints    *int    `json:"wolf_birdie_points"`
	WolfEaglePoints     *int    `json:"wolf_eagle_points"`
	WolfNonEaglePoints  *int    `json:"wolf_non_eagle_points"`
	NonWolfBirdiePoints *int    `json:"non_wolf_birdie_points"`
}

func (pp GamePlayerPatch) Apply(p *GamePlayer) {
	if pp.PlayerName != nil {
		p.PlayerName = *pp.PlayerName
	}
	if pp.IsActivated != nil {
		p.IsActivated = *pp.IsActivated
	}
	if pp.Handicap != nil {
		p.Handicap = *pp.Handicap
	}
	if pp.WolfBirdiePoints != nil {
		p.WolfBirdiePoints = *pp.WolfBirdiePoints
	}
	if pp.WolfEaglePoints != nil {
		p.WolfEaglePoints = *pp.WolfEaglePoints
	}
	if pp.WolfNonEaglePoints != nil {
		p.WolfNonEaglePoints = *pp.WolfNonEaglePoints
	}
	if pp.NonWolfBirdiePoints != nil {
		p.NonWolfBirdiePoints = *pp.NonWolfBirdiePoints
	}
}
