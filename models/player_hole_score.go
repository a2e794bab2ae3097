// models/player_hole_score.go
package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlayerHoleScore is one player's result on one hole. At most one row per
// (game, player, hole).
type PlayerHoleScore struct {
	ID           string `json:"id" gorm:"type:uuid;primaryKey"`
	GameID       string `json:"game_id" gorm:"type:uuid;not null;uniqueIndex:uq_game_player_hole"`
	PlayerNumber int    `json:"player_number" gorm:"not null;uniqueIndex:uq_game_player_hole;check:chk_score_player_number,player_number >= 1 AND player_number <= 9"`
	HoleNumber   int    `json:"hole_number" gorm:"not null;uniqueIndex:uq_game_player_hole;check:chk_score_hole_number,hole_number >= 1 AND hole_number <= 18"`

	PlayerScore int `json:"player_score" gorm:"not null"`
	NetScore    int `json:"net_score" gorm:"not null"`
	GrossScore  int `json:"gross_score" gorm:"not null"`

	PlayerMoney decimal.Decimal `json:"player_money" gorm:"type:numeric(10,2);not null"`

	WolfScore int `json:"wolf_score" gorm:"not null"`
	ProxScore int `json:"prox_score" gorm:"not null"`

	Game Game `json:"-" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
}

func (PlayerHoleScore) TableName() string { return "player_hole_scores" }

func (s *PlayerHoleScore) Validate() error {
	if s.PlayerNumber < 1 || s.PlayerNumber > 9 {
		return &ConstraintError{Rule: "player_number must be between 1 and 9"}
	}
	if s.HoleNumber < 1 || s.HoleNumber > 18 {
		return &ConstraintError{Rule: "hole_number must be between 1 and 18"}
	}
	return nil
}

// PlayerHoleScoreInput is the create payload. game_id, player_number and
// hole_number are required.
type PlayerHoleScoreInput struct {
	GameID       *string          `json:"game_id"`
	PlayerNumber *int             `json:"player_number"`
	HoleNumber   *int             `json:"hole_number"`
	PlayerScore  *int             `json:"player_score"`
	NetScore     *int             `json:"net_score"`
	GrossScore   *int             `json:"gross_score"`
	PlayerMoney  *decimal.Decimal `json:"player_money"`
	WolfScore    *int             `json:"wolf_score"`
	ProxScore    *int             `json:"prox_score"`
}

func NewPlayerHoleScore(in PlayerHoleScoreInput) PlayerHoleScore {
	s := PlayerHoleScore{
		ID:           uuid.NewString(),
		GameID:       *in.GameID,
		PlayerNumber: *in.PlayerNumber,
		HoleNumber:   *in.HoleNumber,
		PlayerMoney:  decimal.New(0, -2),
	}
	if in.PlayerScore != nil {
		s.PlayerScore = *in.PlayerScore
	}
	if in.NetScore != nil {
		s.NetScore = *in.NetScore
	}
	if in.GrossScore != nil {
		s.GrossScore = *in.GrossScore
	}
	if in.PlayerMoney != nil {
		s.PlayerMoney = *in.PlayerMoney
	}
	if in.WolfScore != nil {
		s.WolfScore = *in.WolfScore
	}
	if in.ProxScore != nil {
		s.ProxScore = *in.ProxScore
	}
	return s
}

// PlayerHoleScorePatch is the partial-update payload; the (game, player,
// hole) key is create-only.
type PlayerHoleScorePatch struct {
	PlayerScore *int             `json:"player_score"`
	NetScore    *int             `json:"net_score"`
	GrossScore  *int             `json:"gross_score"`
	PlayerMoney *decimal.Decimal `json:"player_money"`
	WolfScore   *int             `json:"wolf_score"`
	ProxScore   *int             `json:"prox_score"`
}

func (p PlayerHoleScorePatch) Apply(s *PlayerHoleScore) {
	if p.PlayerScore != nil {
		s.PlayerScore = *p.PlayerScore
	}
	if p.NetScore != nil {
		s.NetScore = *p.NetScore
	}
	if p.GrossScore != nil {
		s.GrossScore = *p.GrossScore
	}
	if p.PlayerMoney != nil {
		s.PlayerMoney = *p.PlayerMoney
	}
	if p.WolfScore != nil {
		s.WolfScore = *p.WolfScore
	}
	if p.ProxScore != nil {
		s.ProxScore = *p.ProxScore
	}
}
