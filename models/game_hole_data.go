// models/game_hole_data.go
package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GameHoleData is the per-hole wager configuration within a game. One row
// per (game, hole); hole numbers run 1–18.
type GameHoleData struct {
	ID         string `json:"id" gorm:"type:uuid;primaryKey"`
	GameID     string `json:"game_id" gorm:"type:uuid;not null;uniqueIndex:uq_game_hole"`
	HoleNumber int    `json:"hole_number" gorm:"not null;uniqueIndex:uq_game_hole;check:chk_hole_number,hole_number >= 1 AND hole_number <= 18"`

	HoleDollars      decimal.Decimal `json:"hole_dollars" gorm:"type:numeric(10,2);not null"`
	ActivatedDollars decimal.Decimal `json:"activated_dollars" gorm:"type:numeric(10,2);not null"`

	PressedCount        bool `json:"pressed_count" gorm:"not null"`
	PressedPushedToggle bool `json:"pressed_pushed_toggle" gorm:"not null"`
	AlonePushed         bool `json:"alone_pushed" gorm:"not null"`
	RollPushed          bool `json:"roll_pushed" gorm:"not null"`
	ReRollPushed        bool `json:"re_roll_pushed" gorm:"not null"`

	WolfHole int `json:"wolf_hole" gorm:"not null"`

	HoleHandicap int `json:"hole_handicap" gorm:"not null"`
	HolePar      int `json:"hole_par" gorm:"not null"`

	ProxArray bool `json:"prox_array" gorm:"not null"`

	Game Game `json:"-" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
}

func (GameHoleData) TableName() string { return "game_hole_data" }

// Validate enforces the hole-number range at write time, before the store
// ever sees the row.
func (d *GameHoleData) Validate() error {
	if d.HoleNumber < 1 || d.HoleNumber > 18 {
		return &ConstraintError{Rule: "hole_number must be between 1 and 18"}
	}
	return nil
}

// GameHoleDataInput is the create payload. game_id and hole_number are
// required; everything else defaults.
type GameHoleDataInput struct {
	GameID              *string          `json:"game_id"`
	HoleNumber          *int             `json:"hole_number"`
	HoleDollars         *decimal.Decimal `json:"hole_dollars"`
	ActivatedDollars    *decimal.Decimal `json:"activated_dollars"`
	PressedCount        *bool            `json:"pressed_count"`
	PressedPushedToggle *bool            `json:"pressed_pushed_toggle"`
	AlonePushed         *bool            `json:"alone_pushed"`
	RollPushed          *bool            `json:"roll_pushed"`
	ReRollPushed        *bool            `json:"re_roll_pushed"`
	WolfHole            *int             `json:"wolf_hole"`
	HoleHandicap        *int             `json:"hole_handicap"`
	HolePar             *int             `json:"hole_par"`
	ProxArray           *bool            `json:"prox_array"`
}

func NewGameHoleData(in GameHoleDataInput) GameHoleData {
	d := GameHoleData{
		ID:               uuid.NewString(),
		GameID:           *in.GameID,
		HoleNumber:       *in.HoleNumber,
		HoleDollars:      decimal.New(200, -2),
		ActivatedDollars: decimal.New(0, -2),
		HolePar:          4,
	}
	if in.HoleDollars != nil {
		d.HoleDollars = *in.HoleDollars
	}
	if in.ActivatedDollars != nil {
		d.ActivatedDollars = *in.ActivatedDollars
	}
	if in.PressedCount != nil {
		d.PressedCount = *in.PressedCount
	}
	if in.PressedPushedToggle != nil {
		d.PressedPushedToggle = *in.PressedPushedToggle
	}
	if in.AlonePushed != nil {
		d.AlonePushed = *in.AlonePushed
	}
	if in.RollPushed != nil {
		d.RollPushed = *in.RollPushed
	}
	if in.ReRollPushed != nil {
		d.ReRollPushed = *in.ReRollPushed
	}
	if in.WolfHole != nil {
		d.WolfHole = *in.WolfHole
	}
	if in.HoleHandicap != nil {
		d.HoleHandicap = *in.HoleHandicap
	}
	if in.HolePar != nil {
		d.HolePar = *in.HolePar
	}
	if in.ProxArray != nil {
		d.ProxArray = *in.ProxArray
	}
	return d
}

// GameHoleDataPatch is the partial-update payload. game_id and hole_number
// are create-only and cannot be moved by a patch.
type GameHoleDataPatch struct {
	HoleDollars         *decimal.Decimal `json:"hole_dollars"`
	ActivatedDollars    *decimal.Decimal `json:"activated_dollars"`
	PressedCount        *bool            `json:"pressed_count"`
	PressedPushedToggle *bool            `json:"pressed_pushed_toggle"`
	AlonePushed         *bool            `json:"alone_pushed"`
	RollPushed          *bool            `json:"roll_pushed"`
	ReRollPushed        *bool            `json:"re_roll_pushed"`
	WolfHole            *int             `json:"wolf_hole"`
	HoleHandicap        *int             `json:"hole_handicap"`
	HolePar             *int             `json:"hole_par"`
	ProxArray           *bool            `json:"prox_array"`
}

func (p GameHoleDataPatch) Apply(d *GameHoleData) {
	if p.HoleDollars != nil {
		d.HoleDollars = *p.HoleDollars
	}
	if p.ActivatedDollars != nil {
		d.ActivatedDollars = *p.ActivatedDollars
	}
	if p.PressedCount != nil {
		d.PressedCount = *p.PressedCount
	}
	if p.PressedPushedToggle != nil {
		d.PressedPushedToggle = *p.PressedPushedToggle
	}
	if p.AlonePushed != nil {
		d.AlonePushed = *p.AlonePushed
	}
	if p.RollPushed != nil {
		d.RollPushed = *p.RollPushed
	}
	if p.ReRollPushed != nil {
		d.ReRollPushed = *p.ReRollPushed
	}
	if p.WolfHole != nil {
		d.WolfHole = *p.WolfHole
	}
	if p.HoleHandicap != nil {
		d.HoleHandicap = *p.HoleHandicap
	}
	if p.HolePar != nil {
		d.HolePar = *p.HolePar
	}
	if p.ProxArray != nil {
		d.ProxArray = *p.ProxArray
	}
}
