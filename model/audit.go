package model

import (
	"time"

	"gorm.io/datatypes"
)

// Actions recorded in the history log.
const (
	ActionUse  = "use"
	ActionCamp = "camp"
)

// ActionLog records one management action taken on a carried item.
type ActionLog struct {
	ID        int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	RunID     string         `gorm:"index:idx_action_run;size:36;not null" json:"run_id"`
	Action    string         `gorm:"size:16;not null" json:"action"`
	ItemName  string         `gorm:"size:128" json:"item_name"`
	ItemIndex string         `gorm:"size:128" json:"item_index"`
	Weight    float64        `json:"weight"`
	Record    datatypes.JSON `json:"record"`
	CreatedAt time.Time      `gorm:"index:idx_action_created;autoCreateTime:milli" json:"created_at"`
}
