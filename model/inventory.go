package model

import (
	"time"

	"gorm.io/datatypes"
)

// InventorySnapshot is the state of an inventory at the end of a run.
type InventorySnapshot struct {
	ID            int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	RunID         string         `gorm:"uniqueIndex;size:36;not null" json:"run_id"`
	ItemCount     int            `gorm:"not null" json:"item_count"`
	CurrentWeight float64        `json:"current_weight"`
	MaxWeight     float64        `json:"max_weight"`
	Encumbered    bool           `gorm:"default:false" json:"encumbered"`
	Coins         string         `gorm:"size:64" json:"coins"` // "1c 2s 3e 4g 5p"
	CampFile      string         `gorm:"size:255" json:"camp_file"`
	Items         datatypes.JSON `json:"items"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
}
