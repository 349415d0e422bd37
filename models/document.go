package models

import (
	"time"

	"gorm.io/datatypes"
)

// Document is a schemaless record addressed by collection and id.
type Document struct {
	Collection string         `json:"collection" gorm:"primaryKey"`
	ID         string         `json:"id" gorm:"primaryKey"`
	Data       datatypes.JSON `json:"data"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}
