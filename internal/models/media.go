package models

import "time"

// Media is a stored upload. FilePath is assigned by the blob storage, never
// by the caller; UpdatedAt is refreshed whenever the underlying file changes.
type Media struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FilePath string `gorm:"size:255;not null" json:"file_path"`

	UpdatedAt time.Time `json:"updated_at"`
}
