package models

import "time"

// Candidate contact fields are stored normalized (trimmed, email lowercased)
// so the per-election unique indexes created in database.AutoMigrate can
// enforce contact uniqueness across all positions of an election.
type Candidate struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ElectionID uint      `gorm:"not null;index" json:"election_id"`
	PositionID uint      `gorm:"not null;index" json:"position_id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Email      string    `gorm:"size:255;not null" json:"email"`
	Phone      string    `gorm:"size:20;not null" json:"phone"`
	Whatsapp   string    `gorm:"size:20" json:"whatsapp,omitempty"`
	Age        *int      `json:"age,omitempty"`
	Gender     string    `gorm:"size:20" json:"gender,omitempty"`
	PhotoURL   string    `gorm:"size:500" json:"photo_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
