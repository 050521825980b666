package models

import "time"

type Position struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	ElectionID uint        `gorm:"not null;index" json:"election_id"`
	Title      string      `gorm:"size:255;not null" json:"title"`
	Candidates []Candidate `gorm:"foreignKey:PositionID" json:"candidates,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}
