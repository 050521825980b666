package models

import "time"

type Election struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	OrganizerID uint       `gorm:"not null;index" json:"organizer_id"`
	Organizer   Organizer  `gorm:"foreignKey:OrganizerID;constraint:OnDelete:CASCADE" json:"-"`
	Name        string     `gorm:"size:255;not null" json:"name"`
	Category    string     `gorm:"size:100" json:"category"`
	Type        string     `gorm:"size:50" json:"type"`
	StartTime   time.Time  `gorm:"not null" json:"start_time"`
	EndTime     time.Time  `gorm:"not null" json:"end_time"`
	Positions   []Position `gorm:"foreignKey:ElectionID" json:"positions,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Election status is derived from the voting window on every read,
// never stored.
const (
	ElectionStatusScheduled = "scheduled"
	ElectionStatusOpen      = "open"
	ElectionStatusClosed    = "closed"
)
