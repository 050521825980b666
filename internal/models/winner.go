package models

import "time"

type Winner struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PositionID  uint      `gorm:"not null;uniqueIndex" json:"position_id"`
	CandidateID uint      `gorm:"not null" json:"candidate_id"`
	Candidate   Candidate `gorm:"foreignKey:CandidateID" json:"candidate,omitempty"`
	DeclaredAt  time.Time `json:"declared_at"`
}
