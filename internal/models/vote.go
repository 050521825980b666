package models

import "time"

// Vote rows are append-only. The composite unique index makes the
// one-ballot-per-voter-per-position rule a storage-level guarantee, and the
// idempotency key lets a retried cast be recognized as the same ballot.
type Vote struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ElectionID     uint      `gorm:"not null;index" json:"election_id"`
	PositionID     uint      `gorm:"not null;uniqueIndex:idx_vote_position_voter" json:"position_id"`
	CandidateID    uint      `gorm:"not null;index" json:"candidate_id"`
	VoterID        uint      `gorm:"not null;uniqueIndex:idx_vote_position_voter" json:"voter_id"`
	IdempotencyKey string    `gorm:"size:64;not null;uniqueIndex" json:"-"`
	CastAt         time.Time `json:"cast_at"`
}
