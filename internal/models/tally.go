package models

// Tally is maintained inside the same transaction that inserts a Vote, so
// count always equals the number of persisted Vote rows for the key.
type Tally struct {
	ID          uint  `gorm:"primaryKey" json:"id"`
	PositionID  uint  `gorm:"not null;uniqueIndex:idx_tally_position_candidate" json:"position_id"`
	CandidateID uint  `gorm:"not null;uniqueIndex:idx_tally_position_candidate" json:"candidate_id"`
	Count       int64 `gorm:"not null;default:0" json:"count"`
}
