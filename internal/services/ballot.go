package services

import (
	"errors"
	"strings"
	"time"

	"regeve-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BallotService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewBallotService(db *gorm.DB) *BallotService {
	return &BallotService{db: db, now: time.Now}
}

type CastResult struct {
	Vote     models.Vote `json:"vote"`
	Count    int64       `json:"count"`
	Replayed bool        `json:"replayed"`
}

// CastVote records a ballot and bumps the tally in one transaction. The
// voting window is re-evaluated at call time, never trusted from the client.
// The (position_id, voter_id) unique index makes the duplicate check atomic:
// of N racing casts exactly one insert commits and the rest surface here as
// unique violations. A retry carrying the idempotency key of an already
// recorded ballot gets the recorded result back instead of a duplicate error.
func (s *BallotService) CastVote(positionID, candidateID, voterID uint, idempotencyKey string) (*CastResult, error) {
	idempotencyKey = strings.TrimSpace(idempotencyKey)
	if idempotencyKey == "" {
		return nil, fieldErr(ErrMissingField, "idempotency_key")
	}

	var position models.Position
	if err := s.db.First(&position, positionID).Error; err != nil {
		return nil, ErrPositionNotFound
	}

	var election models.Election
	if err := s.db.First(&election, position.ElectionID).Error; err != nil {
		return nil, ErrElectionNotFound
	}

	if WindowState(&election, s.now()) != models.ElectionStatusOpen {
		return nil, ErrWindowClosed
	}

	var candidate models.Candidate
	if err := s.db.Where("id = ? AND position_id = ?", candidateID, positionID).
		First(&candidate).Error; err != nil {
		return nil, ErrUnknownCandidate
	}

	vote := models.Vote{
		ElectionID:     position.ElectionID,
		PositionID:     positionID,
		CandidateID:    candidateID,
		VoterID:        voterID,
		IdempotencyKey: idempotencyKey,
		CastAt:         s.now(),
	}

	var count int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&vote).Error; err != nil {
			return err
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "position_id"}, {Name: "candidate_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"count": gorm.Expr("count + 1")}),
		}).Create(&models.Tally{
			PositionID:  positionID,
			CandidateID: candidateID,
			Count:       1,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Tally{}).
			Where("position_id = ? AND candidate_id = ?", positionID, candidateID).
			Select("count").
			Scan(&count).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return s.resolveConflict(positionID, candidateID, voterID, idempotencyKey)
		}
		return nil, err
	}

	return &CastResult{Vote: vote, Count: count, Replayed: false}, nil
}

// resolveConflict decides whether a unique violation was a retried request or
// a genuine second ballot.
func (s *BallotService) resolveConflict(positionID, candidateID, voterID uint, idempotencyKey string) (*CastResult, error) {
	var existing models.Vote
	err := s.db.Where("idempotency_key = ?", idempotencyKey).First(&existing).Error
	if err == nil {
		if existing.PositionID != positionID || existing.VoterID != voterID || existing.CandidateID != candidateID {
			return nil, ErrIdempotencyConflict
		}
		var count int64
		if err := s.db.Model(&models.Tally{}).
			Where("position_id = ? AND candidate_id = ?", positionID, candidateID).
			Select("count").
			Scan(&count).Error; err != nil {
			return nil, err
		}
		return &CastResult{Vote: existing, Count: count, Replayed: true}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return nil, ErrDuplicateVote
}

// GetTally returns the committed count per candidate of a position.
// Candidates nobody has voted for yet appear with a zero count.
func (s *BallotService) GetTally(positionID uint) (map[uint]int64, error) {
	var position models.Position
	if err := s.db.First(&position, positionID).Error; err != nil {
		return nil, ErrPositionNotFound
	}

	var candidates []models.Candidate
	if err := s.db.Where("position_id = ?", positionID).Find(&candidates).Error; err != nil {
		return nil, err
	}

	var tallies []models.Tally
	if err := s.db.Where("position_id = ?", positionID).Find(&tallies).Error; err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(candidates))
	for _, c := range candidates {
		counts[c.ID] = 0
	}
	for _, t := range tallies {
		counts[t.CandidateID] = t.Count
	}
	return counts, nil
}

// GetMyBallots lists the votes a voter has already cast in an election. The
// fact is re-derived from stored rows on every read, there is no client-held
// submitted flag to go stale.
func (s *BallotService) GetMyBallots(electionID, voterID uint) ([]models.Vote, error) {
	var votes []models.Vote
	if err := s.db.Where("election_id = ? AND voter_id = ?", electionID, voterID).
		Order("cast_at ASC").
		Find(&votes).Error; err != nil {
		return nil, err
	}
	return votes, nil
}
