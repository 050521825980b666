package services

import (
	"errors"
	"time"

	"regeve-backend/internal/models"

	"gorm.io/gorm"
)

type WinnerService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewWinnerService(db *gorm.DB) *WinnerService {
	return &WinnerService{db: db, now: time.Now}
}

// DeclareWinner records the single winner of a position. The unique index on
// position_id enforces at-most-one declaration at the storage layer, so two
// racing declarations cannot both commit. Declaration is not gated on the
// voting window having closed.
func (s *WinnerService) DeclareWinner(positionID, candidateID, organizerID uint) (*models.Winner, error) {
	var position models.Position
	if err := s.db.First(&position, positionID).Error; err != nil {
		return nil, ErrPositionNotFound
	}
	var election models.Election
	if err := s.db.Where("id = ? AND organizer_id = ?", position.ElectionID, organizerID).
		First(&election).Error; err != nil {
		return nil, ErrPositionNotFound
	}

	var candidateCount int64
	s.db.Model(&models.Candidate{}).Where("position_id = ?", positionID).Count(&candidateCount)
	if candidateCount == 0 {
		return nil, ErrNoCandidates
	}

	var candidate models.Candidate
	if err := s.db.Where("id = ? AND position_id = ?", candidateID, positionID).
		First(&candidate).Error; err != nil {
		return nil, ErrCandidateNotInPosition
	}

	winner := models.Winner{
		PositionID:  positionID,
		CandidateID: candidateID,
		DeclaredAt:  s.now(),
	}
	if err := s.db.Create(&winner).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyDeclared
		}
		return nil, err
	}

	winner.Candidate = candidate
	return &winner, nil
}

func (s *WinnerService) GetWinner(positionID uint) (*models.Winner, error) {
	var position models.Position
	if err := s.db.First(&position, positionID).Error; err != nil {
		return nil, ErrPositionNotFound
	}

	var winner models.Winner
	err := s.db.Where("position_id = ?", positionID).
		Preload("Candidate").
		First(&winner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoWinner
		}
		return nil, err
	}
	return &winner, nil
}

func (s *WinnerService) ListWinners(electionID uint) ([]models.Winner, error) {
	var election models.Election
	if err := s.db.First(&election, electionID).Error; err != nil {
		return nil, ErrElectionNotFound
	}

	var positionIDs []uint
	if err := s.db.Model(&models.Position{}).
		Where("election_id = ?", electionID).
		Pluck("id", &positionIDs).Error; err != nil {
		return nil, err
	}

	var winners []models.Winner
	if err := s.db.Where("position_id IN ?", positionIDs).
		Preload("Candidate").
		Order("position_id ASC").
		Find(&winners).Error; err != nil {
		return nil, err
	}
	return winners, nil
}
