package services

import (
	"errors"
	"strings"
	"time"

	"regeve-backend/internal/models"

	"gorm.io/gorm"
)

type ElectionService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewElectionService(db *gorm.DB) *ElectionService {
	return &ElectionService{db: db, now: time.Now}
}

type ElectionState struct {
	models.Election
	Status           string `json:"status"`
	RemainingSeconds int64  `json:"remaining_seconds"`
}

func (s *ElectionService) CreateElection(organizerID uint, name, category, electionType string, start, end time.Time) (*models.Election, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fieldErr(ErrMissingField, "name")
	}
	if !start.Before(end) {
		return nil, ErrInvalidWindow
	}

	election := models.Election{
		OrganizerID: organizerID,
		Name:        name,
		Category:    strings.TrimSpace(category),
		Type:        strings.TrimSpace(electionType),
		StartTime:   start,
		EndTime:     end,
	}
	if err := s.db.Create(&election).Error; err != nil {
		return nil, err
	}
	return &election, nil
}

func (s *ElectionService) GetElection(electionID uint) (*ElectionState, error) {
	var election models.Election
	if err := s.db.First(&election, electionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrElectionNotFound
		}
		return nil, err
	}

	now := s.now()
	return &ElectionState{
		Election:         election,
		Status:           WindowState(&election, now),
		RemainingSeconds: int64(RemainingTime(&election, now).Seconds()),
	}, nil
}

func (s *ElectionService) ListElections(organizerID uint) ([]ElectionState, error) {
	var elections []models.Election
	if err := s.db.Where("organizer_id = ?", organizerID).
		Order("created_at DESC").
		Find(&elections).Error; err != nil {
		return nil, err
	}

	now := s.now()
	states := make([]ElectionState, len(elections))
	for i, e := range elections {
		states[i] = ElectionState{
			Election:         e,
			Status:           WindowState(&e, now),
			RemainingSeconds: int64(RemainingTime(&e, now).Seconds()),
		}
	}
	return states, nil
}

func (s *ElectionService) CreatePosition(electionID, organizerID uint, title string) (*models.Position, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fieldErr(ErrMissingField, "title")
	}

	var election models.Election
	if err := s.db.Where("id = ? AND organizer_id = ?", electionID, organizerID).
		First(&election).Error; err != nil {
		return nil, ErrElectionNotFound
	}

	var count int64
	s.db.Model(&models.Position{}).
		Where("election_id = ? AND lower(title) = lower(?)", electionID, title).
		Count(&count)
	if count > 0 {
		return nil, ErrDuplicatePosition
	}

	position := models.Position{ElectionID: electionID, Title: title}
	if err := s.db.Create(&position).Error; err != nil {
		// Unique index on (election_id, lower(title)) closes the
		// check-then-act race between concurrent creates.
		if isUniqueViolation(err) {
			return nil, ErrDuplicatePosition
		}
		return nil, err
	}
	return &position, nil
}

// DeletePosition removes a position and its candidates in one transaction.
// It refuses to delete the election's only position, and refuses to delete a
// position that already holds recorded ballots.
func (s *ElectionService) DeletePosition(positionID, organizerID uint) error {
	var position models.Position
	if err := s.db.First(&position, positionID).Error; err != nil {
		return ErrPositionNotFound
	}
	var election models.Election
	if err := s.db.Where("id = ? AND organizer_id = ?", position.ElectionID, organizerID).
		First(&election).Error; err != nil {
		return ErrPositionNotFound
	}

	// Both guards run inside the delete transaction: a ballot committed
	// after the count must not end up referencing a deleted position.
	return s.db.Transaction(func(tx *gorm.DB) error {
		var positionCount int64
		if err := tx.Model(&models.Position{}).
			Where("election_id = ?", position.ElectionID).
			Count(&positionCount).Error; err != nil {
			return err
		}
		if positionCount <= 1 {
			return ErrLastPosition
		}

		var voteCount int64
		if err := tx.Model(&models.Vote{}).
			Where("position_id = ?", positionID).
			Count(&voteCount).Error; err != nil {
			return err
		}
		if voteCount > 0 {
			return ErrVotesExist
		}

		if err := tx.Where("position_id = ?", positionID).Delete(&models.Candidate{}).Error; err != nil {
			return err
		}
		if err := tx.Where("position_id = ?", positionID).Delete(&models.Tally{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Position{}, positionID).Error
	})
}

type PositionSummary struct {
	ID             uint               `json:"id"`
	ElectionID     uint               `json:"election_id"`
	Title          string             `json:"title"`
	CandidateCount int                `json:"candidate_count"`
	Candidates     []models.Candidate `json:"candidates"`
}

func (s *ElectionService) ListPositions(electionID uint) ([]PositionSummary, error) {
	var election models.Election
	if err := s.db.First(&election, electionID).Error; err != nil {
		return nil, ErrElectionNotFound
	}

	var positions []models.Position
	if err := s.db.Where("election_id = ?", electionID).
		Order("id ASC").
		Preload("Candidates", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Find(&positions).Error; err != nil {
		return nil, err
	}

	summaries := make([]PositionSummary, len(positions))
	for i, p := range positions {
		summaries[i] = PositionSummary{
			ID:             p.ID,
			ElectionID:     p.ElectionID,
			Title:          p.Title,
			CandidateCount: len(p.Candidates),
			Candidates:     p.Candidates,
		}
	}
	return summaries, nil
}
