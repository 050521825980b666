package services

import (
	"regexp"
	"strings"

	"regeve-backend/internal/models"

	"gorm.io/gorm"
)

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	digitsPattern = regexp.MustCompile(`^[0-9]+$`)
)

type CandidateService struct {
	db *gorm.DB
}

func NewCandidateService(db *gorm.DB) *CandidateService {
	return &CandidateService{db: db}
}

type CandidateInput struct {
	Name     string
	Email    string
	Phone    string
	Whatsapp string
	Age      *int
	Gender   string
	PhotoURL string
}

// AddCandidate validates the input, scans the whole election for colliding
// contact details and inserts the candidate, all inside one transaction. The
// per-election unique indexes on email/phone/whatsapp are the authoritative
// backstop when two inserts race past the scan.
func (s *CandidateService) AddCandidate(positionID, organizerID uint, in CandidateInput) (*models.Candidate, error) {
	var position models.Position
	if err := s.db.First(&position, positionID).Error; err != nil {
		return nil, ErrPositionNotFound
	}
	var election models.Election
	if err := s.db.Where("id = ? AND organizer_id = ?", position.ElectionID, organizerID).
		First(&election).Error; err != nil {
		return nil, ErrPositionNotFound
	}

	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	phone := strings.TrimSpace(in.Phone)
	whatsapp := strings.TrimSpace(in.Whatsapp)

	if name == "" {
		return nil, fieldErr(ErrMissingField, "name")
	}
	if email == "" {
		return nil, fieldErr(ErrMissingField, "email")
	}
	if phone == "" {
		return nil, fieldErr(ErrMissingField, "phone")
	}
	if !emailPattern.MatchString(email) {
		return nil, fieldErr(ErrInvalidFormat, "email")
	}
	if !digitsPattern.MatchString(phone) {
		return nil, fieldErr(ErrInvalidFormat, "phone")
	}
	if whatsapp != "" && !digitsPattern.MatchString(whatsapp) {
		return nil, fieldErr(ErrInvalidFormat, "whatsapp")
	}

	candidate := models.Candidate{
		ElectionID: position.ElectionID,
		PositionID: positionID,
		Name:       name,
		Email:      email,
		Phone:      phone,
		Whatsapp:   whatsapp,
		Age:        in.Age,
		Gender:     strings.TrimSpace(in.Gender),
		PhotoURL:   strings.TrimSpace(in.PhotoURL),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing []models.Candidate
		if err := tx.Where("election_id = ?", position.ElectionID).Find(&existing).Error; err != nil {
			return err
		}
		// Check order matters: the first colliding field is the one
		// reported, even when several collide.
		for _, c := range existing {
			if c.Email == email {
				return fieldErr(ErrDuplicateContact, "email")
			}
		}
		for _, c := range existing {
			if c.Phone == phone {
				return fieldErr(ErrDuplicateContact, "phone")
			}
		}
		if whatsapp != "" {
			for _, c := range existing {
				if c.Whatsapp == whatsapp {
					return fieldErr(ErrDuplicateContact, "whatsapp")
				}
			}
		}
		return tx.Create(&candidate).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fieldErr(ErrDuplicateContact, s.collidingField(position.ElectionID, email, phone))
		}
		return nil, err
	}
	return &candidate, nil
}

// collidingField re-derives which contact field tripped the unique index
// after a racing insert won, keeping the email-phone-whatsapp report order.
func (s *CandidateService) collidingField(electionID uint, email, phone string) string {
	var n int64
	s.db.Model(&models.Candidate{}).
		Where("election_id = ? AND email = ?", electionID, email).Count(&n)
	if n > 0 {
		return "email"
	}
	s.db.Model(&models.Candidate{}).
		Where("election_id = ? AND phone = ?", electionID, phone).Count(&n)
	if n > 0 {
		return "phone"
	}
	return "whatsapp"
}

// RemoveCandidate hard-deletes a candidate. A candidate already referenced by
// recorded ballots cannot be removed, votes are append-only.
func (s *CandidateService) RemoveCandidate(candidateID, organizerID uint) error {
	var candidate models.Candidate
	if err := s.db.First(&candidate, candidateID).Error; err != nil {
		return ErrCandidateNotFound
	}
	var election models.Election
	if err := s.db.Where("id = ? AND organizer_id = ?", candidate.ElectionID, organizerID).
		First(&election).Error; err != nil {
		return ErrCandidateNotFound
	}

	// The guard runs inside the delete transaction: a ballot committed
	// after the count must not end up referencing a deleted candidate.
	return s.db.Transaction(func(tx *gorm.DB) error {
		var voteCount int64
		if err := tx.Model(&models.Vote{}).
			Where("candidate_id = ?", candidateID).
			Count(&voteCount).Error; err != nil {
			return err
		}
		if voteCount > 0 {
			return ErrVotesExist
		}

		if err := tx.Where("candidate_id = ?", candidateID).Delete(&models.Tally{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Candidate{}, candidateID).Error
	})
}
