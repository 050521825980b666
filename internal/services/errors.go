package services

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrElectionNotFound  = errors.New("election not found")
	ErrPositionNotFound  = errors.New("position not found")
	ErrCandidateNotFound = errors.New("candidate not found")

	ErrInvalidWindow     = errors.New("election end time must be after start time")
	ErrDuplicatePosition = errors.New("a position with this title already exists in the election")
	ErrLastPosition      = errors.New("cannot delete the only position of an election")
	ErrVotesExist        = errors.New("votes have already been cast")

	ErrMissingField     = errors.New("missing required field")
	ErrInvalidFormat    = errors.New("invalid field format")
	ErrDuplicateContact = errors.New("contact detail already used by another candidate in this election")

	ErrWindowClosed        = errors.New("voting window is not open")
	ErrUnknownCandidate    = errors.New("candidate is not standing for this position")
	ErrDuplicateVote       = errors.New("voter has already cast a ballot for this position")
	ErrIdempotencyConflict = errors.New("idempotency key already used for a different ballot")

	ErrNoCandidates           = errors.New("position has no candidates")
	ErrAlreadyDeclared        = errors.New("winner already declared for this position")
	ErrCandidateNotInPosition = errors.New("candidate does not belong to this position")
	ErrNoWinner               = errors.New("no winner declared for this position")
)

// FieldError attaches the offending field name to a validation or
// business-rule error so callers can correct just that input.
type FieldError struct {
	Err   error
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Field)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldErr(err error, field string) error {
	return &FieldError{Err: err, Field: field}
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
