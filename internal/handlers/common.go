package handlers

import (
	"errors"
	"net/http"

	"regeve-backend/internal/models"
	"regeve-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
	Kind  string `json:"kind" example:"duplicate_vote"`
	Field string `json:"field,omitempty" example:"email"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// Type aliases so swag can resolve models in annotations.
type Election = models.Election
type Position = models.Position
type Candidate = models.Candidate
type Vote = models.Vote
type Winner = models.Winner

// respondError maps service errors to an HTTP status and a machine-readable
// kind so clients can branch on cause rather than parse message text.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	kind := "internal"

	switch {
	case errors.Is(err, services.ErrMissingField):
		status, kind = http.StatusBadRequest, "missing_field"
	case errors.Is(err, services.ErrInvalidFormat):
		status, kind = http.StatusBadRequest, "invalid_format"
	case errors.Is(err, services.ErrInvalidWindow):
		status, kind = http.StatusBadRequest, "invalid_window"
	case errors.Is(err, services.ErrDuplicateContact):
		status, kind = http.StatusConflict, "duplicate_contact"
	case errors.Is(err, services.ErrDuplicatePosition):
		status, kind = http.StatusConflict, "duplicate_position"
	case errors.Is(err, services.ErrLastPosition):
		status, kind = http.StatusConflict, "last_position"
	case errors.Is(err, services.ErrVotesExist):
		status, kind = http.StatusConflict, "votes_exist"
	case errors.Is(err, services.ErrWindowClosed):
		status, kind = http.StatusConflict, "window_closed"
	case errors.Is(err, services.ErrDuplicateVote):
		status, kind = http.StatusConflict, "duplicate_vote"
	case errors.Is(err, services.ErrIdempotencyConflict):
		status, kind = http.StatusConflict, "idempotency_conflict"
	case errors.Is(err, services.ErrNoCandidates):
		status, kind = http.StatusConflict, "no_candidates"
	case errors.Is(err, services.ErrAlreadyDeclared):
		status, kind = http.StatusConflict, "already_declared"
	case errors.Is(err, services.ErrCandidateNotInPosition):
		status, kind = http.StatusConflict, "candidate_not_in_position"
	case errors.Is(err, services.ErrUnknownCandidate):
		status, kind = http.StatusNotFound, "unknown_candidate"
	case errors.Is(err, services.ErrElectionNotFound):
		status, kind = http.StatusNotFound, "election_not_found"
	case errors.Is(err, services.ErrPositionNotFound):
		status, kind = http.StatusNotFound, "position_not_found"
	case errors.Is(err, services.ErrCandidateNotFound):
		status, kind = http.StatusNotFound, "candidate_not_found"
	case errors.Is(err, services.ErrNoWinner):
		status, kind = http.StatusNotFound, "no_winner"
	}

	resp := ErrorResponse{Error: err.Error(), Kind: kind}
	var fieldErr *services.FieldError
	if errors.As(err, &fieldErr) {
		resp.Field = fieldErr.Field
	}
	c.JSON(status, resp)
}
