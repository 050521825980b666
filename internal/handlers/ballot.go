package handlers

import (
	"net/http"
	"strconv"

	"regeve-backend/internal/services"
	"regeve-backend/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BallotHandler struct {
	ballotService *services.BallotService
	hub           *ws.Hub
}

func NewBallotHandler(ballotService *services.BallotService, hub *ws.Hub) *BallotHandler {
	return &BallotHandler{ballotService: ballotService, hub: hub}
}

type CastVoteRequest struct {
	PositionID     uint   `json:"position_id" binding:"required" example:"1"`
	CandidateID    uint   `json:"candidate_id" binding:"required" example:"3"`
	IdempotencyKey string `json:"idempotency_key" example:"5f0a2a6e-0b1c-4f62-9f5d-2f6f58d1c001"`
}

// CastVote godoc
// @Summary      Cast a vote
// @Description  One ballot per voter per position, accepted only while the window is open. Send the same idempotency key when retrying a timed-out request.
// @Tags         votes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CastVoteRequest true "Vote data"
// @Success      201 {object} services.CastResult
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/votes [post]
func (h *BallotHandler) CastVote(c *gin.Context) {
	voterID := c.GetUint("voter_id")

	var req CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: "bad_request"})
		return
	}

	// A client that cannot retry safely still gets a key; only explicit
	// retries reuse one.
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = uuid.NewString()
	}

	result, err := h.ballotService.CastVote(req.PositionID, req.CandidateID, voterID, req.IdempotencyKey)
	if err != nil {
		respondError(c, err)
		return
	}

	if !result.Replayed {
		h.hub.Broadcast(result.Vote.ElectionID, ws.WSMessage{
			Type: "tally_updated",
			Data: gin.H{
				"position_id":  result.Vote.PositionID,
				"candidate_id": result.Vote.CandidateID,
				"count":        result.Count,
			},
		})
	}

	c.JSON(http.StatusCreated, result)
}

// GetTally godoc
// @Summary      Get the tally of a position
// @Description  Committed vote counts per candidate; candidates without votes report zero
// @Tags         votes
// @Produce      json
// @Param        id path int true "Position ID"
// @Success      200 {object} map[uint]int64
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/positions/{id}/tally [get]
func (h *BallotHandler) GetTally(c *gin.Context) {
	positionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid position id", Kind: "bad_request"})
		return
	}

	counts, err := h.ballotService.GetTally(uint(positionID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, counts)
}

// GetMyBallots godoc
// @Summary      List the authenticated voter's ballots in an election
// @Tags         votes
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Election ID"
// @Success      200 {array} Vote
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/elections/{id}/my-ballots [get]
func (h *BallotHandler) GetMyBallots(c *gin.Context) {
	voterID := c.GetUint("voter_id")
	electionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid election id", Kind: "bad_request"})
		return
	}

	votes, err := h.ballotService.GetMyBallots(uint(electionID), voterID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, votes)
}
