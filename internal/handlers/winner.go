package handlers

import (
	"net/http"
	"strconv"

	"regeve-backend/internal/services"
	"regeve-backend/internal/ws"

	"github.com/gin-gonic/gin"
)

type WinnerHandler struct {
	winnerService *services.WinnerService
	hub           *ws.Hub
}

func NewWinnerHandler(winnerService *services.WinnerService, hub *ws.Hub) *WinnerHandler {
	return &WinnerHandler{winnerService: winnerService, hub: hub}
}

type DeclareWinnerRequest struct {
	CandidateID uint `json:"candidate_id" binding:"required" example:"3"`
}

// DeclareWinner godoc
// @Summary      Declare the winner of a position
// @Description  Exactly one declaration per position; a second attempt fails
// @Tags         winners
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Position ID"
// @Param        request body DeclareWinnerRequest true "Winner data"
// @Success      201 {object} Winner
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/positions/{id}/winner [post]
func (h *WinnerHandler) DeclareWinner(c *gin.Context) {
	organizerID := c.GetUint("organizer_id")
	positionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid position id", Kind: "bad_request"})
		return
	}

	var req DeclareWinnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: "bad_request"})
		return
	}

	winner, err := h.winnerService.DeclareWinner(uint(positionID), req.CandidateID, organizerID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(winner.Candidate.ElectionID, ws.WSMessage{
		Type: "winner_declared",
		Data: winner,
	})

	c.JSON(http.StatusCreated, winner)
}

// GetWinner godoc
// @Summary      Get the winner of a position
// @Tags         winners
// @Produce      json
// @Param        id path int true "Position ID"
// @Success      200 {object} Winner
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/positions/{id}/winner [get]
func (h *WinnerHandler) GetWinner(c *gin.Context) {
	positionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid position id", Kind: "bad_request"})
		return
	}

	winner, err := h.winnerService.GetWinner(uint(positionID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, winner)
}

// ListWinners godoc
// @Summary      List declared winners of an election
// @Tags         winners
// @Produce      json
// @Param        id path int true "Election ID"
// @Success      200 {array} Winner
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/elections/{id}/winners [get]
func (h *WinnerHandler) ListWinners(c *gin.Context) {
	electionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid election id", Kind: "bad_request"})
		return
	}

	winners, err := h.winnerService.ListWinners(uint(electionID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, winners)
}
