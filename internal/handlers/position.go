package handlers

import (
	"net/http"
	"strconv"

	"regeve-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type PositionHandler struct {
	electionService *services.ElectionService
}

func NewPositionHandler(electionService *services.ElectionService) *PositionHandler {
	return &PositionHandler{electionService: electionService}
}

type CreatePositionRequest struct {
	Title string `json:"title" binding:"required,min=1,max=255" example:"President"`
}

// CreatePosition godoc
// @Summary      Create a position
// @Description  Add a contestable position to an election; titles are unique per election, case-insensitively
// @Tags         positions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Election ID"
// @Param        request body CreatePositionRequest true "Position data"
// @Success      201 {object} Position
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/elections/{id}/positions [post]
func (h *PositionHandler) CreatePosition(c *gin.Context) {
	organizerID := c.GetUint("organizer_id")
	electionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid election id", Kind: "bad_request"})
		return
	}

	var req CreatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: "bad_request"})
		return
	}

	position, err := h.electionService.CreatePosition(uint(electionID), organizerID, req.Title)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, position)
}

// ListPositions godoc
// @Summary      List positions of an election
// @Description  Positions in insertion order with nested candidates and candidate counts
// @Tags         positions
// @Produce      json
// @Param        id path int true "Election ID"
// @Success      200 {array} services.PositionSummary
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/elections/{id}/positions [get]
func (h *PositionHandler) ListPositions(c *gin.Context) {
	electionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid election id", Kind: "bad_request"})
		return
	}

	positions, err := h.electionService.ListPositions(uint(electionID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, positions)
}

// DeletePosition godoc
// @Summary      Delete a position
// @Description  Deletes a position and its candidates; rejected for the last position of an election or once votes exist
// @Tags         positions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Position ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/positions/{id} [delete]
func (h *PositionHandler) DeletePosition(c *gin.Context) {
	organizerID := c.GetUint("organizer_id")
	positionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid position id", Kind: "bad_request"})
		return
	}

	if err := h.electionService.DeletePosition(uint(positionID), organizerID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "position deleted"})
}
