package handlers

import (
	"net/http"
	"strconv"
	"time"

	"regeve-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ElectionHandler struct {
	electionService *services.ElectionService
}

func NewElectionHandler(electionService *services.ElectionService) *ElectionHandler {
	return &ElectionHandler{electionService: electionService}
}

type CreateElectionRequest struct {
	Name      string    `json:"name" binding:"required,min=1,max=255" example:"Student Council 2026"`
	Category  string    `json:"category" binding:"max=100" example:"college"`
	Type      string    `json:"type" binding:"max=50" example:"general"`
	StartTime time.Time `json:"start_time" binding:"required" example:"2026-09-01T09:00:00Z"`
	EndTime   time.Time `json:"end_time" binding:"required" example:"2026-09-01T17:00:00Z"`
}

// CreateElection godoc
// @Summary      Create an election
// @Description  Create an election with a voting window; start must precede end
// @Tags         elections
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateElectionRequest true "Election data"
// @Success      201 {object} Election
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/elections [post]
func (h *ElectionHandler) CreateElection(c *gin.Context) {
	organizerID := c.GetUint("organizer_id")

	var req CreateElectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: "bad_request"})
		return
	}

	election, err := h.electionService.CreateElection(organizerID, req.Name, req.Category, req.Type, req.StartTime, req.EndTime)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, election)
}

// ListElections godoc
// @Summary      List elections
// @Description  List the authenticated organizer's elections with derived status
// @Tags         elections
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} services.ElectionState
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/elections [get]
func (h *ElectionHandler) ListElections(c *gin.Context) {
	organizerID := c.GetUint("organizer_id")

	elections, err := h.electionService.ListElections(organizerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, elections)
}

// GetElection godoc
// @Summary      Get an election
// @Description  Election metadata with status derived from the voting window at request time
// @Tags         elections
// @Produce      json
// @Param        id path int true "Election ID"
// @Success      200 {object} services.ElectionState
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/elections/{id} [get]
func (h *ElectionHandler) GetElection(c *gin.Context) {
	electionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid election id", Kind: "bad_request"})
		return
	}

	state, err := h.electionService.GetElection(uint(electionID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}
