package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"regeve-backend/internal/config"
	"regeve-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CandidateHandler struct {
	candidateService *services.CandidateService
	cfg              *config.Config
}

func NewCandidateHandler(candidateService *services.CandidateService, cfg *config.Config) *CandidateHandler {
	return &CandidateHandler{candidateService: candidateService, cfg: cfg}
}

type AddCandidateRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=255" example:"Jane Doe"`
	Email    string `json:"email" binding:"required" example:"jane@example.com"`
	Phone    string `json:"phone" binding:"required" example:"9876543210"`
	Whatsapp string `json:"whatsapp" example:"9876543210"`
	Age      *int   `json:"age" example:"21"`
	Gender   string `json:"gender" example:"female"`
	PhotoURL string `json:"photo_url" example:"/uploads/3f1c.jpg"`
}

// AddCandidate godoc
// @Summary      Add a candidate to a position
// @Description  Contact details must be unique across every candidate of the election, not just the position
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Position ID"
// @Param        request body AddCandidateRequest true "Candidate data"
// @Success      201 {object} Candidate
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/positions/{id}/candidates [post]
func (h *CandidateHandler) AddCandidate(c *gin.Context) {
	organizerID := c.GetUint("organizer_id")
	positionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid position id", Kind: "bad_request"})
		return
	}

	var req AddCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: "bad_request"})
		return
	}

	candidate, err := h.candidateService.AddCandidate(uint(positionID), organizerID, services.CandidateInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Whatsapp: req.Whatsapp,
		Age:      req.Age,
		Gender:   req.Gender,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, candidate)
}

// RemoveCandidate godoc
// @Summary      Remove a candidate
// @Description  Hard delete; rejected once votes reference the candidate
// @Tags         candidates
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Candidate ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/candidates/{id} [delete]
func (h *CandidateHandler) RemoveCandidate(c *gin.Context) {
	organizerID := c.GetUint("organizer_id")
	candidateID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid candidate id", Kind: "bad_request"})
		return
	}

	if err := h.candidateService.RemoveCandidate(uint(candidateID), organizerID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "candidate removed"})
}

// UploadPhoto godoc
// @Summary      Upload a candidate photo
// @Description  Stores the file and returns a stable reference to put in photo_url
// @Tags         candidates
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "Photo file"
// @Success      200 {object} map[string]string
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/upload [post]
func (h *CandidateHandler) UploadPhoto(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no file provided", Kind: "bad_request"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	imageExts := map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true}
	if !imageExts[ext] {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unsupported file format", Kind: "bad_request"})
		return
	}

	if file.Size > 10<<20 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file too large (max 10MB)", Kind: "bad_request"})
		return
	}

	filename := uuid.NewString() + ext
	dst := filepath.Join(h.cfg.UploadDir, filename)

	os.MkdirAll(h.cfg.UploadDir, 0755)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to save file", Kind: "internal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": "/uploads/" + filename})
}
