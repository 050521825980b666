package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"regeve-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondErrorKinds(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
		kind   string
		field  string
	}{
		{services.ErrWindowClosed, http.StatusConflict, "window_closed", ""},
		{services.ErrDuplicateVote, http.StatusConflict, "duplicate_vote", ""},
		{services.ErrAlreadyDeclared, http.StatusConflict, "already_declared", ""},
		{services.ErrLastPosition, http.StatusConflict, "last_position", ""},
		{services.ErrNoCandidates, http.StatusConflict, "no_candidates", ""},
		{services.ErrUnknownCandidate, http.StatusNotFound, "unknown_candidate", ""},
		{services.ErrNoWinner, http.StatusNotFound, "no_winner", ""},
		{&services.FieldError{Err: services.ErrMissingField, Field: "phone"}, http.StatusBadRequest, "missing_field", "phone"},
		{&services.FieldError{Err: services.ErrInvalidFormat, Field: "email"}, http.StatusBadRequest, "invalid_format", "email"},
		{&services.FieldError{Err: services.ErrDuplicateContact, Field: "whatsapp"}, http.StatusConflict, "duplicate_contact", "whatsapp"},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		respondError(c, tc.err)

		assert.Equal(t, tc.status, w.Code, tc.kind)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), tc.kind)
		assert.Equal(t, tc.kind, resp.Kind)
		assert.Equal(t, tc.field, resp.Field)
		assert.NotEmpty(t, resp.Error)
	}
}
