package handlers

import (
	"log"
	"net/http"
	"strconv"

	"regeve-backend/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub *ws.Hub
}

func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWebSocket godoc
// @Summary      WebSocket feed of live election results
// @Description  Receives tally_updated and winner_declared messages for the election
// @Tags         websocket
// @Param        id path int true "Election ID"
// @Router       /ws/election/{id} [get]
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	electionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid election id", Kind: "bad_request"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	eid := uint(electionID)
	h.hub.AddConnection(eid, conn)
	defer h.hub.RemoveConnection(eid, conn)

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
}
