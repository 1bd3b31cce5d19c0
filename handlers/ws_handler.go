package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/GDG-Vishnu/community-platform/feed"
	"github.com/GDG-Vishnu/community-platform/logx"
	"github.com/GDG-Vishnu/community-platform/middleware"
	"github.com/GDG-Vishnu/community-platform/services"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

const wsWriteTimeout = 10 * time.Second

type WSHandler struct {
	broker *feed.Broker
	authz  *services.AuthzService
}

func NewWSHandler(broker *feed.Broker, authz *services.AuthzService) *WSHandler {
	return &WSHandler{broker: broker, authz: authz}
}

// WatchSubmissions streams live submission events for one form to an
// elevated caller. The token travels in the query string because browsers
// cannot set websocket headers.
func (h *WSHandler) WatchSubmissions(c *gin.Context) {
	tokenStr := c.Query("token")
	formID := c.Param("id")

	claims, err := middleware.ParseToken(tokenStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid token"})
		return
	}
	if _, err := h.authz.AuthorizeForm(claims, formID); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Unauthorized"})
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logx.Warnf("ws: upgrade failed: %v", err)
		return
	}
	defer ws.Close()

	events, cancel := h.broker.Subscribe(formID)
	defer cancel()

	// drain client frames so close is noticed
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case evt, ok := <-events:
			if !ok {
				return
			}
			_ = ws.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := ws.WriteJSON(evt); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
