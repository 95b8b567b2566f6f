package controllers

import (
	"net/http"
	"time"

	"github.com/A-Wattamwar/Meal-Planner-Recipe-Finder/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type RealtimeController struct {
	Hub *services.SearchHub
}

// constructor
func NewRealtimeController(hub *services.SearchHub) *RealtimeController {
	return &RealtimeController{Hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// GET /ws/search/:channel — stream search lifecycle events for one screen.
func (rc *RealtimeController) SearchEventsWS(c *gin.Context) {
	channel := c.Param("channel")
	if channel != services.ChannelCreateMeal && channel != services.ChannelRecipes {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown channel"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &services.WSClient{Channel: channel, Conn: conn}
	rc.Hub.Register(cl)

	// ping to keep connections alive through some proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				rc.Hub.Unregister(cl)
				return
			}
		}
	}()

	// read loop ends on client close/error → unregister
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			rc.Hub.Unregister(cl)
			return
		}
	}
}
