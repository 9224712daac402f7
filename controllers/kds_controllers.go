package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/yeremiapane/bar-app/kds"
	"github.com/yeremiapane/bar-app/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Sesuaikan dengan kebutuhan keamanan
	},
}

// KDSHandler -> endpoint WebSocket. The path role must match the session,
// except for the manager who may watch any screen.
func KDSHandler(c *gin.Context) {
	roleInterface, exists := c.Get("role")
	if !exists {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	role, _ := roleInterface.(string)

	screen := c.Param("role")
	if !models.Role(screen).Valid() {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	if screen != role && role != string(models.RoleManager) {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	kds.RegisterClient(ws, screen)

	// Baca pesan sampai client menutup koneksi
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	kds.UnregisterClient(ws)
}
