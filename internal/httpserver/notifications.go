package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"digital-menu/internal/notify"
)

func notificationsHandler(buffer *notify.Buffer) gin.HandlerFunc {
	return func(c *gin.Context) {
		events := []notify.Event{}
		if buffer != nil {
			events = buffer.Recent()
		}
		c.JSON(http.StatusOK, gin.H{"notifications": events})
	}
}
