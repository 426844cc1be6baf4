// Package httpapi exposes the event ingest endpoint the trigger source
// pushes lifecycle notifications to. A 5xx response tells the source to
// redeliver the event; a 2xx acknowledges it even when advisory steps
// failed.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fkkmemi/boardsync/internal/logging"
	"github.com/fkkmemi/boardsync/internal/server/maintain"
	"github.com/fkkmemi/boardsync/internal/server/models"
)

// EventHandler runs the pipeline bound to an event type.
type EventHandler interface {
	Handle(ctx context.Context, ev *models.Event) (*maintain.Result, error)
}

// NewRouter builds the gin engine: a public health probe and the
// bearer-token protected event ingest endpoint.
func NewRouter(handler EventHandler, secretKey string, log logging.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", healthCheck)

	events := NewEventHandlerAPI(handler, log)

	v1 := router.Group("/v1")
	v1.Use(authMiddleware(secretKey))
	{
		v1.POST("/events", events.PostEvent)
	}

	return router
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
