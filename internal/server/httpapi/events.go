package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fkkmemi/boardsync/internal/common"
	"github.com/fkkmemi/boardsync/internal/logging"
	"github.com/fkkmemi/boardsync/internal/server/models"
)

// EventHandlerAPI serves the event ingest endpoint.
type EventHandlerAPI struct {
	handler EventHandler
	log     logging.Logger
}

func NewEventHandlerAPI(handler EventHandler, log logging.Logger) *EventHandlerAPI {
	return &EventHandlerAPI{
		handler: handler,
		log:     log.With("module", "httpapi"),
	}
}

// PostEvent handles POST /v1/events. Unknown or malformed events are the
// sender's fault and get a 400; a critical pipeline failure gets a 500 so
// the trigger source redelivers. Advisory failures still acknowledge with
// 200, reporting how many steps degraded.
func (h *EventHandlerAPI) PostEvent(c *gin.Context) {
	ctx := c.Request.Context()

	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed event payload"})
		return
	}

	// Delivery id ties every log line of this handling run together.
	deliveryID := uuid.NewString()
	log := h.log.With("deliveryId", deliveryID, "type", string(event.Type),
		"source", c.GetString(sourceKey))

	result, err := h.handler.Handle(ctx, &event)
	if err != nil {
		if errors.Is(err, common.ErrorUnknownEvent) || errors.Is(err, common.ErrorInvalidEvent) {
			log.Warn(ctx, "event rejected", "error", err.Error())
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "deliveryId": deliveryID})
			return
		}

		log.Error(ctx, "event failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "deliveryId": deliveryID})
		return
	}

	advisories := len(result.Advisories)
	if advisories > 0 {
		log.Warn(ctx, "event handled with degraded steps", "advisories", advisories)
	} else {
		log.Info(ctx, "event handled")
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"deliveryId": deliveryID,
		"advisories": advisories,
	})
}
