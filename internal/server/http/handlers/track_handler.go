package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/maropko/parceltrack/internal/domain/errors"
	"github.com/maropko/parceltrack/internal/server/http/dto"
)

// TrackHandler serves the public tracking lookup.
type TrackHandler struct {
	facade TrackingFacade
}

// NewTrackHandler constructs TrackHandler.
func NewTrackHandler(facade TrackingFacade) *TrackHandler {
	return &TrackHandler{facade: facade}
}

// Lookup handles GET /api/track/:trackingNumber. Any string is looked up
// as supplied; numbers that resolve to nothing are a plain 404, the format
// check guards manual entry on order creation only.
func (h *TrackHandler) Lookup(c *gin.Context) {
	number := strings.TrimSpace(c.Param("trackingNumber"))

	order, history, err := h.facade.Track(c.Request.Context(), number)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.TrackResponse{
		Order:   toOrderResponse(*order),
		History: toTrackingEventResponses(history),
	})
}
