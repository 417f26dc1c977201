package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	domainErrors "github.com/maropko/parceltrack/internal/domain/errors"
	"github.com/maropko/parceltrack/internal/domain/model"
	"github.com/maropko/parceltrack/internal/server/http/dto"
)

// TrackingHandler records staff-entered tracking updates.
type TrackingHandler struct {
	facade   TrackingFacade
	validate *validatorv10.Validate
}

// NewTrackingHandler constructs TrackingHandler.
func NewTrackingHandler(facade TrackingFacade, validate *validatorv10.Validate) *TrackingHandler {
	return &TrackingHandler{facade: facade, validate: validate}
}

// Add handles POST /api/tracking.
func (h *TrackingHandler) Add(c *gin.Context) {
	var req dto.TrackingUpdateRequest
	if err := dto.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	event, err := h.facade.AddTrackingUpdate(c.Request.Context(), model.TrackingEvent{
		OrderID:     req.OrderID,
		Status:      model.Status(req.Status),
		Location:    req.Location,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrInvalidStatus):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrOrderClosed):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toTrackingEventResponse(*event))
}
