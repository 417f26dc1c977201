package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	domainErrors "github.com/maropko/parceltrack/internal/domain/errors"
	"github.com/maropko/parceltrack/internal/domain/model"
	"github.com/maropko/parceltrack/internal/server/http/dto"
	"github.com/maropko/parceltrack/internal/usecase"
)

// OrderHandler manages staff order endpoints.
type OrderHandler struct {
	facade   OrderFacade
	validate *validatorv10.Validate
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade, validate *validatorv10.Validate) *OrderHandler {
	return &OrderHandler{facade: facade, validate: validate}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.OrderCreateRequest
	if err := dto.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), orderFromCreateRequest(req))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidTrackingNumber), errors.Is(err, domainErrors.ErrInvalidStatus):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}

	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, history, err := h.facade.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.OrderDetailResponse{
		Order:   toOrderResponse(*order),
		History: toTrackingEventResponses(history),
	})
}

// Update handles PUT /api/orders/:id.
func (h *OrderHandler) Update(c *gin.Context) {
	var req dto.OrderUpdateRequest
	if err := dto.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	note := usecase.StatusNote{Location: req.Location, Description: req.StatusDescription}
	order, err := h.facade.UpdateOrder(c.Request.Context(), c.Param("id"), orderPatchFromRequest(req), note)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrInvalidTrackingNumber), errors.Is(err, domainErrors.ErrInvalidStatus):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrAlreadyExists), errors.Is(err, domainErrors.ErrOrderClosed):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Delete handles DELETE /api/orders/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// Stats handles GET /api/admin/stats.
func (h *OrderHandler) Stats(c *gin.Context) {
	stats, err := h.facade.Stats(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	byStatus := make(map[string]int, len(stats.ByStatus))
	for status, count := range stats.ByStatus {
		byStatus[string(status)] = count
	}

	c.JSON(http.StatusOK, dto.StatsResponse{
		TotalOrders: stats.TotalOrders,
		Delivered:   stats.Delivered,
		Revenue:     stats.Revenue,
		ByStatus:    byStatus,
	})
}

func orderFromCreateRequest(req dto.OrderCreateRequest) model.Order {
	return model.Order{
		TrackingNumber:     req.TrackingNumber,
		Status:             model.Status(req.Status),
		ProductName:        req.ProductName,
		Weight:             req.Weight,
		Dimensions:         req.Dimensions,
		PackageValue:       req.PackageValue,
		PackageDescription: req.PackageDescription,
		ShippingCompany:    req.ShippingCompany,
		ShippingMethod:     model.ShippingMethod(req.ShippingMethod),
		DeliveryDate:       req.DeliveryDate,
		RecipientName:      req.RecipientName,
		RecipientPhone:     req.RecipientPhone,
		RecipientAddress:   req.RecipientAddress,
		SenderName:         req.SenderName,
		SenderPhone:        req.SenderPhone,
		SenderAddress:      req.SenderAddress,
		OfficerName:        req.OfficerName,
		OfficerID:          req.OfficerID,
		Currency:           model.Currency(req.Currency),
		ShippingCost:       req.ShippingCost,
		TotalAmount:        req.TotalAmount,
	}
}

func orderPatchFromRequest(req dto.OrderUpdateRequest) model.OrderPatch {
	patch := model.OrderPatch{
		TrackingNumber:     req.TrackingNumber,
		ProductName:        req.ProductName,
		Weight:             req.Weight,
		Dimensions:         req.Dimensions,
		PackageValue:       req.PackageValue,
		PackageDescription: req.PackageDescription,
		ShippingCompany:    req.ShippingCompany,
		DeliveryDate:       req.DeliveryDate,
		RecipientName:      req.RecipientName,
		RecipientPhone:     req.RecipientPhone,
		RecipientAddress:   req.RecipientAddress,
		SenderName:         req.SenderName,
		SenderPhone:        req.SenderPhone,
		SenderAddress:      req.SenderAddress,
		OfficerName:        req.OfficerName,
		OfficerID:          req.OfficerID,
		ShippingCost:       req.ShippingCost,
		TotalAmount:        req.TotalAmount,
	}
	if req.Status != nil {
		status := model.Status(*req.Status)
		patch.Status = &status
	}
	if req.ShippingMethod != nil {
		method := model.ShippingMethod(*req.ShippingMethod)
		patch.ShippingMethod = &method
	}
	if req.Currency != nil {
		currency := model.Currency(*req.Currency)
		patch.Currency = &currency
	}
	return patch
}
