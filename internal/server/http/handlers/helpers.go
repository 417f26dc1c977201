package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/maropko/parceltrack/internal/domain/model"
	"github.com/maropko/parceltrack/internal/server/http/dto"
	"github.com/maropko/parceltrack/internal/server/http/middleware"
)

// CurrentAdminID extracts the authenticated admin identifier from context.
func CurrentAdminID(c *gin.Context) string {
	val, ok := c.Get(middleware.AdminIDContextKey)
	if !ok {
		return ""
	}
	id, _ := val.(string)
	return id
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:                 order.ID,
		TrackingNumber:     order.TrackingNumber,
		Status:             string(order.Status),
		Progress:           order.Status.Progress(),
		ProductName:        order.ProductName,
		Weight:             order.Weight,
		Dimensions:         order.Dimensions,
		PackageValue:       order.PackageValue,
		PackageDescription: order.PackageDescription,
		ShippingCompany:    order.ShippingCompany,
		ShippingMethod:     string(order.ShippingMethod),
		DeliveryDate:       order.DeliveryDate,
		RecipientName:      order.RecipientName,
		RecipientPhone:     order.RecipientPhone,
		RecipientAddress:   order.RecipientAddress,
		SenderName:         order.SenderName,
		SenderPhone:        order.SenderPhone,
		SenderAddress:      order.SenderAddress,
		OfficerName:        order.OfficerName,
		OfficerID:          order.OfficerID,
		Currency:           string(order.Currency),
		ShippingCost:       order.ShippingCost,
		TotalAmount:        order.TotalAmount,
		CreatedAt:          order.CreatedAt,
		UpdatedAt:          order.UpdatedAt,
	}
}

func toTrackingEventResponse(event model.TrackingEvent) dto.TrackingEventResponse {
	return dto.TrackingEventResponse{
		ID:          event.ID,
		OrderID:     event.OrderID,
		Status:      string(event.Status),
		Location:    event.Location,
		Description: event.Description,
		Timestamp:   event.Timestamp,
	}
}

func toTrackingEventResponses(events []model.TrackingEvent) []dto.TrackingEventResponse {
	out := make([]dto.TrackingEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toTrackingEventResponse(e))
	}
	return out
}

func toAdminResponse(admin model.AdminUser) dto.AdminResponse {
	return dto.AdminResponse{
		ID:        admin.ID,
		Email:     admin.Email,
		Name:      admin.Name,
		Role:      string(admin.Role),
		CreatedAt: admin.CreatedAt,
		LastLogin: admin.LastLogin,
	}
}
