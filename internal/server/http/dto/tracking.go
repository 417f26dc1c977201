package dto

import "time"

// TrackingUpdateRequest describes the payload for POST /api/tracking.
type TrackingUpdateRequest struct {
	OrderID     string `json:"orderId" validate:"required"`
	Status      string `json:"status" validate:"required,shipment_status"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// TrackingEventResponse represents one tracking history entry.
type TrackingEventResponse struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"orderId"`
	Status      string    `json:"status"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// TrackResponse is the public lookup result for a tracking number.
type TrackResponse struct {
	Order   OrderResponse           `json:"order"`
	History []TrackingEventResponse `json:"trackingHistory"`
}
