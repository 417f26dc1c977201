package model

import "time"

// TrackingEvent is one immutable entry in an order's shipment history.
type TrackingEvent struct {
	ID          string
	OrderID     string
	Status      Status
	Location    string
	Description string
	Timestamp   time.Time
}
