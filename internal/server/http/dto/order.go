package dto

import "time"

// OrderCreateRequest describes the payload for POST /api/orders. A blank
// tracking number asks the server to mint one.
type OrderCreateRequest struct {
	TrackingNumber     string     `json:"trackingNumber" validate:"omitempty,tracking_number"`
	Status             string     `json:"status" validate:"omitempty,shipment_status"`
	ProductName        string     `json:"productName" validate:"required"`
	Weight             float64    `json:"weight" validate:"required,gt=0"`
	Dimensions         string     `json:"dimensions"`
	PackageValue       float64    `json:"packageValue" validate:"gte=0"`
	PackageDescription string     `json:"packageDescription"`
	ShippingCompany    string     `json:"shippingCompany"`
	ShippingMethod     string     `json:"shippingMethod" validate:"required,shipping_method"`
	DeliveryDate       *time.Time `json:"deliveryDate"`
	RecipientName      string     `json:"recipientName" validate:"required"`
	RecipientPhone     string     `json:"recipientPhone" validate:"required"`
	RecipientAddress   string     `json:"recipientAddress" validate:"required"`
	SenderName         string     `json:"senderName" validate:"required"`
	SenderPhone        string     `json:"senderPhone" validate:"required"`
	SenderAddress      string     `json:"senderAddress" validate:"required"`
	OfficerName        string     `json:"officerName"`
	OfficerID          string     `json:"officerId"`
	Currency           string     `json:"currency" validate:"omitempty,currency_code"`
	ShippingCost       float64    `json:"shippingCost" validate:"gte=0"`
	TotalAmount        float64    `json:"totalAmount" validate:"gte=0"`
}

// OrderUpdateRequest describes the payload for PUT /api/orders/:id. Absent
// fields keep their stored values. Location and StatusDescription annotate
// the tracking event recorded for a status change.
type OrderUpdateRequest struct {
	TrackingNumber     *string    `json:"trackingNumber" validate:"omitempty,tracking_number"`
	Status             *string    `json:"status" validate:"omitempty,shipment_status"`
	ProductName        *string    `json:"productName"`
	Weight             *float64   `json:"weight" validate:"omitempty,gt=0"`
	Dimensions         *string    `json:"dimensions"`
	PackageValue       *float64   `json:"packageValue" validate:"omitempty,gte=0"`
	PackageDescription *string    `json:"packageDescription"`
	ShippingCompany    *string    `json:"shippingCompany"`
	ShippingMethod     *string    `json:"shippingMethod" validate:"omitempty,shipping_method"`
	DeliveryDate       *time.Time `json:"deliveryDate"`
	RecipientName      *string    `json:"recipientName"`
	RecipientPhone     *string    `json:"recipientPhone"`
	RecipientAddress   *string    `json:"recipientAddress"`
	SenderName         *string    `json:"senderName"`
	SenderPhone        *string    `json:"senderPhone"`
	SenderAddress      *string    `json:"senderAddress"`
	OfficerName        *string    `json:"officerName"`
	OfficerID          *string    `json:"officerId"`
	Currency           *string    `json:"currency" validate:"omitempty,currency_code"`
	ShippingCost       *float64   `json:"shippingCost" validate:"omitempty,gte=0"`
	TotalAmount        *float64   `json:"totalAmount" validate:"omitempty,gte=0"`
	Location           string     `json:"location"`
	StatusDescription  string     `json:"statusDescription"`
}

// OrderResponse represents an order on the wire.
type OrderResponse struct {
	ID                 string     `json:"id"`
	TrackingNumber     string     `json:"trackingNumber"`
	Status             string     `json:"status"`
	Progress           int        `json:"progress"`
	ProductName        string     `json:"productName"`
	Weight             float64    `json:"weight"`
	Dimensions         string     `json:"dimensions"`
	PackageValue       float64    `json:"packageValue"`
	PackageDescription string     `json:"packageDescription"`
	ShippingCompany    string     `json:"shippingCompany"`
	ShippingMethod     string     `json:"shippingMethod"`
	DeliveryDate       *time.Time `json:"deliveryDate"`
	RecipientName      string     `json:"recipientName"`
	RecipientPhone     string     `json:"recipientPhone"`
	RecipientAddress   string     `json:"recipientAddress"`
	SenderName         string     `json:"senderName"`
	SenderPhone        string     `json:"senderPhone"`
	SenderAddress      string     `json:"senderAddress"`
	OfficerName        string     `json:"officerName"`
	OfficerID          string     `json:"officerId"`
	Currency           string     `json:"currency"`
	ShippingCost       float64    `json:"shippingCost"`
	TotalAmount        float64    `json:"totalAmount"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// OrderDetailResponse pairs an order with its tracking history.
type OrderDetailResponse struct {
	Order   OrderResponse           `json:"order"`
	History []TrackingEventResponse `json:"trackingHistory"`
}

// StatsResponse summarizes shipment counters for the dashboard.
type StatsResponse struct {
	TotalOrders int            `json:"totalOrders"`
	Delivered   int            `json:"delivered"`
	Revenue     float64        `json:"revenue"`
	ByStatus    map[string]int `json:"byStatus"`
}
