package model

import "time"

// Order describes one shipment registered in the system.
type Order struct {
	ID             string
	TrackingNumber string
	Status         Status

	ProductName        string
	Weight             float64
	Dimensions         string
	PackageValue       float64
	PackageDescription string

	ShippingCompany string
	ShippingMethod  ShippingMethod
	DeliveryDate    *time.Time

	RecipientName    string
	RecipientPhone   string
	RecipientAddress string

	SenderName    string
	SenderPhone   string
	SenderAddress string

	OfficerName string
	OfficerID   string

	Currency     Currency
	ShippingCost float64
	TotalAmount  float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderPatch carries partial order updates. Nil fields are left untouched.
type OrderPatch struct {
	TrackingNumber *string
	Status         *Status

	ProductName        *string
	Weight             *float64
	Dimensions         *string
	PackageValue       *float64
	PackageDescription *string

	ShippingCompany *string
	ShippingMethod  *ShippingMethod
	DeliveryDate    *time.Time

	RecipientName    *string
	RecipientPhone   *string
	RecipientAddress *string

	SenderName    *string
	SenderPhone   *string
	SenderAddress *string

	OfficerName *string
	OfficerID   *string

	Currency     *Currency
	ShippingCost *float64
	TotalAmount  *float64
}

// OrderStats aggregates shipment counters for the admin dashboard.
type OrderStats struct {
	TotalOrders int
	ByStatus    map[Status]int
	Delivered   int
	Revenue     float64
}
