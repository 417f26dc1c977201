package model

import (
	"fmt"
	"time"
)

// ShippingMethod describes the delivery service tier.
type ShippingMethod string

const (
	ShippingSameDay       ShippingMethod = "Same Day"
	ShippingExpress       ShippingMethod = "Express"
	ShippingStandard      ShippingMethod = "Standard"
	ShippingInternational ShippingMethod = "International"
)

// Valid reports whether m is a known shipping method.
func (m ShippingMethod) Valid() bool {
	switch m {
	case ShippingSameDay, ShippingExpress, ShippingStandard, ShippingInternational:
		return true
	}
	return false
}

// EstimatedDelivery projects a delivery date for the method starting at from.
func (m ShippingMethod) EstimatedDelivery(from time.Time) time.Time {
	switch m {
	case ShippingSameDay:
		return from.Add(12 * time.Hour)
	case ShippingExpress:
		return from.AddDate(0, 0, 1)
	case ShippingInternational:
		return from.AddDate(0, 0, 7)
	default:
		return from.AddDate(0, 0, 3)
	}
}

// Currency is an ISO-style currency code.
type Currency string

const (
	CurrencyPHP Currency = "PHP"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyJPY Currency = "JPY"
	CurrencyAUD Currency = "AUD"
	CurrencySGD Currency = "SGD"
	CurrencyCAD Currency = "CAD"
)

var currencySymbols = map[Currency]string{
	CurrencyPHP: "₱",
	CurrencyUSD: "$",
	CurrencyEUR: "€",
	CurrencyGBP: "£",
	CurrencyJPY: "¥",
	CurrencyAUD: "A$",
	CurrencySGD: "S$",
	CurrencyCAD: "C$",
}

// Valid reports whether c is one of the supported currency codes.
func (c Currency) Valid() bool {
	_, ok := currencySymbols[c]
	return ok
}

// Symbol returns the display symbol, falling back to the code itself.
func (c Currency) Symbol() string {
	if s, ok := currencySymbols[c]; ok {
		return s
	}
	return string(c)
}

// FormatAmount renders a monetary value with the currency symbol.
func (c Currency) FormatAmount(value float64) string {
	return fmt.Sprintf("%s%.2f", c.Symbol(), value)
}
