package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus describes fulfilment lifecycle of a print order.
type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "created"
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusFulfilled OrderStatus = "fulfilled"
	OrderStatusRejected  OrderStatus = "rejected"
)

// PlacedOnLayout formats order timestamps without a zone offset.
const PlacedOnLayout = "2006-01-02T15:04:05"

// Order is a persisted print purchase.
type Order struct {
	ID             uuid.UUID
	TimePlaced     time.Time
	FirstName      string
	LastName       string
	Email          string
	PrimaryPhone   string
	AddressLineOne string
	AddressLineTwo *string
	City           string
	StateOrRegion  string
	PostalCode     int
	Country        string
	PrintID        int64
	PhotoID        int64
	Status         OrderStatus
}

// OrderForm is raw checkout input before validation. Numeric fields are kept
// as text so that malformed values can be reported per field.
type OrderForm struct {
	FirstName      string `form:"first_name" validate:"required,max=50"`
	LastName       string `form:"last_name" validate:"required,max=50"`
	Email          string `form:"email" validate:"required,max=50,email"`
	PrimaryPhone   string `form:"primary_phone" validate:"required,max=20,usphone"`
	AddressLineOne string `form:"address_line_one" validate:"required,max=100"`
	AddressLineTwo string `form:"address_line_two" validate:"omitempty,max=100"`
	City           string `form:"city" validate:"required,max=20"`
	StateOrRegion  string `form:"state_or_region" validate:"required,max=20"`
	PostalCode     string `form:"postal_code" validate:"required"`
	Country        string `form:"country" validate:"required,max=3"`
	PrintID        string `form:"print_id" validate:"required,number"`
	PhotoID        string `form:"photo_id" validate:"required,number"`
}

// OrderDetails summarises a placed order for the buyer.
type OrderDetails struct {
	ID              uuid.UUID
	Status          OrderStatus
	PlacedOn        string
	ItemsOrdered    []OrderedItem
	ShippingSummary ShippingSummary
	BillingSummary  BillingSummary
}

// OrderedItem is a single line of an order.
type OrderedItem struct {
	Title *string
	Size  PrintSize
}

// ShippingSummary holds the delivery part of order details.
type ShippingSummary struct {
	ShipTo        string
	Email         string
	Phone         string
	Address       string
	City          string
	StateOrRegion string
	PostalCode    int
	Country       string
}

// BillingSummary holds order totals.
type BillingSummary struct {
	OrderTotal    float64
	ShippingTotal float64
	ItemTotal     float64
}
