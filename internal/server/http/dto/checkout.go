package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/polkiloo/photocatalog/internal/domain/model"
)

// Scalar holds a JSON string or number as text. Null decodes to "".
type Scalar string

// UnmarshalJSON implements json.Unmarshaler.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
	case len(data) > 0 && data[0] == '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = Scalar(str)
	default:
		var num json.Number
		if err := json.Unmarshal(data, &num); err != nil {
			return fmt.Errorf("expected string or number, got %s", data)
		}
		*s = Scalar(num.String())
	}
	return nil
}

// OrderRequest describes the checkout payload.
type OrderRequest struct {
	FirstName      Scalar `json:"first_name"`
	LastName       Scalar `json:"last_name"`
	Email          Scalar `json:"email"`
	PrimaryPhone   Scalar `json:"primary_phone"`
	AddressLineOne Scalar `json:"address_line_one"`
	AddressLineTwo Scalar `json:"address_line_two"`
	City           Scalar `json:"city"`
	StateOrRegion  Scalar `json:"state_or_region"`
	PostalCode     Scalar `json:"postal_code"`
	Country        Scalar `json:"country"`
	PrintID        Scalar `json:"print_id"`
	PhotoID        Scalar `json:"photo_id"`
}

// Form converts the payload into the raw checkout form.
func (r OrderRequest) Form() model.OrderForm {
	return model.OrderForm{
		FirstName:      string(r.FirstName),
		LastName:       string(r.LastName),
		Email:          string(r.Email),
		PrimaryPhone:   string(r.PrimaryPhone),
		AddressLineOne: string(r.AddressLineOne),
		AddressLineTwo: string(r.AddressLineTwo),
		City:           string(r.City),
		StateOrRegion:  string(r.StateOrRegion),
		PostalCode:     string(r.PostalCode),
		Country:        string(r.Country),
		PrintID:        string(r.PrintID),
		PhotoID:        string(r.PhotoID),
	}
}

// PrintOptionResponse describes a print size and its prices.
type PrintOptionResponse struct {
	ID           int64  `json:"id"`
	Size         string `json:"size"`
	PrintCost    string `json:"print_cost"`
	ShippingCost string `json:"shipping_cost"`
	TotalCost    string `json:"total_cost"`
}

// NewPrintOptionResponse formats costs with two decimal places.
func NewPrintOptionResponse(opt model.PrintOption) PrintOptionResponse {
	return PrintOptionResponse{
		ID:           opt.ID,
		Size:         string(opt.Size),
		PrintCost:    opt.PrintCost.StringFixed(2),
		ShippingCost: opt.ShippingCost.StringFixed(2),
		TotalCost:    opt.TotalCost().StringFixed(2),
	}
}

type OrderedItemResponse struct {
	Title *string `json:"title"`
	Size  string  `json:"size"`
}

type ShippingSummaryResponse struct {
	ShipTo        string `json:"ship_to"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	StateOrRegion string `json:"state_or_region"`
	PostalCode    int    `json:"postal_code"`
	Country       string `json:"country"`
}

type BillingSummaryResponse struct {
	OrderTotal    float64 `json:"order_total"`
	ShippingTotal float64 `json:"shipping_total"`
	ItemTotal     float64 `json:"item_total"`
}

// OrderDetailsResponse is returned after a successful checkout.
type OrderDetailsResponse struct {
	ID              uuid.UUID               `json:"id"`
	Status          string                  `json:"status"`
	PlacedOn        string                  `json:"placed_on"`
	ItemsOrdered    []OrderedItemResponse   `json:"items_ordered"`
	ShippingSummary ShippingSummaryResponse `json:"shipping_summary"`
	BillingSummary  BillingSummaryResponse  `json:"billing_summary"`
}

// NewOrderDetailsResponse converts domain order details.
func NewOrderDetailsResponse(d *model.OrderDetails) OrderDetailsResponse {
	items := make([]OrderedItemResponse, 0, len(d.ItemsOrdered))
	for _, item := range d.ItemsOrdered {
		items = append(items, OrderedItemResponse{Title: item.Title, Size: string(item.Size)})
	}
	s := d.ShippingSummary
	return OrderDetailsResponse{
		ID:           d.ID,
		Status:       string(d.Status),
		PlacedOn:     d.PlacedOn,
		ItemsOrdered: items,
		ShippingSummary: ShippingSummaryResponse{
			ShipTo:        s.ShipTo,
			Email:         s.Email,
			Phone:         s.Phone,
			Address:       s.Address,
			City:          s.City,
			StateOrRegion: s.StateOrRegion,
			PostalCode:    s.PostalCode,
			Country:       s.Country,
		},
		BillingSummary: BillingSummaryResponse{
			OrderTotal:    d.BillingSummary.OrderTotal,
			ShippingTotal: d.BillingSummary.ShippingTotal,
			ItemTotal:     d.BillingSummary.ItemTotal,
		},
	}
}
