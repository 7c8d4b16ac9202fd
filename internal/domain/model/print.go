package model

import "github.com/shopspring/decimal"

// PrintSize enumerates available print formats.
type PrintSize string

const (
	PrintSizeSmall  PrintSize = "small"
	PrintSizeMedium PrintSize = "medium"
	PrintSizeLarge  PrintSize = "large"
)

// Valid reports whether the size is one of the known formats.
func (s PrintSize) Valid() bool {
	switch s {
	case PrintSizeSmall, PrintSizeMedium, PrintSizeLarge:
		return true
	default:
		return false
	}
}

// PrintOption is a price list entry for a print size.
type PrintOption struct {
	ID           int64
	Size         PrintSize
	PrintCost    decimal.Decimal
	ShippingCost decimal.Decimal
}

// TotalCost returns print and shipping cost combined.
func (p PrintOption) TotalCost() decimal.Decimal {
	return p.PrintCost.Add(p.ShippingCost)
}
