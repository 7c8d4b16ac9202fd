// Package seed produces the deterministic sample data loaded before serving.
package seed

import (
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/photocatalog/internal/domain/model"
)

const (
	firstYear = 1923
	lastYear  = 2010
)

var locations = []string{"Los Angeles", "New York", "Paris", "London"}

// Data bundles the reference rows inserted into an empty store.
type Data struct {
	Catalog      []model.CatalogItem
	PrintOptions []model.PrintOption
}

// Result reports how many rows a seeding run inserted.
type Result struct {
	CatalogItems int
	PrintOptions int
}

// New builds a data set with size catalog entries drawn from a source seeded with randSeed.
func New(size int, randSeed int64) Data {
	return Data{
		Catalog:      Catalog(size, rand.New(rand.NewSource(randSeed))),
		PrintOptions: PrintOptions(),
	}
}

// Catalog generates entries Photo1..PhotoN. Ids are left for the store to assign.
func Catalog(size int, rnd *rand.Rand) []model.CatalogItem {
	items := make([]model.CatalogItem, 0, size)
	for i := 1; i <= size; i++ {
		title := fmt.Sprintf("Photo%d", i)
		location := locations[rnd.Intn(len(locations))]
		year := firstYear + rnd.Intn(lastYear-firstYear)
		items = append(items, model.CatalogItem{
			Title:    &title,
			Location: &location,
			Year:     &year,
			Path:     fmt.Sprintf("path/to/file/%d.png", i),
		})
	}
	return items
}

// PrintOptions returns the price list, in id order.
func PrintOptions() []model.PrintOption {
	return []model.PrintOption{
		{Size: model.PrintSizeSmall, PrintCost: decimal.RequireFromString("10.00"), ShippingCost: decimal.RequireFromString("4.99")},
		{Size: model.PrintSizeMedium, PrintCost: decimal.RequireFromString("15.00"), ShippingCost: decimal.RequireFromString("5.99")},
		{Size: model.PrintSizeLarge, PrintCost: decimal.RequireFromString("20.00"), ShippingCost: decimal.RequireFromString("7.99")},
	}
}
