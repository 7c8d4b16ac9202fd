package app

import (
	"context"

	"github.com/polkiloo/photocatalog/internal/domain/model"
	"github.com/polkiloo/photocatalog/internal/seed"
	"github.com/polkiloo/photocatalog/internal/usecase"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Seeder fills empty tables with sample data.
type Seeder interface {
	Seed(ctx context.Context, data seed.Data) (seed.Result, error)
}

// ShopFacade aggregates the catalog and checkout use cases for the HTTP layer.
type ShopFacade struct {
	catalog  *usecase.CatalogUseCase
	checkout *usecase.CheckoutUseCase
	health   HealthChecker
}

func NewShopFacade(catalog *usecase.CatalogUseCase, checkout *usecase.CheckoutUseCase, health HealthChecker) *ShopFacade {
	return &ShopFacade{catalog: catalog, checkout: checkout, health: health}
}

// QueryCatalog parses raw query parameters and returns the requested page.
func (f *ShopFacade) QueryCatalog(ctx context.Context, rawPageSize, rawLastToken string) (*model.Page, error) {
	q, err := usecase.ParsePageQuery(rawPageSize, rawLastToken)
	if err != nil {
		return nil, err
	}
	return f.catalog.QueryPage(ctx, q)
}

func (f *ShopFacade) PrintOptions(ctx context.Context) ([]model.PrintOption, error) {
	return f.checkout.ListPrintOptions(ctx)
}

func (f *ShopFacade) PlaceOrder(ctx context.Context, form model.OrderForm) (*model.OrderDetails, error) {
	return f.checkout.ProcessOrder(ctx, form)
}

func (f *ShopFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
