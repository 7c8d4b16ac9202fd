package handlers

import (
	"context"

	"github.com/polkiloo/photocatalog/internal/domain/model"
)

// CatalogFacade exposes catalog browsing.
type CatalogFacade interface {
	QueryCatalog(ctx context.Context, rawPageSize, rawLastToken string) (*model.Page, error)
}

// CheckoutFacade encapsulates print ordering operations exposed via HTTP.
type CheckoutFacade interface {
	PrintOptions(ctx context.Context) ([]model.PrintOption, error)
	PlaceOrder(ctx context.Context, form model.OrderForm) (*model.OrderDetails, error)
}

// HealthFacade reports store availability.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// ShopFacade aggregates the full set of operations used across handlers.
type ShopFacade interface {
	CatalogFacade
	CheckoutFacade
	HealthFacade
}
