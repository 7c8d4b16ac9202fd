package test

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/polkiloo/photocatalog/internal/domain/model"
	"github.com/polkiloo/photocatalog/internal/seed"
)

// CatalogFacadeStub provides controllable behaviour for catalog endpoints.
type CatalogFacadeStub struct {
	QueryFn func(context.Context, string, string) (*model.Page, error)
}

// QueryCatalog delegates to QueryFn or returns an empty page.
func (s CatalogFacadeStub) QueryCatalog(ctx context.Context, rawPageSize, rawLastToken string) (*model.Page, error) {
	if s.QueryFn != nil {
		return s.QueryFn(ctx, rawPageSize, rawLastToken)
	}
	return &model.Page{Results: []model.CatalogItem{}}, nil
}

// CheckoutFacadeStub simulates checkout operations.
type CheckoutFacadeStub struct {
	OptionsFn func(context.Context) ([]model.PrintOption, error)
	PlaceFn   func(context.Context, model.OrderForm) (*model.OrderDetails, error)
}

// PrintOptions delegates to OptionsFn or returns no options.
func (s CheckoutFacadeStub) PrintOptions(ctx context.Context) ([]model.PrintOption, error) {
	if s.OptionsFn != nil {
		return s.OptionsFn(ctx)
	}
	return nil, nil
}

// PlaceOrder delegates to PlaceFn or echoes the form into a created order.
func (s CheckoutFacadeStub) PlaceOrder(ctx context.Context, form model.OrderForm) (*model.OrderDetails, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, form)
	}
	return &model.OrderDetails{
		ID:       uuid.Nil,
		Status:   model.OrderStatusCreated,
		PlacedOn: "2024-01-01T00:00:00",
		ShippingSummary: model.ShippingSummary{
			ShipTo: form.FirstName + " " + form.LastName,
			Email:  form.Email,
		},
	}, nil
}

// HealthCheckerStub returns Err from every check.
type HealthCheckerStub struct {
	Err error
}

// HealthCheck reports the configured error.
func (s HealthCheckerStub) HealthCheck(context.Context) error {
	return s.Err
}

// SeederStub records seed invocations.
type SeederStub struct {
	Result seed.Result
	Err    error
	Calls  []seed.Data
	mu     sync.Mutex
}

// Seed records data and returns the configured outcome.
func (s *SeederStub) Seed(_ context.Context, data seed.Data) (seed.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, data)
	if s.Err != nil {
		return seed.Result{}, s.Err
	}
	return s.Result, nil
}

// CallCount returns the number of Seed invocations.
func (s *SeederStub) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Calls)
}

// ShopFacadeStub aggregates facade dependencies for HTTP layer tests.
type ShopFacadeStub struct {
	CatalogFacadeStub
	CheckoutFacadeStub
	HealthCheckerStub
}
