package test

import (
	"context"
	"fmt"
	"sync"

	domainErrors "github.com/polkiloo/photocatalog/internal/domain/errors"
	"github.com/polkiloo/photocatalog/internal/domain/model"
)

// NewCatalog builds n entries with contiguous ids starting at 1.
func NewCatalog(n int) []model.CatalogItem {
	items := make([]model.CatalogItem, 0, n)
	for i := 1; i <= n; i++ {
		title := fmt.Sprintf("Photo%d", i)
		items = append(items, model.CatalogItem{
			ID:    int64(i),
			Title: &title,
			Path:  fmt.Sprintf("path/to/file/%d.png", i),
		})
	}
	return items
}

// CatalogRepositoryStub keeps catalog entries in memory, ordered by id.
type CatalogRepositoryStub struct {
	Items     []model.CatalogItem
	Err       error
	DeleteErr error
	Deleted   []int64
}

func (s *CatalogRepositoryStub) filter(keep func(id int64) bool) ([]model.CatalogItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.CatalogItem, 0)
	for _, item := range s.Items {
		if keep(item.ID) {
			result = append(result, item)
		}
	}
	return result, nil
}

// ListAll returns every stored entry.
func (s *CatalogRepositoryStub) ListAll(context.Context) ([]model.CatalogItem, error) {
	return s.filter(func(int64) bool { return true })
}

// ListUpTo returns entries with id <= maxID.
func (s *CatalogRepositoryStub) ListUpTo(_ context.Context, maxID int64) ([]model.CatalogItem, error) {
	return s.filter(func(id int64) bool { return id <= maxID })
}

// ListRange returns entries with afterID < id <= maxID.
func (s *CatalogRepositoryStub) ListRange(_ context.Context, afterID, maxID int64) ([]model.CatalogItem, error) {
	return s.filter(func(id int64) bool { return id > afterID && id <= maxID })
}

// GetByID returns an entry or not found.
func (s *CatalogRepositoryStub) GetByID(_ context.Context, id int64) (*model.CatalogItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, item := range s.Items {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Delete records the removal or returns DeleteErr.
func (s *CatalogRepositoryStub) Delete(_ context.Context, id int64) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.Deleted = append(s.Deleted, id)
	return nil
}

// PrintOptionRepositoryStub serves a fixed price list.
type PrintOptionRepositoryStub struct {
	Options   []model.PrintOption
	Err       error
	DeleteErr error
	Deleted   []int64
}

// List returns the configured options.
func (s *PrintOptionRepositoryStub) List(context.Context) ([]model.PrintOption, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Options, nil
}

// GetByID returns an option or not found.
func (s *PrintOptionRepositoryStub) GetByID(_ context.Context, id int64) (*model.PrintOption, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, opt := range s.Options {
		if opt.ID == id {
			found := opt
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Delete records the removal or returns DeleteErr.
func (s *PrintOptionRepositoryStub) Delete(_ context.Context, id int64) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.Deleted = append(s.Deleted, id)
	return nil
}

// OrderRepositoryStub records created orders.
type OrderRepositoryStub struct {
	CreateFn func(context.Context, *model.Order) error
	Created  []model.Order
	mu       sync.Mutex
}

// Create stores a copy of the order unless CreateFn fails.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) error {
	if s.CreateFn != nil {
		if err := s.CreateFn(ctx, order); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Created = append(s.Created, *order)
	return nil
}

// Count returns the number of stored orders.
func (s *OrderRepositoryStub) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Created)
}

// CheckoutRecorderStub counts checkout outcomes.
type CheckoutRecorderStub struct {
	Placed   []model.PrintSize
	Rejected int
}

// OrderPlaced records a successful order.
func (s *CheckoutRecorderStub) OrderPlaced(size model.PrintSize) {
	s.Placed = append(s.Placed, size)
}

// OrderRejected records a validation failure.
func (s *CheckoutRecorderStub) OrderRejected() {
	s.Rejected++
}
