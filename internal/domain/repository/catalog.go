package repository

import (
	"context"

	"github.com/polkiloo/photocatalog/internal/domain/model"
)

// CatalogRepository provides read access to catalog entries ordered by id.
type CatalogRepository interface {
	ListAll(ctx context.Context) ([]model.CatalogItem, error)
	ListUpTo(ctx context.Context, maxID int64) ([]model.CatalogItem, error)
	ListRange(ctx context.Context, afterID, maxID int64) ([]model.CatalogItem, error)
	GetByID(ctx context.Context, id int64) (*model.CatalogItem, error)
	Delete(ctx context.Context, id int64) error
}
