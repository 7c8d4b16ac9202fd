package repository

import (
	"context"

	"github.com/polkiloo/photocatalog/internal/domain/model"
)

// PrintOptionRepository exposes the print price list.
type PrintOptionRepository interface {
	List(ctx context.Context) ([]model.PrintOption, error)
	GetByID(ctx context.Context, id int64) (*model.PrintOption, error)
	Delete(ctx context.Context, id int64) error
}
