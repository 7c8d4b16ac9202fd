package usecase

import (
	"context"
	"fmt"
	"math"
	"strconv"

	domainErrors "github.com/polkiloo/photocatalog/internal/domain/errors"
	"github.com/polkiloo/photocatalog/internal/domain/model"
	"github.com/polkiloo/photocatalog/internal/domain/repository"
)

// CatalogUseCase serves keyset pages of the photo catalog.
type CatalogUseCase struct {
	catalog repository.CatalogRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(catalog repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog}
}

// QueryPage returns a page of the catalog ordered by id.
//
// Without parameters the whole catalog is returned. A lone page size acts as
// an id ceiling for the first page. With a cursor the page holds ids in
// (last_token, last_token+page_size], page size defaulting to 20.
func (u *CatalogUseCase) QueryPage(ctx context.Context, q model.PageQuery) (*model.Page, error) {
	var (
		items []model.CatalogItem
		err   error
	)

	switch {
	case q.LastToken != nil:
		size := model.DefaultPageSize
		if q.PageSize != nil {
			size = *q.PageSize
		}
		items, err = u.catalog.ListRange(ctx, *q.LastToken, upperBound(*q.LastToken, size))
	case q.PageSize != nil:
		items, err = u.catalog.ListUpTo(ctx, *q.PageSize)
	default:
		items, err = u.catalog.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	return newPage(items), nil
}

// RemovePhoto deletes a catalog entry unless an order references it.
func (u *CatalogUseCase) RemovePhoto(ctx context.Context, id int64) error {
	return u.catalog.Delete(ctx, id)
}

func upperBound(lastToken, size int64) int64 {
	if lastToken > math.MaxInt64-size {
		return math.MaxInt64
	}
	return lastToken + size
}

func newPage(items []model.CatalogItem) *model.Page {
	if items == nil {
		items = []model.CatalogItem{}
	}
	page := &model.Page{Count: len(items), Results: items}
	if len(items) > 0 {
		last := items[len(items)-1].ID
		page.LastToken = &last
	}
	return page
}

// ParsePageQuery converts raw query string values into a PageQuery.
// Empty values are treated as absent.
func ParsePageQuery(rawPageSize, rawLastToken string) (model.PageQuery, error) {
	var (
		q    model.PageQuery
		verr domainErrors.ValidationError
	)

	if rawPageSize != "" {
		n, err := strconv.ParseInt(rawPageSize, 10, 64)
		switch {
		case err != nil:
			verr.Add("page_size", msgWholeNumber)
		case n <= 0:
			verr.Add("page_size", "Ensure this value is greater than or equal to 1.")
		default:
			q.PageSize = &n
		}
	}

	if rawLastToken != "" {
		n, err := strconv.ParseInt(rawLastToken, 10, 64)
		switch {
		case err != nil:
			verr.Add("last_token", msgWholeNumber)
		case n < 0:
			verr.Add("last_token", "Ensure this value is greater than or equal to 0.")
		default:
			q.LastToken = &n
		}
	}

	if !verr.Empty() {
		return model.PageQuery{}, fmt.Errorf("%w: %w", domainErrors.ErrInvalidPageParameter, &verr)
	}
	return q, nil
}
