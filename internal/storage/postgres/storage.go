package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/photocatalog/internal/domain/errors"
	"github.com/polkiloo/photocatalog/internal/domain/model"
	"github.com/polkiloo/photocatalog/internal/domain/repository"
	"github.com/polkiloo/photocatalog/internal/seed"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"

	healthCheckTimeout = 2 * time.Second
)

type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type catalogRepository struct {
	storage *Storage
}

type printRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// HealthCheck verifies that the database answers.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Factory methods for domain repositories.
func (s *Storage) Catalog() repository.CatalogRepository {
	return &catalogRepository{storage: s}
}

func (s *Storage) PrintOptions() repository.PrintOptionRepository {
	return &printRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS catalog (
            id BIGSERIAL PRIMARY KEY,
            title VARCHAR(50),
            location VARCHAR(50),
            year INTEGER,
            path VARCHAR(200) NOT NULL DEFAULT 'path/to/placeholder.png'
        )`,
		`CREATE TABLE IF NOT EXISTS prints (
            id BIGSERIAL PRIMARY KEY,
            size VARCHAR(6) NOT NULL CHECK (size IN ('small', 'medium', 'large')),
            print_cost NUMERIC(6, 2) NOT NULL,
            shipping_cost NUMERIC(6, 2) NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id UUID PRIMARY KEY,
            time_placed TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            first_name VARCHAR(50) NOT NULL,
            last_name VARCHAR(50) NOT NULL,
            email VARCHAR(50) NOT NULL,
            primary_phone VARCHAR(20) NOT NULL,
            address_line_one VARCHAR(100) NOT NULL,
            address_line_two VARCHAR(100),
            city VARCHAR(20) NOT NULL,
            state_or_region VARCHAR(20) NOT NULL,
            postal_code INTEGER NOT NULL,
            country VARCHAR(3) NOT NULL,
            print_id BIGINT NOT NULL REFERENCES prints(id) ON DELETE RESTRICT,
            photo_id BIGINT NOT NULL REFERENCES catalog(id) ON DELETE RESTRICT,
            status VARCHAR(9) NOT NULL DEFAULT 'created'
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_print ON orders(print_id)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_photo ON orders(photo_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// Seed loads reference data into tables that are still empty.
func (s *Storage) Seed(ctx context.Context, data seed.Data) (seed.Result, error) {
	const (
		printsEmpty  = `SELECT NOT EXISTS (SELECT 1 FROM prints)`
		catalogEmpty = `SELECT NOT EXISTS (SELECT 1 FROM catalog)`
		insertPrint  = `INSERT INTO prints (size, print_cost, shipping_cost) VALUES ($1, $2, $3)`
		insertPhoto  = `INSERT INTO catalog (title, location, year, path) VALUES ($1, $2, $3, $4)`
	)

	var result seed.Result
	err := s.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var empty bool
		if err := tx.QueryRow(ctx, printsEmpty).Scan(&empty); err != nil {
			return err
		}
		if empty {
			for _, opt := range data.PrintOptions {
				if _, err := tx.Exec(ctx, insertPrint, opt.Size, opt.PrintCost.String(), opt.ShippingCost.String()); err != nil {
					return err
				}
			}
			result.PrintOptions = len(data.PrintOptions)
		}

		if err := tx.QueryRow(ctx, catalogEmpty).Scan(&empty); err != nil {
			return err
		}
		if empty {
			for _, item := range data.Catalog {
				path := item.Path
				if path == "" {
					path = model.DefaultPhotoPath
				}
				if _, err := tx.Exec(ctx, insertPhoto, item.Title, item.Location, item.Year, path); err != nil {
					return err
				}
			}
			result.CatalogItems = len(data.Catalog)
		}
		return nil
	})
	if err != nil {
		return seed.Result{}, fmt.Errorf("seed: %w", err)
	}

	s.logger.Info("seed applied",
		slog.Int("catalog_items", result.CatalogItems),
		slog.Int("print_options", result.PrintOptions),
	)
	return result, nil
}

// --- CatalogRepository implementation ---

const catalogSelect = `SELECT id, title, location, year, path FROM catalog`

func (r *catalogRepository) ListAll(ctx context.Context) ([]model.CatalogItem, error) {
	return r.list(ctx, catalogSelect+` ORDER BY id`)
}

func (r *catalogRepository) ListUpTo(ctx context.Context, maxID int64) ([]model.CatalogItem, error) {
	return r.list(ctx, catalogSelect+` WHERE id <= $1 ORDER BY id`, maxID)
}

func (r *catalogRepository) ListRange(ctx context.Context, afterID, maxID int64) ([]model.CatalogItem, error) {
	return r.list(ctx, catalogSelect+` WHERE id > $1 AND id <= $2 ORDER BY id`, afterID, maxID)
}

func (r *catalogRepository) list(ctx context.Context, query string, args ...any) ([]model.CatalogItem, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.CatalogItem, 0)
	for rows.Next() {
		var item model.CatalogItem
		if err := rows.Scan(&item.ID, &item.Title, &item.Location, &item.Year, &item.Path); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *catalogRepository) GetByID(ctx context.Context, id int64) (*model.CatalogItem, error) {
	var item model.CatalogItem
	err := r.storage.pool.QueryRow(ctx, catalogSelect+` WHERE id=$1`, id).
		Scan(&item.ID, &item.Title, &item.Location, &item.Year, &item.Path)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *catalogRepository) Delete(ctx context.Context, id int64) error {
	return r.storage.deleteByID(ctx, `DELETE FROM catalog WHERE id=$1`, id)
}

// --- PrintOptionRepository implementation ---

const printSelect = `SELECT id, size, print_cost::text, shipping_cost::text FROM prints`

func (r *printRepository) List(ctx context.Context) ([]model.PrintOption, error) {
	rows, err := r.storage.pool.Query(ctx, printSelect+` ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.PrintOption, 0)
	for rows.Next() {
		opt, err := scanPrintOption(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *opt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *printRepository) GetByID(ctx context.Context, id int64) (*model.PrintOption, error) {
	opt, err := scanPrintOption(r.storage.pool.QueryRow(ctx, printSelect+` WHERE id=$1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return opt, nil
}

func (r *printRepository) Delete(ctx context.Context, id int64) error {
	return r.storage.deleteByID(ctx, `DELETE FROM prints WHERE id=$1`, id)
}

func scanPrintOption(row pgx.Row) (*model.PrintOption, error) {
	var (
		opt                 model.PrintOption
		printCost, shipCost string
	)
	if err := row.Scan(&opt.ID, &opt.Size, &printCost, &shipCost); err != nil {
		return nil, err
	}

	var err error
	if opt.PrintCost, err = decimal.NewFromString(printCost); err != nil {
		return nil, fmt.Errorf("print cost of option %d: %w", opt.ID, err)
	}
	if opt.ShippingCost, err = decimal.NewFromString(shipCost); err != nil {
		return nil, fmt.Errorf("shipping cost of option %d: %w", opt.ID, err)
	}
	return &opt, nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	const query = `INSERT INTO orders (
            id, time_placed, first_name, last_name, email, primary_phone,
            address_line_one, address_line_two, city, state_or_region,
            postal_code, country, print_id, photo_id, status
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.storage.pool.Exec(ctx, query,
		order.ID, order.TimePlaced, order.FirstName, order.LastName, order.Email, order.PrimaryPhone,
		order.AddressLineOne, order.AddressLineTwo, order.City, order.StateOrRegion,
		order.PostalCode, order.Country, order.PrintID, order.PhotoID, order.Status,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgForeignKeyViolation:
				return domainErrors.ErrInvalidReference
			case pgUniqueViolation:
				return fmt.Errorf("order %s: duplicate id: %w", order.ID, err)
			}
		}
		return err
	}
	return nil
}

func (s *Storage) deleteByID(ctx context.Context, query string, id int64) error {
	tag, err := s.pool.Exec(ctx, query, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return domainErrors.ErrInUse
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}
