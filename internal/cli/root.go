// Package cli implements photoctl, the offline administration tool.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/polkiloo/photocatalog/internal/domain/repository"
	"github.com/polkiloo/photocatalog/internal/seed"
	"github.com/polkiloo/photocatalog/internal/storage/postgres"
)

// store is the subset of postgres.Storage used by commands.
type store interface {
	repository.Factory
	Seed(ctx context.Context, data seed.Data) (seed.Result, error)
	Close()
}

var openStore = func(ctx context.Context, dsn string, logger *slog.Logger) (store, error) {
	return postgres.New(ctx, dsn, logger)
}

var databaseURI string

var rootCmd = &cobra.Command{
	Use:   "photoctl",
	Short: "Administer the photocatalog database",
	Long: `photoctl loads sample data into the photocatalog database and removes
catalog entries or print sizes that are no longer offered.

Rows referenced by existing orders cannot be removed.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&databaseURI, "database-uri", "d", os.Getenv("DATABASE_URI"), "PostgreSQL connection string (env DATABASE_URI)")
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func connect(cmd *cobra.Command) (store, error) {
	if databaseURI == "" {
		return nil, errors.New("database uri is required (--database-uri or DATABASE_URI)")
	}
	logger := slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))
	s, err := openStore(cmd.Context(), databaseURI, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return s, nil
}
