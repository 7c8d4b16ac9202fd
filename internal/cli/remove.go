package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	domainErrors "github.com/polkiloo/photocatalog/internal/domain/errors"
	"github.com/polkiloo/photocatalog/internal/usecase"
)

var removePhotoCmd = &cobra.Command{
	Use:   "remove-photo ID",
	Short: "Remove a catalog entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRemove(cmd, args[0], "photo", func(ctx context.Context, s store, id int64) error {
			return usecase.NewCatalogUseCase(s.Catalog()).RemovePhoto(ctx, id)
		})
	},
}

var removePrintCmd = &cobra.Command{
	Use:   "remove-print ID",
	Short: "Remove a print size from the price list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRemove(cmd, args[0], "print option", func(ctx context.Context, s store, id int64) error {
			return usecase.NewCheckoutUseCase(s.Catalog(), s.PrintOptions(), s.Orders(), nil).RemovePrintOption(ctx, id)
		})
	},
}

func init() {
	rootCmd.AddCommand(removePhotoCmd, removePrintCmd)
}

func runRemove(cmd *cobra.Command, rawID, kind string, remove func(context.Context, store, int64) error) error {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid %s id %q", kind, rawID)
	}

	s, err := connect(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	switch err := remove(cmd.Context(), s, id); {
	case errors.Is(err, domainErrors.ErrNotFound):
		return fmt.Errorf("%s %d not found", kind, id)
	case errors.Is(err, domainErrors.ErrInUse):
		return fmt.Errorf("%s %d is referenced by existing orders and cannot be removed", kind, id)
	case err != nil:
		return fmt.Errorf("failed to remove %s %d: %w", kind, id, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "removed %s %d\n", kind, id)
	return nil
}
