package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/polkiloo/photocatalog/internal/seed"
)

var (
	catalogSize int
	randSeed    int64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample catalog and print price list",
	Long: `Insert generated catalog entries and the small/medium/large price list.
Tables that already hold rows are left untouched, so running the command
twice is safe.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().IntVar(&catalogSize, "catalog-size", 100, "number of catalog entries to generate")
	seedCmd.Flags().Int64Var(&randSeed, "rand-seed", 1, "seed for generated locations and years")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	if catalogSize < 0 {
		return fmt.Errorf("catalog size must not be negative, got %d", catalogSize)
	}

	s, err := connect(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	res, err := s.Seed(cmd.Context(), seed.New(catalogSize, randSeed))
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	out := cmd.OutOrStdout()
	if res.CatalogItems == 0 && res.PrintOptions == 0 {
		fmt.Fprintln(out, "database already seeded, nothing to do")
		return nil
	}
	fmt.Fprintf(out, "inserted %d catalog entries and %d print options\n", res.CatalogItems, res.PrintOptions)
	return nil
}
