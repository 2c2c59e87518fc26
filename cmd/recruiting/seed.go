package main

import (
	"context"
	"fmt"
	"os"

	"github.com/OnnIInnO/Recruiting2.0/internal/seed"
	"github.com/spf13/cobra"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load example companies and job postings",
	Long:  "Upsert the companies and job postings of a YAML catalog. Without --file the embedded example catalog is used.",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "Path to a YAML seed catalog")
	rootCmd.AddCommand(seedCmd)
}

// loadCatalog reads the catalog at path, or the embedded one when path is empty.
func loadCatalog(path string) (*seed.Catalog, error) {
	if path == "" {
		return seed.Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return seed.Parse(data)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	catalog, err := loadCatalog(seedFile)
	if err != nil {
		return err
	}

	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	database, err := openDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer database.Close()

	res, err := seed.Load(ctx, database, catalog, log)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d companies and %d job postings\n", res.Companies, res.Jobs)
	return nil
}
