package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/internmatch/internmatch/internal/catalog"
	"github.com/internmatch/internmatch/internal/config"
	"github.com/internmatch/internmatch/internal/database"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the internship catalog store",
}

var catalogImportCmd = &cobra.Command{
	Use:   "import <internships.json>",
	Short: "Import an internship catalog JSON file into sqlite",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogImport,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the stored internship catalog",
	RunE:  runCatalogList,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogListCmd)
}

func runCatalogImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	items, err := catalog.LoadInternships(args[0])
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open catalog database: %w", err)
	}
	defer db.Close()

	if err := db.ImportInternships(ctx, items); err != nil {
		return err
	}

	fmt.Printf("Imported %d internships into %s\n", len(items), cfg.Database.Path)
	return nil
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open catalog database: %w", err)
	}
	defer db.Close()

	items, err := db.ListInternships(ctx)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Println("Catalog is empty. Run 'internmatch catalog import <file>' first.")
		return nil
	}

	for _, item := range items {
		fmt.Printf("%-10s %s at %s (%s)\n", item.ID, item.Title, item.Organization, item.Location)
	}
	return nil
}
