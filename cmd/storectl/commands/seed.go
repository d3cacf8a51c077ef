package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"storefront/internal/config"
	"storefront/internal/repository"
	"storefront/internal/seed"
)

var skipMigrate bool

// seedCmd inserts reference data
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert reference data",
	Long: `Insert the fulfillment pool, payment methods, the default category and a
sample product. Rows that already exist are left alone.

Examples:
  storectl seed
  storectl seed --skip-migrate`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, pool, err := connect(cmd)
		if err != nil {
			return err
		}
		defer pool.Close()

		if !skipMigrate {
			if err := config.AutoMigrate(ctx, pool); err != nil {
				return err
			}
		}

		report, err := seed.Run(ctx, seed.Repositories{
			Catalog:   repository.NewCatalogRepository(pool),
			Employees: repository.NewEmployeeRepository(pool),
			Products:  repository.NewProductRepository(pool),
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "employees: %d, payment methods: %d, products: %d\n",
			report.Employees, report.PaymentMethods, report.Products)
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "Do not apply the schema before seeding")
}
