package cmd

import (
	"ecommerce-api/config"
	"ecommerce-api/seeds"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Migrate the schema and insert the sample catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := config.InitDB(cfg)
		if err != nil {
			return err
		}
		if err := config.Migrate(db); err != nil {
			return err
		}
		if err := seeds.Run(cmd.Context(), db); err != nil {
			return err
		}
		logger.Info("database seeded",
			"categories", len(seeds.Categories),
			"tags", len(seeds.Tags),
			"products", len(seeds.Products),
		)
		return nil
	},
}
