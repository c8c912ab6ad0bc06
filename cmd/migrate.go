package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "init-db-migrate",
	Short: "Initialize tables and run database migrations",
	Long:  `This job waits for the database to accept connections and then runs goose migrations.`,
	Run: func(cmd *cobra.Command, args []string) {

		commonSetUp()
		defer campDB.Close()

		if err := campDB.WaitForReady(dbReadyTimeout); err != nil {
			log.Fatal().Err(err).Msg("database never became ready")
		}

		log.Info().Msgf("Running migrations...")
		if err := campDB.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}

		log.Info().Msg("Migrations complete")
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
