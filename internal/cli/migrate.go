package cli

import (
	"github.com/spf13/cobra"

	"github.com/Alexsander532/projeto-dashboard-versao1/infrastructure/migration"
)

func NewMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica as migrações pendentes do banco",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conn, err := connect(cmd)
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := migration.Up(conn.DB); err != nil {
				return err
			}

			version, err := migration.Version(conn.DB)
			if err != nil {
				return err
			}

			cmd.Printf("Banco na versão %d\n", version)
			return nil
		},
	}
}
