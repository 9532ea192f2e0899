// Package cli implementa a linha de comando de ingestão: sincronização manual das planilhas,
// migrações, emissão de tokens e carga de metas.
package cli

import (
	"context"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/Alexsander532/projeto-dashboard-versao1/infrastructure/database/postgres"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/config"
	"github.com/Alexsander532/projeto-dashboard-versao1/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type configKey struct{}

// NewRootCmd cria o comando raiz com todos os subcomandos
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ingest",
		Short: "Ingestão das planilhas de vendas e estoque",
		Long: `Lê as planilhas do Mercado Livre, Magalu e de estoque, converte os valores
e grava os registros no PostgreSQL usado pelo dashboard.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}

			log.Setup(cfg.App.LogLevel)

			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(NewRunCommand())
	rootCmd.AddCommand(NewMigrateCommand())
	rootCmd.AddCommand(NewTokenCommand())
	rootCmd.AddCommand(NewSeedGoalsCommand())

	return rootCmd
}

func getConfig(cmd *cobra.Command) *config.Config {
	if cfg, ok := cmd.Context().Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return &config.Config{}
}

func connect(cmd *cobra.Command) (*postgres.Connection, error) {
	return postgres.NewConnection(cmd.Context(), getConfig(cmd).Database)
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(out))
	return nil
}
