package cli

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Alexsander532/projeto-dashboard-versao1/internal/app"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/domain"
)

// NewRunCommand cria o comando que sincroniza uma ou todas as fontes
func NewRunCommand() *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Sincroniza as planilhas e imprime o relatório de cada lote",
		Example: `  # Sincroniza todas as fontes configuradas
  ingest run

  # Sincroniza apenas o estoque
  ingest run --source stock`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conn, err := connect(cmd)
			if err != nil {
				return err
			}
			defer conn.Close()

			a, err := app.New(cmd.Context(), getConfig(cmd), conn)
			if err != nil {
				return err
			}

			names := []string{source}
			if source == "all" {
				names = a.SourceNames()
			}
			if len(names) == 0 {
				return errors.New("nenhuma fonte configurada")
			}

			reports := make([]*domain.BatchReport, 0, len(names))
			var failed []error
			for _, name := range names {
				report, err := a.SyncSource(cmd.Context(), name)
				if err != nil {
					logrus.WithFields(logrus.Fields{
						"source": name,
						"error":  err.Error(),
					}).Error("Falha na sincronização")
					failed = append(failed, fmt.Errorf("%s: %w", name, err))
					continue
				}
				reports = append(reports, report)
			}

			a.Syncer.Wait()

			if err := printJSON(cmd, reports); err != nil {
				return err
			}
			return errors.Join(failed...)
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "all", "Fonte a sincronizar (ml, magalu, stock ou all)")

	return cmd
}
