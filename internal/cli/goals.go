package cli

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Alexsander532/projeto-dashboard-versao1/infrastructure/integrator/spreadsheet"
	"github.com/Alexsander532/projeto-dashboard-versao1/infrastructure/repository"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/domain"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/mapper"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/normalizer"
)

var goalsConvention = normalizer.Convention{
	Numeric: normalizer.BrazilianNumeric,
	Date:    normalizer.DateConvention{Layouts: []string{"01/2006", "1/2006", "02/01/2006"}},
}

// NewSeedGoalsCommand carrega as metas mensais a partir de um arquivo .xlsx
func NewSeedGoalsCommand() *cobra.Command {
	var (
		file  string
		sheet string
	)

	cmd := &cobra.Command{
		Use:   "seed-goals",
		Short: "Carrega metas mensais por SKU a partir de um arquivo .xlsx",
		Long: `O arquivo deve ter cabeçalho e as colunas: SKU, mês (MM/AAAA),
meta de vendas (R$) e meta de margem (%). Metas já existentes são atualizadas.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := spreadsheet.NewXLSXSource(file, sheet).FetchRows(cmd.Context())
			if err != nil {
				return err
			}

			goals, invalid := ParseGoals(rows)
			for _, err := range invalid {
				logrus.WithError(err).Warn("Meta ignorada")
			}

			conn, err := connect(cmd)
			if err != nil {
				return err
			}
			defer conn.Close()

			saved, err := saveGoals(cmd, repository.NewGoalRepository(conn), goals)
			cmd.Printf("%d metas gravadas, %d linhas ignoradas\n", saved, len(invalid))
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Arquivo .xlsx com as metas")
	cmd.Flags().StringVar(&sheet, "sheet", "metas", "Aba do arquivo")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// ParseGoals converte as linhas da planilha de metas; a primeira linha é o cabeçalho
func ParseGoals(rows [][]string) ([]*domain.Goal, []error) {
	if len(rows) > 0 {
		rows = rows[1:]
	}

	m := mapper.New(normalizer.New("metas", goalsConvention))
	schema := mapper.GoalsSchema()

	var (
		goals   []*domain.Goal
		invalid []error
	)
	for i, row := range rows {
		line := i + 2

		mapped, skip := m.Map(row, schema)
		if skip != nil {
			invalid = append(invalid, fmt.Errorf("linha %d: %w", line, skip))
			continue
		}

		goal := mapped.Record.(*domain.Goal)
		if err := goal.Validate(); err != nil {
			invalid = append(invalid, fmt.Errorf("linha %d (%s): %w", line, goal.BusinessKey(), err))
			continue
		}
		goals = append(goals, goal)
	}

	return goals, invalid
}

func saveGoals(cmd *cobra.Command, repo repository.GoalRepository, goals []*domain.Goal) (int, error) {
	var errs []error
	saved := 0
	for _, goal := range goals {
		if err := repo.Save(cmd.Context(), goal); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", goal.BusinessKey(), err))
			continue
		}
		saved++
	}
	return saved, errors.Join(errs...)
}
