package mapper

import (
	"fmt"
	"strings"

	"github.com/Alexsander532/projeto-dashboard-versao1/internal/domain"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/normalizer"
)

const (
	SkipMissingKey = "missing_key"
	SkipShortRow   = "short_row"
)

// SkipReason explica por que uma linha foi descartada sem ser considerada erro
type SkipReason struct {
	Code   string
	Detail string
}

func (s *SkipReason) Error() string {
	return fmt.Sprintf("linha ignorada (%s): %s", s.Code, s.Detail)
}

// Column declara a posição, o nome e o tipo de uma coluna da planilha
type Column struct {
	Index   int
	Field   string
	Kind    normalizer.Kind
	Default normalizer.Value
}

// Row são os valores já normalizados de uma linha, indexados pelo nome do campo
type Row map[string]normalizer.Value

// Schema descreve o layout posicional de uma fonte e como montar o registro
type Schema struct {
	Name          string
	KeyColumn     int
	RequiredWidth int
	Columns       []Column
	Build         func(row Row) domain.Record
}

// Mapped é um registro montado a partir de uma linha, com as células que caíram no valor padrão
type Mapped struct {
	Record      domain.Record
	Diagnostics []*normalizer.Diagnostic
}

type Mapper struct {
	normalizer *normalizer.Normalizer
}

func New(n *normalizer.Normalizer) *Mapper {
	return &Mapper{normalizer: n}
}

// Map converte uma linha crua em registro de domínio segundo o schema.
// Linhas sem chave ou mais curtas que o exigido são descartadas com SkipReason.
func (m *Mapper) Map(row []string, schema Schema) (*Mapped, *SkipReason) {
	if len(row) < schema.RequiredWidth {
		return nil, &SkipReason{
			Code:   SkipShortRow,
			Detail: fmt.Sprintf("%d colunas, mínimo %d", len(row), schema.RequiredWidth),
		}
	}

	if schema.KeyColumn >= len(row) || strings.TrimSpace(row[schema.KeyColumn]) == "" {
		return nil, &SkipReason{
			Code:   SkipMissingKey,
			Detail: fmt.Sprintf("coluna %d vazia", schema.KeyColumn),
		}
	}

	values := make(Row, len(schema.Columns))
	mapped := &Mapped{}

	for _, col := range schema.Columns {
		raw := ""
		if col.Index < len(row) {
			raw = row[col.Index]
		}

		value, diag := m.normalizer.NormalizeWithDiagnostic(raw, col.Kind, col.Default)
		if diag != nil {
			mapped.Diagnostics = append(mapped.Diagnostics, diag)
		}
		values[col.Field] = value
	}

	mapped.Record = schema.Build(values)
	return mapped, nil
}
