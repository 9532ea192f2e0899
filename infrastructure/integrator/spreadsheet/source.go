package spreadsheet

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/sheets/v4"

	"github.com/Alexsander532/projeto-dashboard-versao1/internal/config"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/usecases/syncing"
)

var ErrNoSource = errors.New("nenhuma planilha configurada para a fonte")

// NewRowSource escolhe a origem das linhas: arquivo local quando configurado, senão Google Sheets.
// O serviço do Google é criado sob demanda e reaproveitado entre as fontes.
func NewRowSource(ctx context.Context, name string, settings config.SourceSettings, google func(context.Context) (*sheets.Service, error)) (syncing.RowSource, error) {
	if settings.XLSXPath != "" {
		return NewXLSXSource(settings.XLSXPath, settings.XLSXSheet), nil
	}

	if settings.SheetID == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoSource, name)
	}

	service, err := google(ctx)
	if err != nil {
		return nil, err
	}

	return NewGoogleSheetSource(service, settings.SheetID, settings.SheetRange), nil
}

// padRows completa cada linha até a largura do cabeçalho. As APIs omitem células vazias no fim
// da linha; linhas mais largas que o cabeçalho são mantidas como vieram.
func padRows(rows [][]string) [][]string {
	if len(rows) == 0 {
		return rows
	}

	width := len(rows[0])
	for i, row := range rows {
		if len(row) < width {
			padded := make([]string, width)
			copy(padded, row)
			rows[i] = padded
		}
	}
	return rows
}
