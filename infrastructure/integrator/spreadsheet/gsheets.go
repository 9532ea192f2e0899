package spreadsheet

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// GoogleSheetSource lê um intervalo de uma planilha do Google Sheets
type GoogleSheetSource struct {
	service       *sheets.Service
	spreadsheetID string
	readRange     string
}

// NewGoogleSheetsService cria o cliente autenticado com a conta de serviço em credentialsFile
func NewGoogleSheetsService(ctx context.Context, credentialsFile string, opts ...option.ClientOption) (*sheets.Service, error) {
	options := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsReadonlyScope)}
	if credentialsFile != "" {
		options = append(options, option.WithCredentialsFile(credentialsFile))
	}
	options = append(options, opts...)

	service, err := sheets.NewService(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente do Google Sheets: %w", err)
	}

	return service, nil
}

func NewGoogleSheetSource(service *sheets.Service, spreadsheetID, readRange string) *GoogleSheetSource {
	return &GoogleSheetSource{
		service:       service,
		spreadsheetID: spreadsheetID,
		readRange:     readRange,
	}
}

// FetchRows devolve todas as linhas do intervalo como texto formatado, cabeçalho incluído,
// com as células vazias finais preenchidas até a largura do cabeçalho
func (s *GoogleSheetSource) FetchRows(ctx context.Context) ([][]string, error) {
	resp, err := s.service.Spreadsheets.Values.
		Get(s.spreadsheetID, s.readRange).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler planilha %s (%s): %w", s.spreadsheetID, s.readRange, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, values := range resp.Values {
		row := make([]string, len(values))
		for i, cell := range values {
			if cell != nil {
				row[i] = fmt.Sprint(cell)
			}
		}
		rows = append(rows, row)
	}

	return padRows(rows), nil
}
