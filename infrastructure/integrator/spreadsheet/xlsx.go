package spreadsheet

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXSource lê uma aba de um arquivo .xlsx exportado da planilha
type XLSXSource struct {
	path  string
	sheet string
}

// NewXLSXSource cria a fonte; sem sheet, a primeira aba do arquivo é usada
func NewXLSXSource(path, sheet string) *XLSXSource {
	return &XLSXSource{
		path:  path,
		sheet: sheet,
	}
}

func (s *XLSXSource) FetchRows(ctx context.Context) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir arquivo %s: %w", s.path, err)
	}
	defer f.Close()

	sheet := s.sheet
	if sheet == "" || sheetIndex(f, sheet) < 0 {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler aba %s de %s: %w", sheet, s.path, err)
	}

	return padRows(rows), nil
}

func sheetIndex(f *excelize.File, sheet string) int {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return -1
	}
	return idx
}
