package stocking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Alexsander532/projeto-dashboard-versao1/infrastructure/repository"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/domain"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/status"
)

var ErrStockNotFound = errors.New("SKU não encontrado no estoque")

// Stocker expõe a posição de estoque e o recálculo das métricas derivadas
type Stocker interface {
	Refresh(ctx context.Context) error
	List(ctx context.Context) ([]*domain.Stock, error)
	Update(ctx context.Context, sku string, changes Changes) (*domain.Stock, error)
}

// Changes são os campos cadastrais editáveis de um SKU; nil mantém o valor atual
type Changes struct {
	Description *string
	Minimum     *int
	Cost        *decimal.Decimal
}

type Service struct {
	stockRepository repository.StockRepository
	windowDays      int
	now             func() time.Time
}

func NewService(stockRepository repository.StockRepository) *Service {
	return &Service{
		stockRepository: stockRepository,
		windowDays:      domain.SalesWindowDays,
		now:             time.Now,
	}
}

// WithClock troca o relógio usado para calcular a janela de vendas
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Finalize roda o recálculo ao fim de cada lote gravado
func (s *Service) Finalize(ctx context.Context) error {
	return s.Refresh(ctx)
}

// Refresh recalcula status, média diária, total e última venda de todos os SKUs em estoque.
// Um SKU com erro não impede a atualização dos demais.
func (s *Service) Refresh(ctx context.Context) error {
	stocks, err := s.stockRepository.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("erro ao listar estoque: %w", err)
	}

	since := s.now().AddDate(0, 0, -s.windowDays)
	activity, err := s.stockRepository.SalesActivity(ctx, since)
	if err != nil {
		return fmt.Errorf("erro ao buscar histórico de vendas: %w", err)
	}

	var errs []error
	for _, stock := range stocks {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		applyActivity(stock, activity[stock.SKU], s.windowDays)

		if err := s.stockRepository.UpdateDerived(ctx, stock); err != nil {
			errs = append(errs, fmt.Errorf("sku %s: %w", stock.SKU, err))
		}
	}

	logrus.WithFields(logrus.Fields{
		"skus":   len(stocks),
		"errors": len(errs),
	}).Info("Métricas de estoque recalculadas")

	return errors.Join(errs...)
}

// List devolve o estoque com o rótulo do status de cada SKU
func (s *Service) List(ctx context.Context) ([]*domain.Stock, error) {
	stocks, err := s.stockRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar estoque: %w", err)
	}

	for _, stock := range stocks {
		if stock.Status == "" {
			stock.Status = status.ClassifyStock(stock.Quantity, stock.Minimum)
		}
		stock.StatusLabel = status.Label(stock.Status)
	}

	return stocks, nil
}

// Update aplica a edição manual do cadastro e reclassifica o SKU com o novo mínimo
func (s *Service) Update(ctx context.Context, sku string, changes Changes) (*domain.Stock, error) {
	stock, err := s.stockRepository.FindBySKU(ctx, sku)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrStockNotFound, sku)
		}
		return nil, fmt.Errorf("erro ao buscar SKU %s: %w", sku, err)
	}

	if changes.Description != nil {
		stock.Description = *changes.Description
	}
	if changes.Minimum != nil {
		stock.Minimum = *changes.Minimum
	}
	if changes.Cost != nil {
		stock.Cost = *changes.Cost
	}
	stock.Status = status.ClassifyStock(stock.Quantity, stock.Minimum)
	stock.StatusLabel = status.Label(stock.Status)

	if err := s.stockRepository.UpdateCatalog(ctx, stock); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrStockNotFound, sku)
		}
		return nil, fmt.Errorf("erro ao atualizar SKU %s: %w", sku, err)
	}

	logrus.WithFields(logrus.Fields{
		"sku":     sku,
		"minimum": stock.Minimum,
		"status":  stock.Status,
	}).Info("Cadastro de estoque atualizado")

	return stock, nil
}

func applyActivity(stock *domain.Stock, activity domain.SalesActivity, windowDays int) {
	stock.Status = status.ClassifyStock(stock.Quantity, stock.Minimum)
	stock.TotalSales = activity.TotalSales
	stock.AverageDailySales = activity.AverageDailySales(windowDays)
	stock.LastSale = activity.LastSale
}
