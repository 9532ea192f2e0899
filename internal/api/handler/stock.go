package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Alexsander532/projeto-dashboard-versao1/internal/usecases/stocking"
	"github.com/Alexsander532/projeto-dashboard-versao1/pkg/apiErrors"
	"github.com/Alexsander532/projeto-dashboard-versao1/pkg/log"
)

// ListStock devolve a posição de estoque com a classificação de cada SKU
func ListStock(service stocking.Stocker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListStock")

		items, err := service.List(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar estoque")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar estoque", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"items": items,
			"total": len(items),
		})
	}
}

// RefreshStock recalcula status e médias de venda do estoque
func RefreshStock(service stocking.Stocker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RefreshStock")

		if err := service.Refresh(r.Context()); err != nil {
			logrus.WithError(err).Error("Erro ao recalcular estoque")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao recalcular estoque", err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Estoque recalculado com sucesso",
		})
	}
}

type updateStockRequest struct {
	Description *string          `json:"description" validate:"omitempty,max=255"`
	Minimum     *int             `json:"minimum" validate:"omitempty,gte=0"`
	Cost        *decimal.Decimal `json:"cost"`
}

// UpdateStock edita descrição, mínimo e custo de um SKU e devolve a posição reclassificada
func UpdateStock(service stocking.Stocker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateStock")
		logger := log.ForContext(r.Context())

		sku := httprouter.ParamsFromContext(r.Context()).ByName("sku")

		var req updateStockRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		if err := validate.Struct(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Dados do produto inválidos", validationDetails(err))
			return
		}
		if req.Cost != nil && req.Cost.IsNegative() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Dados do produto inválidos", map[string]string{"Cost": "gte"})
			return
		}
		if req.Description == nil && req.Minimum == nil && req.Cost == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe description, minimum ou cost", nil)
			return
		}

		stock, err := service.Update(r.Context(), sku, stocking.Changes{
			Description: req.Description,
			Minimum:     req.Minimum,
			Cost:        req.Cost,
		})
		if errors.Is(err, stocking.ErrStockNotFound) {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Produto não encontrado", map[string]string{"sku": sku})
			return
		}
		if err != nil {
			logger.WithFields(log.Fields{
				"sku":   sku,
				"error": err.Error(),
			}).Error("estoque: falha ao atualizar produto")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar produto", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stock); err != nil {
			logger.WithField("error", err.Error()).Error("estoque: falha ao serializar resposta")
		}
	}
}
