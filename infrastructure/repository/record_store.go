package repository

import (
	"context"
	stderrors "errors"

	"github.com/lib/pq"

	"github.com/Alexsander532/projeto-dashboard-versao1/internal/domain"
)

// Código do PostgreSQL para violação de unicidade
const uniqueViolation = "23505"

var (
	ErrUnexpectedRecord = stderrors.New("tipo de registro inesperado para o repositório")
	ErrNotFound         = stderrors.New("registro não encontrado")
)

// RecordTx expõe as escritas de um único registro dentro da transação aberta para ele
type RecordTx interface {
	Exists(ctx context.Context, key string) (bool, error)
	Insert(ctx context.Context, record domain.Record) error
	Update(ctx context.Context, record domain.Record) error
}

// RecordStore abre uma unidade de trabalho por registro.
// A transação é confirmada quando fn retorna nil e desfeita em qualquer outro caso.
type RecordStore interface {
	Ping(ctx context.Context) error
	WithinRecord(ctx context.Context, fn func(tx RecordTx) error) error
}

// IsUniqueViolation indica se o erro veio de uma chave duplicada
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	return false
}
