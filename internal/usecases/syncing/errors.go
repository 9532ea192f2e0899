package syncing

import (
	"errors"
	"fmt"

	"github.com/Alexsander532/projeto-dashboard-versao1/internal/domain"
)

var (
	ErrConnection    = errors.New("falha de conexão")
	ErrUnknownSource = errors.New("fonte desconhecida")
)

// ConnectionError indica que a fonte ou o banco não responderam antes do processamento.
// Nenhuma linha foi gravada.
type ConnectionError struct {
	Source domain.Source
	Stage  string // "store" ou "rows"
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s: %s em %s: %v", ErrConnection.Error(), e.Source, e.Stage, e.Err)
}

func (e *ConnectionError) Unwrap() []error {
	return []error{ErrConnection, e.Err}
}
