package ingesting

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRecord = errors.New("registro inválido")
	ErrPersistence   = errors.New("erro ao gravar registro")
	ErrPanic         = errors.New("falha inesperada ao processar registro")
	ErrUnknownPolicy = errors.New("política de ingestão desconhecida")
)

// IngestError é a falha de um único registro; o lote continua
type IngestError struct {
	Kind error  // ErrInvalidRecord, ErrPersistence ou ErrPanic
	Key  string // chave de negócio do registro
	Err  error
}

func (e *IngestError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Kind.Error(), e.Key, e.Err)
}

// Unwrap permite errors.Is tanto para o tipo da falha quanto para a causa
func (e *IngestError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func NewIngestError(kind error, key string, err error) *IngestError {
	return &IngestError{
		Kind: kind,
		Key:  key,
		Err:  err,
	}
}
