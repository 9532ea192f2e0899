package domain

import "github.com/go-playground/validator/v10"

// Source identifica a origem de um lote de registros
type Source string

const (
	SourceML     Source = "ml"
	SourceMagalu Source = "magalu"
	SourceStock  Source = "stock"
)

func (s Source) String() string {
	return string(s)
}

// Record é qualquer registro de domínio que pode ser gravado pelo motor de ingestão
type Record interface {
	BusinessKey() string
	Validate() error
}

var validate = validator.New()
