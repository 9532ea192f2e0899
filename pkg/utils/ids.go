package utils

import (
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "abcdefghijkmnopqrstuvwxyz23456789"

// NewBatchID gera o identificador de um lote: fonte, instante e sufixo aleatório
// (ex.: "ml-20250301T103000-k3x9p2")
func NewBatchID(source string, at time.Time) string {
	id := source + "-" + at.Format("20060102T150405")

	suffix, err := gonanoid.Generate(idAlphabet, 6)
	if err != nil {
		return id
	}
	return id + "-" + suffix
}
