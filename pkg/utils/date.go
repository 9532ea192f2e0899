package utils

import (
	"fmt"
	"strings"
	"time"
)

var dayLayouts = []string{time.DateOnly, "02/01/2006"}

// ParseDay aceita AAAA-MM-DD ou DD/MM/AAAA; texto vazio devolve a data zero sem erro
func ParseDay(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}

	for _, layout := range dayLayouts {
		if day, err := time.Parse(layout, value); err == nil {
			return day, nil
		}
	}

	return time.Time{}, fmt.Errorf("data %q fora dos formatos aceitos (AAAA-MM-DD, DD/MM/AAAA)", value)
}
