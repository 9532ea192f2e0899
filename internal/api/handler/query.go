package handler

import (
	"fmt"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// decodeQuery copia os parâmetros da URL para out e valida as tags `validate`
func decodeQuery(values url.Values, out any) error {
	raw := make(map[string]any, len(values))
	for key := range values {
		if v := values.Get(key); v != "" {
			raw[key] = v
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}

	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("parâmetros inválidos: %w", err)
	}

	return validate.Struct(out)
}

// validationDetails resume os erros do validator por campo
func validationDetails(err error) map[string]string {
	details := map[string]string{}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		details["query"] = err.Error()
		return details
	}

	for _, fe := range validationErrors {
		details[fe.Field()] = fe.Tag()
	}
	return details
}
