package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// El contrato expone cantidades y montos como números JSON, no strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate aplica las reglas `validate` declaradas en los tags del DTO.
// Las reglas cubren forma y presencia; la semántica de negocio (montos,
// existencias) se valida en los casos de uso.
func Validate(s any) error {
	return validate.Struct(s)
}
