package application

import "errors"

// ErrValidation marca errores de datos de entrada; la capa HTTP los
// responde como 400.
var ErrValidation = errors.New("invalid input")
