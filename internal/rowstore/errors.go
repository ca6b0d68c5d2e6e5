package rowstore

import (
	"errors"
	"fmt"
)

// Errores centinela para que las capas superiores puedan distinguir fallos
// del almacén remoto sin inspeccionar texto.
var (
	ErrNotFound         = errors.New("row not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrMissingRelation  = errors.New("relation does not exist")
)

// StoreError es el cuerpo de error que devuelve el almacén remoto.
type StoreError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details"`
	Hint       string `json:"hint"`
}

func (e *StoreError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("row store error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("row store error %d: %s", e.StatusCode, e.Message)
}

// IsMissingRelation indica si el error corresponde a una tabla no provisionada.
func IsMissingRelation(err error) bool {
	return errors.Is(err, ErrMissingRelation)
}
