package application

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Validator contiene funciones de validación de datos de formularios.
type Validator struct{}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
var phoneRegex = regexp.MustCompile(`^\+?\d{7,15}$`)

// ValidateEmail valida el formato de un email.
func (v *Validator) ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("email '%s' is not valid", email)
	}
	return nil
}

// ValidatePhone valida el formato de un teléfono. El teléfono es opcional;
// si viene vacío no hay error.
func (v *Validator) ValidatePhone(phone string) error {
	if phone == "" {
		return nil
	}

	// Limpiar espacios, guiones y paréntesis
	clean := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)

	if !phoneRegex.MatchString(clean) {
		return fmt.Errorf("phone '%s' must have between 7 and 15 digits", phone)
	}
	return nil
}

// ValidateName valida que un campo de texto requerido tenga un largo razonable.
func (v *Validator) ValidateName(name, fieldName string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	if len(name) < 2 {
		return fmt.Errorf("%s must have at least 2 characters", fieldName)
	}
	if len(name) > 100 {
		return fmt.Errorf("%s cannot exceed 100 characters", fieldName)
	}
	return nil
}

// ValidateDateRange valida el rango de fechas de un alquiler.
func (v *Validator) ValidateDateRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("start and end dates are required")
	}
	if end.Before(start) {
		return fmt.Errorf("end date must not be before start date")
	}
	return nil
}

// FormatValidationErrors formatea una lista de errores en un mensaje legible.
func (v *Validator) FormatValidationErrors(errs []error) string {
	if len(errs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(errs))
	for _, err := range errs {
		parts = append(parts, err.Error())
	}
	return strings.Join(parts, "; ")
}
