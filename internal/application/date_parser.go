package application

import (
	"fmt"
	"strings"
	"time"
)

// DateParser maneja el parseo de fechas que llegan de los formularios del
// sitio en distintos formatos.
type DateParser struct{}

var dateFormats = []string{
	time.RFC3339,
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
	"2/1/2006",
}

// ParseDate intenta parsear una fecha en los formatos aceptados.
func (dp *DateParser) ParseDate(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}

	for _, format := range dateFormats {
		if t, err := time.Parse(format, input); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("could not parse date: %s", input)
}

// RentalDays calcula los días facturables de un alquiler. El día de inicio
// cuenta completo: un alquiler de un solo día son 1 días, no 0.
func (dp *DateParser) RentalDays(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return days
}
