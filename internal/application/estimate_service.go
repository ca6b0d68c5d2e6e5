package application

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/slider460/weshow_backend/internal/domain"
	"github.com/slider460/weshow_backend/internal/email"
)

// EstimateLineRequest es una línea del carrito enviada desde el sitio.
type EstimateLineRequest struct {
	EquipmentID string `json:"equipment_id"`
	Quantity    int    `json:"quantity"`
}

// EstimateRequest son los datos de contacto y el carrito de una cotización.
type EstimateRequest struct {
	Name      string                `json:"name"`
	Email     string                `json:"email"`
	Phone     string                `json:"phone"`
	Company   string                `json:"company"`
	Message   string                `json:"message"`
	StartDate time.Time             `json:"start_date"`
	EndDate   time.Time             `json:"end_date"`
	Lines     []EstimateLineRequest `json:"lines"`
}

// EstimateService construye y registra cotizaciones de alquiler.
type EstimateService struct {
	repo        domain.EstimateRepository
	equipment   *EquipmentService
	emailClient *email.Client
	notifyEmail string
	validator   *Validator
	dateParser  *DateParser
}

func NewEstimateService(
	repo domain.EstimateRepository,
	equipment *EquipmentService,
	emailClient *email.Client,
	notifyEmail string,
) *EstimateService {
	return &EstimateService{
		repo:        repo,
		equipment:   equipment,
		emailClient: emailClient,
		notifyEmail: notifyEmail,
		validator:   &Validator{},
		dateParser:  &DateParser{},
	}
}

// SubmitEstimate valida la solicitud, calcula los importes y escribe la
// cotización en el almacén en dos pasos: primero la fila padre y luego las
// líneas. No hay transacción entre ambos: si el segundo paso falla, la
// cotización queda registrada sin líneas y el error lo indica.
func (s *EstimateService) SubmitEstimate(req EstimateRequest) (*domain.Estimate, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	days := s.dateParser.RentalDays(req.StartDate, req.EndDate)

	// Resolver nombre y tarifa desde la copia local del catálogo. Si el
	// equipo no está en la copia, la referencia se envía igual y es el
	// almacén quien la rechaza.
	items := make([]domain.EstimateItem, 0, len(req.Lines))
	subtotal := 0.0
	for _, line := range req.Lines {
		item := domain.EstimateItem{
			EquipmentID: line.EquipmentID,
			Quantity:    line.Quantity,
			Days:        days,
		}
		if eq, ok := s.equipment.FindEquipment(line.EquipmentID); ok {
			item.EquipmentName = eq.Name
			item.DayRate = eq.DayRate
		}
		item.Amount = float64(item.Quantity) * item.DayRate * float64(days)
		subtotal += item.Amount
		items = append(items, item)
	}

	estimate := &domain.Estimate{
		Code:      newEstimateCode(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		Message:   req.Message,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Days:      days,
		Subtotal:  subtotal,
		Total:     subtotal,
		Status:    domain.EstimateStatusNew,
	}

	if err := s.repo.CreateEstimate(estimate); err != nil {
		return nil, err
	}

	for i := range items {
		items[i].EstimateID = estimate.ID
	}

	created, err := s.repo.CreateItems(items)
	if err != nil {
		// La fila padre ya existe y se queda sin líneas; no hay rollback.
		log.Printf("estimate %s: line items failed, parent row kept without items: %v", estimate.ID, err)
		return nil, fmt.Errorf("estimate %s was created but its line items failed: %w", estimate.Code, err)
	}
	estimate.Items = created

	s.sendConfirmation(estimate)

	return estimate, nil
}

// GetAllEstimates retorna todas las cotizaciones con sus líneas.
func (s *EstimateService) GetAllEstimates() ([]domain.Estimate, error) {
	return s.repo.GetAll()
}

// UpdateStatus cambia el estado de una cotización.
func (s *EstimateService) UpdateStatus(id, status string) (*domain.Estimate, error) {
	switch status {
	case domain.EstimateStatusNew, domain.EstimateStatusProcessed, domain.EstimateStatusClosed:
	default:
		return nil, fmt.Errorf("%w: invalid estimate status %q", ErrValidation, status)
	}
	return s.repo.UpdateStatus(id, status)
}

func (s *EstimateService) validateRequest(req EstimateRequest) error {
	var errs []error
	if err := s.validator.ValidateName(req.Name, "name"); err != nil {
		errs = append(errs, err)
	}
	if err := s.validator.ValidateEmail(req.Email); err != nil {
		errs = append(errs, err)
	}
	if err := s.validator.ValidatePhone(req.Phone); err != nil {
		errs = append(errs, err)
	}
	if err := s.validator.ValidateDateRange(req.StartDate, req.EndDate); err != nil {
		errs = append(errs, err)
	}
	if len(req.Lines) == 0 {
		errs = append(errs, fmt.Errorf("estimate needs at least one line"))
	}
	for _, line := range req.Lines {
		if line.Quantity <= 0 {
			errs = append(errs, fmt.Errorf("quantity for equipment %s must be positive", line.EquipmentID))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, s.validator.FormatValidationErrors(errs))
	}
	return nil
}

// sendConfirmation envía el correo de confirmación. Un fallo de correo no
// invalida la cotización ya registrada, solo se loguea.
func (s *EstimateService) sendConfirmation(estimate *domain.Estimate) {
	if s.emailClient == nil {
		return
	}

	info := email.EstimateInfo{
		Code:          estimate.Code,
		CustomerName:  estimate.Name,
		CustomerEmail: estimate.Email,
		StartDate:     estimate.StartDate,
		EndDate:       estimate.EndDate,
		Days:          estimate.Days,
		Subtotal:      estimate.Subtotal,
		Total:         estimate.Total,
	}
	for _, item := range estimate.Items {
		info.Items = append(info.Items, email.EstimateLineInfo{
			Name:     item.EquipmentName,
			Quantity: item.Quantity,
			DayRate:  item.DayRate,
			Amount:   item.Amount,
		})
	}

	if err := s.emailClient.SendEstimateConfirmation(info); err != nil {
		log.Printf("estimate %s: confirmation email failed: %v", estimate.Code, err)
	}
	if s.notifyEmail != "" {
		info.CustomerEmail = s.notifyEmail
		if err := s.emailClient.SendEstimateConfirmation(info); err != nil {
			log.Printf("estimate %s: team notification email failed: %v", estimate.Code, err)
		}
	}
}

// newEstimateCode genera el código público de la cotización.
func newEstimateCode() string {
	return "EST-" + strings.ToUpper(uuid.NewString()[:8])
}
