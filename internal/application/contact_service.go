package application

import (
	"fmt"
	"log"

	"github.com/slider460/weshow_backend/internal/domain"
	"github.com/slider460/weshow_backend/internal/email"
)

// ContactService registra los mensajes del formulario de contacto y avisa
// al equipo por correo.
type ContactService struct {
	repo        domain.ContactRepository
	emailClient *email.Client
	notifyEmail string
	validator   *Validator
}

func NewContactService(repo domain.ContactRepository, emailClient *email.Client, notifyEmail string) *ContactService {
	return &ContactService{
		repo:        repo,
		emailClient: emailClient,
		notifyEmail: notifyEmail,
		validator:   &Validator{},
	}
}

// Create valida y registra un mensaje de contacto.
func (s *ContactService) Create(name, emailAddr, phone, message string) (*domain.ContactMessage, error) {
	var errs []error
	if err := s.validator.ValidateName(name, "name"); err != nil {
		errs = append(errs, err)
	}
	if err := s.validator.ValidateEmail(emailAddr); err != nil {
		errs = append(errs, err)
	}
	if err := s.validator.ValidatePhone(phone); err != nil {
		errs = append(errs, err)
	}
	if message == "" {
		errs = append(errs, fmt.Errorf("message is required"))
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, s.validator.FormatValidationErrors(errs))
	}

	msg := &domain.ContactMessage{
		Name:    name,
		Email:   emailAddr,
		Phone:   phone,
		Message: message,
		Status:  domain.ContactStatusNew,
	}
	if err := s.repo.Create(msg); err != nil {
		return nil, err
	}

	// El aviso por correo es best-effort, el mensaje ya quedó registrado.
	if s.emailClient != nil && s.notifyEmail != "" {
		info := email.ContactInfo{
			Name:    msg.Name,
			Email:   msg.Email,
			Phone:   msg.Phone,
			Message: msg.Message,
		}
		if err := s.emailClient.SendContactNotification(s.notifyEmail, info); err != nil {
			log.Printf("contact %s: notification email failed: %v", msg.ID, err)
		}
	}

	return msg, nil
}

// List retorna todos los mensajes, más recientes primero.
func (s *ContactService) List() ([]domain.ContactMessage, error) {
	return s.repo.GetAll()
}

// UpdateStatus cambia el estado de un mensaje.
func (s *ContactService) UpdateStatus(id, status string) error {
	switch status {
	case domain.ContactStatusNew, domain.ContactStatusAnswered:
	default:
		return fmt.Errorf("%w: invalid contact status %q", ErrValidation, status)
	}
	return s.repo.UpdateStatus(id, status)
}
