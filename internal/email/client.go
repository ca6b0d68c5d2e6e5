package email

import (
	"crypto/tls"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/wneessen/go-mail"
)

// Client representa el cliente de correo electrónico
type Client struct {
	host      string
	port      int
	user      string
	password  string
	fromName  string
	fromEmail string
}

// NewClient crea una nueva instancia del cliente de email
func NewClient(host, portStr, user, password, fromName, fromEmail string) (*Client, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("puerto SMTP inválido: %w", err)
	}

	return &Client{
		host:      host,
		port:      port,
		user:      user,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}, nil
}

// SendEmail envía un correo electrónico
func (c *Client) SendEmail(to, subject, htmlBody string) error {
	m := mail.NewMsg()

	if err := m.From(fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)); err != nil {
		return fmt.Errorf("error al configurar remitente: %w", err)
	}
	if err := m.To(to); err != nil {
		return fmt.Errorf("error al configurar destinatario: %w", err)
	}

	m.Subject(subject)
	m.SetBodyString(mail.TypeTextHTML, htmlBody)

	log.Printf("SMTP: connecting to %s:%d as user=%s", c.host, c.port, c.user)

	client, err := mail.NewClient(c.host,
		mail.WithPort(c.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.user),
		mail.WithPassword(c.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTLSConfig(&tls.Config{
			ServerName: c.host,
		}),
	)
	if err != nil {
		return fmt.Errorf("error al crear cliente SMTP (host=%s port=%d user=%s): %w", c.host, c.port, c.user, err)
	}

	if err := client.DialAndSend(m); err != nil {
		// Añadir contexto útil al error sin exponer credenciales
		return fmt.Errorf("error al enviar correo (host=%s port=%d user=%s): %w", c.host, c.port, c.user, err)
	}

	return nil
}

// EstimateInfo contiene la información de la cotización para el email
type EstimateInfo struct {
	Code          string
	CustomerName  string
	CustomerEmail string
	StartDate     time.Time
	EndDate       time.Time
	Days          int
	Subtotal      float64
	Total         float64
	Items         []EstimateLineInfo
}

// EstimateLineInfo contiene la información de una línea de la cotización
type EstimateLineInfo struct {
	Name     string
	Quantity int
	DayRate  float64
	Amount   float64
}

// SendEstimateConfirmation envía el correo de confirmación de una cotización
func (c *Client) SendEstimateConfirmation(info EstimateInfo) error {
	subject := fmt.Sprintf("Rental estimate %s - %s", info.Code, c.fromName)
	htmlBody := buildEstimateHTML(info)

	return c.SendEmail(info.CustomerEmail, subject, htmlBody)
}

// ContactInfo contiene la información de un mensaje de contacto para el email
type ContactInfo struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// SendContactNotification notifica al equipo de un nuevo mensaje de contacto
func (c *Client) SendContactNotification(to string, info ContactInfo) error {
	subject := fmt.Sprintf("New contact message from %s", info.Name)
	htmlBody := buildContactHTML(info)

	return c.SendEmail(to, subject, htmlBody)
}

// buildEstimateHTML genera el HTML del correo de confirmación de cotización
func buildEstimateHTML(info EstimateInfo) string {
	var rows strings.Builder
	for _, item := range info.Items {
		rows.WriteString(fmt.Sprintf(`
			<tr>
				<td style="padding: 12px; border-bottom: 1px solid #e0e0e0;">%s</td>
				<td style="padding: 12px; border-bottom: 1px solid #e0e0e0; text-align: center;">%d</td>
				<td style="padding: 12px; border-bottom: 1px solid #e0e0e0; text-align: right;">$%.2f/day</td>
				<td style="padding: 12px; border-bottom: 1px solid #e0e0e0; text-align: right;">$%.2f</td>
			</tr>
		`,
			item.Name,
			item.Quantity,
			item.DayRate,
			item.Amount,
		))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<title>Rental Estimate</title>
</head>
<body style="margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #f4f4f4;">
	<table width="100%%" cellpadding="0" cellspacing="0" style="background-color: #f4f4f4; padding: 20px;">
		<tr>
			<td align="center">
				<table width="600" cellpadding="0" cellspacing="0" style="background-color: #ffffff; border-radius: 8px; overflow: hidden;">
					<tr>
						<td style="background: linear-gradient(135deg, #1f2a44 0%%, #3b4a6b 100%%); padding: 32px 20px; text-align: center;">
							<h1 style="color: #ffffff; margin: 0; font-size: 26px;">Your Rental Estimate</h1>
							<p style="color: #ffffff; margin: 8px 0 0 0; font-size: 15px;">Estimate %s</p>
						</td>
					</tr>
					<tr>
						<td style="padding: 32px 28px;">
							<p style="color: #333;">Hello %s,</p>
							<p style="color: #333;">Thank you for your request. Here is the estimate for a rental
							of %d day(s), from %s to %s:</p>
							<table width="100%%" cellpadding="0" cellspacing="0" style="border: 1px solid #e0e0e0; border-radius: 8px; overflow: hidden;">
								<thead>
									<tr style="background-color: #1f2a44; color: #ffffff;">
										<th style="padding: 12px; text-align: left;">Equipment</th>
										<th style="padding: 12px; text-align: center;">Qty</th>
										<th style="padding: 12px; text-align: right;">Rate</th>
										<th style="padding: 12px; text-align: right;">Amount</th>
									</tr>
								</thead>
								<tbody>
									%s
								</tbody>
							</table>
							<div style="margin-top: 24px; padding: 16px; background-color: #f8f9fa; border-radius: 8px; text-align: right;">
								<strong style="font-size: 20px; color: #1f2a44;">Total: $%.2f</strong>
							</div>
							<p style="color: #666; font-size: 13px; margin-top: 24px;">
								This estimate is not a final invoice. Our team will contact you to confirm
								availability and delivery details.
							</p>
						</td>
					</tr>
				</table>
			</td>
		</tr>
	</table>
</body>
</html>
	`,
		info.Code,
		info.CustomerName,
		info.Days,
		info.StartDate.Format("02/01/2006"),
		info.EndDate.Format("02/01/2006"),
		rows.String(),
		info.Total,
	)
}

// buildContactHTML genera el HTML de la notificación de contacto
func buildContactHTML(info ContactInfo) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<body style="margin: 0; padding: 20px; font-family: Arial, sans-serif;">
	<h2 style="color: #1f2a44;">New contact message</h2>
	<table cellpadding="6" cellspacing="0">
		<tr><td><strong>Name:</strong></td><td>%s</td></tr>
		<tr><td><strong>Email:</strong></td><td>%s</td></tr>
		<tr><td><strong>Phone:</strong></td><td>%s</td></tr>
	</table>
	<p style="background-color: #f8f9fa; padding: 16px; border-left: 4px solid #1f2a44;">%s</p>
</body>
</html>
	`,
		info.Name,
		info.Email,
		info.Phone,
		info.Message,
	)
}
