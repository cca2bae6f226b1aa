package notifications

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"net/smtp"
	"text/template"

	"transroute/internal/shared/config"
)

// EmailService delivers a notification to its recipient.
type EmailService interface {
	SendNotification(ctx context.Context, notification *EmailNotification) error
}

type smtpEmailService struct {
	config    config.EmailConfig
	templates map[NotificationType]*template.Template
}

// NewSMTPEmailService builds the SMTP sender with the built-in
// message templates.
func NewSMTPEmailService(cfg config.EmailConfig) (EmailService, error) {
	if cfg.SMTPHost == "" {
		return nil, fmt.Errorf("SMTP host is required")
	}
	if cfg.SMTPPort <= 0 || cfg.SMTPPort > 65535 {
		return nil, fmt.Errorf("SMTP port must be between 1 and 65535")
	}
	if cfg.FromEmail == "" {
		return nil, fmt.Errorf("from email is required")
	}

	s := &smtpEmailService{
		config:    cfg,
		templates: make(map[NotificationType]*template.Template),
	}
	s.loadTemplates()
	return s, nil
}

func (s *smtpEmailService) SendNotification(ctx context.Context, notification *EmailNotification) error {
	body, err := s.renderBody(notification)
	if err != nil {
		return fmt.Errorf("failed to render notification body: %w", err)
	}

	message := s.buildMessage(notification.RecipientEmail, notification.Subject, body)

	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)
	var auth smtp.Auth
	if s.config.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)
	}

	if err := s.sendWithSTARTTLS(addr, auth, notification.RecipientEmail, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Printf("Email sent to %s (%s)", notification.RecipientEmail, notification.Type)
	return nil
}

func (s *smtpEmailService) renderBody(notification *EmailNotification) (string, error) {
	tmpl, ok := s.templates[notification.Type]
	if !ok {
		return "", fmt.Errorf("no template for notification type %s", notification.Type)
	}

	data := map[string]interface{}{
		"RecipientName": notification.RecipientName,
	}
	for k, v := range notification.Data {
		data[k] = v
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (s *smtpEmailService) buildMessage(to, subject, body string) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: Adelas Autotransportes <%s>\r\n", s.config.FromEmail)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(body)
	return buf.Bytes()
}

func (s *smtpEmailService) sendWithSTARTTLS(addr string, auth smtp.Auth, to string, message []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer client.Quit()

	tlsconfig := &tls.Config{ServerName: s.config.SMTPHost}
	if ok, _ := client.Extension("STARTTLS"); ok {
		if err = client.StartTLS(tlsconfig); err != nil {
			return fmt.Errorf("failed to start TLS: %w", err)
		}
	}

	if auth != nil {
		if err = client.Auth(auth); err != nil {
			return fmt.Errorf("failed to authenticate: %w", err)
		}
	}

	if err = client.Mail(s.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err = client.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err = w.Write(message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return w.Close()
}

func (s *smtpEmailService) loadTemplates() {
	s.templates[NotificationTicketIssued] = template.Must(template.New("ticket_issued").Parse(
		`Hola {{.RecipientName}},

Tu compra ha sido confirmada. Gracias por viajar con Adelas Autotransportes.

Folio: {{.Folio}}
Ruta: {{.Origin}} - {{.Destination}}
Salida: {{.DepartureTime}}
Servicio: {{.ServiceType}}
{{- if .TravelDate}}
Fecha de viaje: {{.TravelDate}}
{{- end}}

Pasajeros:
{{- range .Passengers}}
  {{.Name}} {{.LastName}} - Asiento {{printf "%02d" .SeatNumber}}
{{- end}}

Total pagado: ${{printf "%.2f" .Total}}

Presenta este folio al abordar. Buen viaje.
`))

	s.templates[NotificationPaymentDeclined] = template.Must(template.New("payment_declined").Parse(
		`Hola {{.RecipientName}},

Tu pago no pudo ser procesado: {{.Reason}}

Tu selección sigue activa por unos minutos; intenta de nuevo con otro método de pago.
`))

	s.templates[NotificationShipmentRegistered] = template.Must(template.New("shipment_registered").Parse(
		`Hola {{.RecipientName}},

Tu envío ha sido registrado con Adelas Autotransportes.

Número de guía: {{.TrackingNumber}}
Ruta: {{.Origin}} - {{.Destination}}
Peso: {{.WeightKg}} kg
Costo: ${{printf "%.2f" .Price}}
Entrega estimada: {{.EstimatedDelivery}}

Consulta el estado de tu envío con el número de guía.
`))
}
