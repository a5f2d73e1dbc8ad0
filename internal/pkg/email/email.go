package email

import (
	"fmt"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Service defines the interface for outbound email.
type Service interface {
	SendReminderEmail(toEmail, toName string, moduleTitles []string) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
}

type smtpService struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewService creates an SMTP-backed email service.
func NewService(config SMTPConfig, logger zerolog.Logger) Service {
	return &smtpService{
		config: config,
		logger: logger,
	}
}

// SendReminderEmail sends an overdue-training reminder. When SMTP
// credentials are not configured, the reminder is logged instead and no
// error is returned.
func (s *smtpService) SendReminderEmail(toEmail, toName string, moduleTitles []string) error {
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Strs("modules", moduleTitles).
			Msg("SMTP credentials not configured - reminder email not sent")
		return nil
	}

	subject := "Ethics Training Reminder"
	var body strings.Builder
	fmt.Fprintf(&body, "Hello %s,\r\n\r\n", toName)
	body.WriteString("The following required ethics-training modules are not yet completed:\r\n\r\n")
	for _, title := range moduleTitles {
		fmt.Fprintf(&body, "  - %s\r\n", title)
	}
	body.WriteString("\r\nPlease log in to the training portal to complete them.\r\n")

	msg := fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.config.FromName, s.config.FromEmail, toEmail, subject, body.String())

	addr := s.config.Host + ":" + strconv.Itoa(s.config.Port)
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)

	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{toEmail}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send reminder email: %w", err)
	}

	s.logger.Info().Str("toEmail", toEmail).Msg("Reminder email sent")
	return nil
}
