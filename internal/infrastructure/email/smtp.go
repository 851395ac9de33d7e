package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

// SMTPNotifier sends plain-text notification mail. Every call site treats a
// send failure as non-fatal; ticket operations never roll back on mail errors.
type SMTPNotifier struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPNotifier(config SMTPConfig) *SMTPNotifier {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPNotifier{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPNotifier) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

// SendTicketReceived notifies the creator that a new ticket was filed.
func (s *SMTPNotifier) SendTicketReceived(to, name string, ticketID uint) error {
	return s.Send(to, "Ticket received", ticketReceivedBody(name, ticketID))
}

// SendTicketResolved notifies the creator that their ticket was resolved.
func (s *SMTPNotifier) SendTicketResolved(to, name string, ticketID uint) error {
	return s.Send(to, "Ticket resolved", ticketResolvedBody(name, ticketID))
}

func ticketReceivedBody(name string, ticketID uint) string {
	return fmt.Sprintf("Hello %s, your ticket #%d was created and is OPEN.", name, ticketID)
}

func ticketResolvedBody(name string, ticketID uint) string {
	return fmt.Sprintf("Hello %s, your ticket #%d has been RESOLVED.", name, ticketID)
}
