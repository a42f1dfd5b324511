package service

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"github.com/renewalhq/renewal-gateway/internal/models"
)

// SMTPSender abstracts the SMTP dialog so tests can substitute a fake
// transport for real network dials.
type SMTPSender interface {
	// Probe connects, authenticates and disconnects without sending.
	Probe(provider *models.EmailProvider, password string) error
	// Send delivers one message to the given recipients.
	Send(provider *models.EmailProvider, password string, to []string, msg []byte) error
}

type smtpSender struct {
	timeout time.Duration
}

func NewSMTPSender(timeout time.Duration) SMTPSender {
	return &smtpSender{
		timeout: timeout,
	}
}

// connect dials the provider, negotiating implicit TLS or STARTTLS per its
// configuration, and authenticates when credentials are set.
func (s *smtpSender) connect(provider *models.EmailProvider, password string) (*smtp.Client, error) {
	var client *smtp.Client

	if provider.UseSSL {
		conn, err := tls.DialWithDialer(
			&net.Dialer{Timeout: s.timeout},
			"tcp",
			provider.Addr(),
			&tls.Config{ServerName: provider.Host},
		)
		if err != nil {
			return nil, fmt.Errorf("failed to dial %s: %w", provider.Addr(), err)
		}
		client, err = smtp.NewClient(conn, provider.Host)
		if err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("failed to open smtp session: %w", err)
		}
	} else {
		conn, err := net.DialTimeout("tcp", provider.Addr(), s.timeout)
		if err != nil {
			return nil, fmt.Errorf("failed to dial %s: %w", provider.Addr(), err)
		}
		client, err = smtp.NewClient(conn, provider.Host)
		if err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("failed to open smtp session: %w", err)
		}
		if provider.UseTLS {
			if err := client.StartTLS(&tls.Config{ServerName: provider.Host}); err != nil {
				_ = client.Close()
				return nil, fmt.Errorf("failed to start tls: %w", err)
			}
		}
	}

	if provider.Username != "" && password != "" {
		auth := smtp.PlainAuth("", provider.Username, password, provider.Host)
		if err := client.Auth(auth); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to authenticate: %w", err)
		}
	}

	return client, nil
}

func (s *smtpSender) Probe(provider *models.EmailProvider, password string) error {
	client, err := s.connect(provider, password)
	if err != nil {
		return err
	}
	return client.Quit()
}

func (s *smtpSender) Send(provider *models.EmailProvider, password string, to []string, msg []byte) error {
	client, err := s.connect(provider, password)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	if err := client.Mail(provider.FromEmail); err != nil {
		return fmt.Errorf("mail command failed: %w", err)
	}
	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			return fmt.Errorf("rcpt command failed for %s: %w", addr, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("data command failed: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("failed to write message body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish message body: %w", err)
	}

	return client.Quit()
}
