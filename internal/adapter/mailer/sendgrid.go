// Package mailer sends transactional e-mail through SendGrid.
package mailer

import (
	"context"
	"fmt"
	"html"

	"github.com/nikolayk812/santos-store/internal/config"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

const sendEndpoint = "/v3/mail/send"

type SendGrid struct {
	apiKey string
	host   string
	from   *mail.Email
	logger *zap.Logger
}

// NewSendGrid returns nil when no API key is configured, callers treat a nil mailer as disabled.
func NewSendGrid(cfg config.SendGridConfig, logger *zap.Logger) (*SendGrid, error) {
	if cfg.APIKey == "" {
		return nil, nil
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("sendgrid from address is empty")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &SendGrid{
		apiKey: cfg.APIKey,
		host:   cfg.Host,
		from:   mail.NewEmail(cfg.FromName, cfg.From),
		logger: logger,
	}, nil
}

// SendMail sends body as plain text, with a preformatted HTML alternative.
func (s *SendGrid) SendMail(ctx context.Context, to, subject, body string) error {
	if to == "" {
		return fmt.Errorf("to address is empty")
	}

	message := mail.NewSingleEmail(
		s.from,
		subject,
		mail.NewEmail("", to),
		body,
		fmt.Sprintf("<pre>%s</pre>", html.EscapeString(body)),
	)

	request := sendgrid.GetRequest(s.apiKey, sendEndpoint, s.host)
	request.Method = "POST"
	request.Body = mail.GetRequestBody(message)

	response, err := sendgrid.MakeRequestWithContext(ctx, request)
	if err != nil {
		return fmt.Errorf("sendgrid.MakeRequestWithContext: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid status=%d body=%s", response.StatusCode, response.Body)
	}

	s.logger.Debug("mail sent", zap.Int("status", response.StatusCode), zap.String("subject", subject))
	return nil
}
