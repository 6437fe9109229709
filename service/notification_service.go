package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"techimpact/domain"
)

// Notifier tells the sales inbox about new trial requests.
type Notifier interface {
	NotifyLead(ctx context.Context, lead domain.Lead) error
}

// SendGridNotifier sends lead e-mails through SendGrid. Without an API
// key it only logs the lead.
type SendGridNotifier struct {
	from    string
	to      string
	enabled bool
	client  *sendgrid.Client
	log     zerolog.Logger
}

func NewSendGridNotifier(apiKey, from, to string, log zerolog.Logger) *SendGridNotifier {
	enabled := apiKey != "" && from != "" && to != ""
	s := &SendGridNotifier{
		from:    from,
		to:      to,
		enabled: enabled,
		log:     log.With().Str("component", "notify").Logger(),
	}
	if enabled {
		s.client = sendgrid.NewSendClient(apiKey)
	}
	return s
}

func (s *SendGridNotifier) Enabled() bool { return s.enabled }

func (s *SendGridNotifier) NotifyLead(ctx context.Context, lead domain.Lead) error {
	if !s.enabled {
		s.log.Info().
			Str("lead_id", lead.ID).
			Str("email", lead.Email).
			Msg("lead notification skipped, sendgrid not configured")
		return nil
	}

	subject := fmt.Sprintf("New trial request: %s (%s)", lead.Name, lead.Role)
	body := leadEmailBody(lead)
	message := mail.NewSingleEmail(
		mail.NewEmail("TechImpact.online", s.from),
		subject,
		mail.NewEmail("Sales", s.to),
		body,
		"<pre>"+html.EscapeString(body)+"</pre>",
	)

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return errors.Wrap(err, "send lead notification")
	}
	if resp.StatusCode >= 300 {
		return errors.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

func leadEmailBody(lead domain.Lead) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", lead.Name)
	fmt.Fprintf(&b, "Email: %s\n", lead.Email)
	fmt.Fprintf(&b, "Role: %s\n", lead.Role)
	if lead.Company != "" {
		fmt.Fprintf(&b, "Company: %s\n", lead.Company)
	}
	if lead.CompanySize != "" {
		fmt.Fprintf(&b, "Company size: %s\n", lead.CompanySize)
	}
	if lead.Message != "" {
		fmt.Fprintf(&b, "\n%s\n", lead.Message)
	}
	fmt.Fprintf(&b, "\nReceived %s (lead %s)", lead.CreatedAt.UTC().Format("2006-01-02 15:04 MST"), lead.ID)
	return b.String()
}
