package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"techimpact/domain"
	"techimpact/repository"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldError is one rejected form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// LeadValidationError lists every rejected field of a trial request.
type LeadValidationError struct {
	Fields []FieldError
}

func (e *LeadValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "invalid trial request: " + strings.Join(msgs, "; ")
}

type LeadService struct {
	repo     repository.LeadRepository
	notifier Notifier
	log      zerolog.Logger
	now      func() time.Time
}

func NewLeadService(repo repository.LeadRepository, notifier Notifier, log zerolog.Logger) *LeadService {
	return &LeadService{
		repo:     repo,
		notifier: notifier,
		log:      log.With().Str("component", "leads").Logger(),
		now:      time.Now,
	}
}

// Submit validates and stores a trial request, then notifies sales.
// A failed notification is logged and does not fail the submission.
func (s *LeadService) Submit(ctx context.Context, input domain.LeadInput) (domain.Lead, error) {
	input = trimLead(input)
	if fields := ValidateLead(input); len(fields) > 0 {
		return domain.Lead{}, &LeadValidationError{Fields: fields}
	}

	lead := domain.Lead{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Email:       input.Email,
		Company:     input.Company,
		Role:        input.Role,
		CompanySize: input.CompanySize,
		Message:     input.Message,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.repo.Save(ctx, lead); err != nil {
		return domain.Lead{}, errors.Wrap(err, "save lead")
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyLead(ctx, lead); err != nil {
			s.log.Warn().Err(err).Str("lead_id", lead.ID).Msg("failed to send lead notification")
		}
	}

	s.log.Info().Str("lead_id", lead.ID).Str("role", lead.Role).Msg("trial request received")
	return lead, nil
}

// ValidateLead checks required fields and e-mail shape.
func ValidateLead(input domain.LeadInput) []FieldError {
	var fields []FieldError
	required := []struct {
		name  string
		value string
	}{
		{"name", input.Name},
		{"email", input.Email},
		{"role", input.Role},
	}
	for _, f := range required {
		if f.value == "" {
			fields = append(fields, FieldError{Field: f.name, Message: "This field is required."})
		}
	}
	if input.Email != "" && !emailPattern.MatchString(input.Email) {
		fields = append(fields, FieldError{Field: "email", Message: "Please enter a valid email address."})
	}
	return fields
}

func trimLead(in domain.LeadInput) domain.LeadInput {
	return domain.LeadInput{
		Name:        strings.TrimSpace(in.Name),
		Email:       strings.TrimSpace(in.Email),
		Company:     strings.TrimSpace(in.Company),
		Role:        strings.TrimSpace(in.Role),
		CompanySize: strings.TrimSpace(in.CompanySize),
		Message:     strings.TrimSpace(in.Message),
	}
}
