package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techimpact/domain"
	"techimpact/repository"
)

type recordingNotifier struct {
	leads []domain.Lead
	err   error
}

func (n *recordingNotifier) NotifyLead(_ context.Context, lead domain.Lead) error {
	n.leads = append(n.leads, lead)
	return n.err
}

type failingLeadRepository struct{}

func (failingLeadRepository) Save(context.Context, domain.Lead) error {
	return errors.New("db down")
}

func (failingLeadRepository) List(context.Context) ([]domain.Lead, error) { return nil, nil }

func TestLeadService_Submit(t *testing.T) {
	repo := repository.NewLeadRepositoryMemory()
	notifier := &recordingNotifier{}
	svc := NewLeadService(repo, notifier, zerolog.Nop())
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC) }

	lead, err := svc.Submit(context.Background(), domain.LeadInput{
		Name:  "  Dana Ops ",
		Email: "dana@example.com",
		Role:  "cto",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, "Dana Ops", lead.Name)
	assert.Equal(t, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), lead.CreatedAt)

	stored, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, lead.ID, stored[0].ID)
	require.Len(t, notifier.leads, 1)
}

func TestLeadService_NotifierFailureIsNotFatal(t *testing.T) {
	notifier := &recordingNotifier{err: errors.New("smtp down")}
	svc := NewLeadService(repository.NewLeadRepositoryMemory(), notifier, zerolog.Nop())

	_, err := svc.Submit(context.Background(), domain.LeadInput{Name: "A", Email: "a@b.io", Role: "sre"})
	assert.NoError(t, err)
}

func TestLeadService_SaveFailure(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := NewLeadService(failingLeadRepository{}, notifier, zerolog.Nop())

	_, err := svc.Submit(context.Background(), domain.LeadInput{Name: "A", Email: "a@b.io", Role: "sre"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save lead")
	assert.Empty(t, notifier.leads)
}

func TestLeadService_Validation(t *testing.T) {
	svc := NewLeadService(repository.NewLeadRepositoryMemory(), nil, zerolog.Nop())

	_, err := svc.Submit(context.Background(), domain.LeadInput{Name: "   "})
	var verr *LeadValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []FieldError{
		{Field: "name", Message: "This field is required."},
		{Field: "email", Message: "This field is required."},
		{Field: "role", Message: "This field is required."},
	}, verr.Fields)

	_, err = svc.Submit(context.Background(), domain.LeadInput{Name: "A", Email: "not-an-email", Role: "cto"})
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []FieldError{{Field: "email", Message: "Please enter a valid email address."}}, verr.Fields)
	assert.True(t, strings.HasPrefix(err.Error(), "invalid trial request"))
}

func TestSendGridNotifier_DisabledWithoutKey(t *testing.T) {
	n := NewSendGridNotifier("", "from@example.com", "sales@example.com", zerolog.Nop())
	assert.False(t, n.Enabled())
	assert.NoError(t, n.NotifyLead(context.Background(), domain.Lead{ID: "1"}))
}

func TestLeadEmailBody(t *testing.T) {
	body := leadEmailBody(domain.Lead{
		ID:        "abc",
		Name:      "Dana",
		Email:     "dana@example.com",
		Role:      "cto",
		Company:   "Acme",
		CreatedAt: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	})
	assert.Contains(t, body, "Company: Acme")
	assert.NotContains(t, body, "Company size")
	assert.Contains(t, body, "Received 2024-05-01 09:00 UTC (lead abc)")
}
