package repository

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"techimpact/domain"
)

const createLeadsTable = `
CREATE TABLE IF NOT EXISTS trial_leads (
	id           UUID PRIMARY KEY,
	name         TEXT NOT NULL,
	email        TEXT NOT NULL,
	company      TEXT NOT NULL DEFAULT '',
	role         TEXT NOT NULL,
	company_size TEXT NOT NULL DEFAULT '',
	message      TEXT NOT NULL DEFAULT '',
	created_at   TIMESTAMPTZ NOT NULL
)`

// LeadRepositoryPostgres stores trial leads in a Postgres table.
type LeadRepositoryPostgres struct {
	db *sql.DB
}

// NewLeadRepositoryPostgres opens dsn and makes sure the leads table exists.
func NewLeadRepositoryPostgres(ctx context.Context, dsn string) (*LeadRepositoryPostgres, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "ping postgres")
	}
	if _, err := db.ExecContext(ctx, createLeadsTable); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create trial_leads")
	}
	return &LeadRepositoryPostgres{db: db}, nil
}

func (r *LeadRepositoryPostgres) Save(ctx context.Context, lead domain.Lead) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO trial_leads (id, name, email, company, role, company_size, message, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		lead.ID, lead.Name, lead.Email, lead.Company, lead.Role, lead.CompanySize, lead.Message, lead.CreatedAt,
	)
	return errors.Wrap(err, "insert lead")
}

func (r *LeadRepositoryPostgres) List(ctx context.Context) ([]domain.Lead, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, company, role, company_size, message, created_at
		 FROM trial_leads ORDER BY created_at`)
	if err != nil {
		return nil, errors.Wrap(err, "query leads")
	}
	defer rows.Close()

	var leads []domain.Lead
	for rows.Next() {
		var l domain.Lead
		if err := rows.Scan(&l.ID, &l.Name, &l.Email, &l.Company, &l.Role, &l.CompanySize, &l.Message, &l.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "scan lead")
		}
		leads = append(leads, l)
	}
	return leads, errors.Wrap(rows.Err(), "iterate leads")
}

func (r *LeadRepositoryPostgres) Close() error {
	return r.db.Close()
}
