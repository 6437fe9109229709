package repository

import (
	"context"

	"techimpact/domain"
)

type LeadRepository interface {
	Save(ctx context.Context, lead domain.Lead) error
	List(ctx context.Context) ([]domain.Lead, error)
}
