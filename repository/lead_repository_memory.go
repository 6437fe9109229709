package repository

import (
	"context"
	"sync"

	"techimpact/domain"
)

// LeadRepositoryMemory is an in-memory implementation of LeadRepository.
type LeadRepositoryMemory struct {
	mu   sync.Mutex
	data []domain.Lead
}

// NewLeadRepositoryMemory creates a new in-memory lead repository.
func NewLeadRepositoryMemory() *LeadRepositoryMemory {
	return &LeadRepositoryMemory{
		data: []domain.Lead{},
	}
}

// Save stores the lead in memory.
func (r *LeadRepositoryMemory) Save(_ context.Context, lead domain.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, lead)
	return nil
}

// List returns a copy of the stored leads in insertion order.
func (r *LeadRepositoryMemory) List(_ context.Context) ([]domain.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Lead, len(r.data))
	copy(out, r.data)
	return out, nil
}
