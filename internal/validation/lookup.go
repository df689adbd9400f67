package validation

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/iho/customscore/internal/domain"
)

// ReferenceLookup is the read-only reference data the rules consult.
type ReferenceLookup interface {
	// GetTariffCode returns domain.ErrReferenceNotFound when the code is unknown.
	GetTariffCode(ctx context.Context, code string) (*domain.TariffCode, error)
	// ListTariffCodesByPrefix returns active codes starting with prefix, ordered by code.
	ListTariffCodesByPrefix(ctx context.Context, prefix string, limit int) ([]domain.TariffCode, error)
	// ListProcedureCodes returns procedure codes, ordered by code.
	ListProcedureCodes(ctx context.Context, visibility domain.Visibility) ([]domain.ProcedureCode, error)
}

// MemoryReference is an in-memory ReferenceLookup, used for offline
// validation and tests.
type MemoryReference struct {
	mu         sync.RWMutex
	tariffs    map[string]domain.TariffCode
	procedures map[string]domain.ProcedureCode
}

// NewMemoryReference builds a lookup over the given rows.
func NewMemoryReference(tariffs []domain.TariffCode, procedures []domain.ProcedureCode) *MemoryReference {
	m := &MemoryReference{
		tariffs:    make(map[string]domain.TariffCode, len(tariffs)),
		procedures: make(map[string]domain.ProcedureCode, len(procedures)),
	}
	for _, t := range tariffs {
		m.tariffs[t.Code] = t
	}
	for _, p := range procedures {
		m.procedures[p.Code] = p
	}
	return m
}

func (m *MemoryReference) GetTariffCode(_ context.Context, code string) (*domain.TariffCode, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.tariffs[code]
	if !ok {
		return nil, domain.ErrReferenceNotFound
	}
	return &t, nil
}

func (m *MemoryReference) ListTariffCodesByPrefix(_ context.Context, prefix string, limit int) ([]domain.TariffCode, error) {
	m.mu.RLock()
	var out []domain.TariffCode
	for code, t := range m.tariffs {
		if t.Active && strings.HasPrefix(code, prefix) {
			out = append(out, t)
		}
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryReference) ListProcedureCodes(_ context.Context, visibility domain.Visibility) ([]domain.ProcedureCode, error) {
	m.mu.RLock()
	var out []domain.ProcedureCode
	for _, p := range m.procedures {
		if visibility == domain.ActiveOnly && !p.Active {
			continue
		}
		out = append(out, p)
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}
