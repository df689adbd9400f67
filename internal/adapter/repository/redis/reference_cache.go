package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/customscore/internal/domain"
	"github.com/iho/customscore/internal/usecase"
	"github.com/iho/customscore/internal/validation"
)

// notFoundMarker caches unknown tariff codes so repeated misses skip the database.
const notFoundMarker = "-"

// CachedReference decorates a validation.ReferenceLookup with a read-through
// cache. Cache failures fall through to the underlying lookup.
type CachedReference struct {
	next  validation.ReferenceLookup
	cache usecase.Cache
	ttl   time.Duration
}

// NewCachedReference wraps next.
func NewCachedReference(next validation.ReferenceLookup, cache usecase.Cache, ttl time.Duration) *CachedReference {
	return &CachedReference{next: next, cache: cache, ttl: ttl}
}

func (c *CachedReference) GetTariffCode(ctx context.Context, code string) (*domain.TariffCode, error) {
	key := "tariff:" + code

	if raw, ok := c.get(ctx, key); ok {
		if string(raw) == notFoundMarker {
			return nil, domain.ErrReferenceNotFound
		}
		var t domain.TariffCode
		if err := json.Unmarshal(raw, &t); err == nil {
			return &t, nil
		}
	}

	t, err := c.next.GetTariffCode(ctx, code)
	if errors.Is(err, domain.ErrReferenceNotFound) {
		c.set(ctx, key, []byte(notFoundMarker))
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	c.setJSON(ctx, key, t)

	return t, nil
}

func (c *CachedReference) ListTariffCodesByPrefix(ctx context.Context, prefix string, limit int) ([]domain.TariffCode, error) {
	key := fmt.Sprintf("tariff-prefix:%s:%d", prefix, limit)

	if raw, ok := c.get(ctx, key); ok {
		var codes []domain.TariffCode
		if err := json.Unmarshal(raw, &codes); err == nil {
			return codes, nil
		}
	}

	codes, err := c.next.ListTariffCodesByPrefix(ctx, prefix, limit)
	if err != nil {
		return nil, err
	}

	c.setJSON(ctx, key, codes)

	return codes, nil
}

func (c *CachedReference) ListProcedureCodes(ctx context.Context, visibility domain.Visibility) ([]domain.ProcedureCode, error) {
	key := fmt.Sprintf("procedures:%d", visibility)

	if raw, ok := c.get(ctx, key); ok {
		var codes []domain.ProcedureCode
		if err := json.Unmarshal(raw, &codes); err == nil {
			return codes, nil
		}
	}

	codes, err := c.next.ListProcedureCodes(ctx, visibility)
	if err != nil {
		return nil, err
	}

	c.setJSON(ctx, key, codes)

	return codes, nil
}

func (c *CachedReference) get(ctx context.Context, key string) ([]byte, bool) {
	raw, err := c.cache.Get(ctx, "ref:"+key)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("reference cache read failed")
		}
		return nil, false
	}
	return raw, true
}

func (c *CachedReference) setJSON(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	c.set(ctx, key, raw)
}

func (c *CachedReference) set(ctx context.Context, key string, raw []byte) {
	if err := c.cache.Set(ctx, "ref:"+key, raw, c.ttl); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("reference cache write failed")
	}
}
