package repository

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/employee-directory/internal/domain"
)

const employeeCachePrefix = "directory:employees:"

// Cache is the byte-level key/value store backing read-through caches.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type cachedEmployeeRepository struct {
	next   EmployeeRepository
	cache  Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedEmployeeRepository wraps next with a read-through cache. Cache
// failures are logged and the listing is served from next.
func NewCachedEmployeeRepository(next EmployeeRepository, cache Cache, ttl time.Duration, logger *zap.Logger) EmployeeRepository {
	if cache == nil || ttl <= 0 {
		return next
	}
	return &cachedEmployeeRepository{next: next, cache: cache, ttl: ttl, logger: logger}
}

func (r *cachedEmployeeRepository) List(ctx context.Context, filter EmployeeFilter) ([]domain.Employee, error) {
	key := employeeCachePrefix + strings.ToLower(strings.TrimSpace(filter.Search))

	if raw, found, err := r.cache.Get(ctx, key); err != nil {
		r.logger.Warn("employee cache read failed", zap.Error(err))
	} else if found {
		var cached []domain.Employee
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		r.logger.Warn("employee cache entry unreadable", zap.String("key", key))
	}

	employees, err := r.next.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(employees); err == nil {
		if err := r.cache.Set(ctx, key, raw, r.ttl); err != nil {
			r.logger.Warn("employee cache write failed", zap.Error(err))
		}
	}
	return employees, nil
}
