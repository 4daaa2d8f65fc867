package browse

import (
	"sync"
	"time"

	"arcade-catalog/core/catalog"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DefaultTop is the number of entries per index in the stats report.
const DefaultTop = 10

// Service serves read-only views of the catalog.
type Service struct {
	cat    *catalog.Catalog
	ttl    time.Duration
	logger *zap.Logger

	mu     sync.RWMutex
	report *Report
	sf     singleflight.Group
}

// NewService creates a service. Stats reports are reused for ttl; zero
// disables caching.
func NewService(cat *catalog.Catalog, ttl time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{cat: cat, ttl: ttl, logger: logger}
}

func (s *Service) fresh(r *Report) bool {
	return r != nil && s.ttl > 0 && time.Since(r.Built) <= s.ttl
}

// Stats returns the cached report or builds a new one. Concurrent callers
// share a single build.
func (s *Service) Stats() (*Report, error) {
	s.mu.RLock()
	cached := s.report
	s.mu.RUnlock()
	if s.fresh(cached) {
		return cached, nil
	}

	result, err, _ := s.sf.Do("stats", func() (interface{}, error) {
		s.mu.RLock()
		cached := s.report
		s.mu.RUnlock()
		if s.fresh(cached) {
			return cached, nil
		}

		report, err := BuildReport(s.cat, DefaultTop)
		if err != nil {
			return nil, err
		}
		s.logger.Debug("Stats report built", zap.Int("machines", report.Stats.Machines))

		s.mu.Lock()
		s.report = report
		s.mu.Unlock()
		return report, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Report), nil
}

// Invalidate drops the cached report.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.report = nil
	s.mu.Unlock()
}

// Machine returns one machine by name.
func (s *Service) Machine(name string) (catalog.Machine, bool) {
	return s.cat.Machine(name)
}

// Top returns the k highest-count entries of the named index.
func (s *Service) Top(index string, k int) ([]catalog.Entry, error) {
	kind, err := catalog.ParseIndexKind(index)
	if err != nil {
		return nil, err
	}
	return s.cat.Top(kind, k)
}
