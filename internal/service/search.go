package service

import (
	"context"
	"sync"

	"github.com/guttosm/switchbox-service/internal/domain/model"
)

// Searcher serializes catalog searches so that only the latest query's
// results are ever applied. Issuing a new search cancels the previous
// in-flight one and invalidates its handle; a superseded search's results
// are discarded at resolution time instead of being surfaced.
type Searcher struct {
	catalog Catalog

	mu         sync.Mutex
	generation uint64
	cancelPrev context.CancelFunc
}

// NewSearcher creates a Searcher over the given catalog.
func NewSearcher(catalog Catalog) *Searcher {
	return &Searcher{catalog: catalog}
}

// Search runs a catalog search tied to a fresh generation. The boolean
// result reports whether the results are still current: false means a newer
// search was issued while this one was in flight and the results must be
// dropped. Lookup errors degrade to an empty, current result set.
func (s *Searcher) Search(ctx context.Context, query, colorFilter string) ([]model.Product, bool) {
	ctx, gen := s.begin(ctx)

	results, err := s.catalog.Search(ctx, query, colorFilter)
	if err != nil {
		results = []model.Product{}
	}

	if !s.isCurrent(gen) {
		return nil, false
	}
	return results, true
}

// begin registers a new search generation, cancelling the previous one.
func (s *Searcher) begin(parent context.Context) (context.Context, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancelPrev != nil {
		s.cancelPrev()
	}

	ctx, cancel := context.WithCancel(parent)
	s.cancelPrev = cancel
	s.generation++
	return ctx, s.generation
}

// isCurrent reports whether gen is still the latest issued generation.
func (s *Searcher) isCurrent(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation == gen
}
