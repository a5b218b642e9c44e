// Package health provides a thread-safe health check registry for tracking
// the health of the entity store and other dependencies. The registry is used by the readiness
// endpoint to determine whether the service can accept traffic.
package health

import (
	"context"
	"sync"

	"github.com/jsamuelsen11/robot-service/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// maxConcurrentChecks bounds how many health checks run at once.
const maxConcurrentChecks = 4

// Registry is a thread-safe implementation of [ports.HealthRegistry].
// Components that implement [ports.HealthChecker] are registered at startup
// and checked on each readiness check.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New creates an empty health check registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a health checker to the registry. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll executes all registered health checks and returns results keyed by
// checker name. Nil values indicate healthy components. The slice is copied
// under a read lock so checks run without holding the lock.
//
// Checks run concurrently, at most maxConcurrentChecks at a time. When two
// checkers share a name the one registered last wins.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	errs := runChecks(ctx, checkers)

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}
	return results
}

// runChecks calls HealthCheck on every checker and returns the errors in
// input order. Every checker is called even when ctx is already done; each
// check is expected to honor ctx itself.
func runChecks(ctx context.Context, checkers []ports.HealthChecker) []error {
	errs := make([]error, len(checkers))
	sem := make(chan struct{}, maxConcurrentChecks)

	var wg sync.WaitGroup
	for i, c := range checkers {
		wg.Go(func() {
			sem <- struct{}{}
			defer func() { <-sem }()
			errs[i] = c.HealthCheck(ctx)
		})
	}
	wg.Wait()
	return errs
}
