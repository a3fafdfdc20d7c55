package charts

import (
	"fmt"
	"sync"

	"github.com/bobmcallan/folio/internal/common"
)

// Chart keys used by the analysis pipeline.
const (
	KeyPerformance         = "performance"
	KeyDrawdown            = "drawdown"
	KeyAllocation          = "allocation"
	KeyRiskReturn          = "risk-return"
	KeyReturnsDistribution = "returns-distribution"
	KeyCorrelation         = "correlation"
)

// RenderFunc produces the PNG bytes for one chart.
type RenderFunc func() ([]byte, error)

// Registry tracks the live chart image per key. Replacing a key always
// destroys the prior image before rendering the new one, so stale
// renderings never outlive a period change.
type Registry struct {
	cache  *ImageCache
	logger *common.Logger

	mu    sync.Mutex
	paths map[string]string
}

// NewRegistry creates a chart registry backed by an image cache.
func NewRegistry(cache *ImageCache, logger *common.Logger) *Registry {
	return &Registry{
		cache:  cache,
		logger: logger,
		paths:  make(map[string]string),
	}
}

// Replace destroys any chart registered under key, renders the new one
// and registers its image path.
func (r *Registry) Replace(key string, render RenderFunc) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.destroyLocked(key)

	data, err := render()
	if err != nil {
		return "", fmt.Errorf("render %s chart: %w", key, err)
	}

	path, err := r.cache.Put(key, data)
	if err != nil {
		return "", err
	}
	r.paths[key] = path
	return path, nil
}

// Destroy removes the chart registered under key. Unknown keys are a
// no-op.
func (r *Registry) Destroy(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.destroyLocked(key)
}

func (r *Registry) destroyLocked(key string) {
	if _, ok := r.paths[key]; !ok {
		return
	}
	r.cache.Remove(key)
	delete(r.paths, key)
}

// Path returns the image path for key, if a chart is registered.
func (r *Registry) Path(key string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	path, ok := r.paths[key]
	return path, ok
}

// Paths returns a copy of all registered chart paths.
func (r *Registry) Paths() map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]string, len(r.paths))
	for k, v := range r.paths {
		out[k] = v
	}
	return out
}
