package ui

import "sync"

// Overlay identifiers used by the portfolio views.
const (
	ModalAddAsset       = "add-asset"
	ModalAddTransaction = "add-transaction"
	ModalCSVUpload      = "csv-upload"
)

// ModalController tracks which overlays are open. The UI keeps at most
// one open by convention, but that is not enforced here. Unknown
// identifiers are a no-op on every operation.
type ModalController struct {
	mu      sync.Mutex
	known   map[string]bool
	open    map[string]string // id -> bound context (symbol, portfolio)
}

// NewModalController creates a controller aware of the given overlay
// identifiers.
func NewModalController(ids ...string) *ModalController {
	known := make(map[string]bool, len(ids))
	for _, id := range ids {
		known[id] = true
	}
	return &ModalController{
		known: known,
		open:  make(map[string]string),
	}
}

// Open marks an overlay open with a bound form context, such as the
// symbol a transaction form applies to.
func (m *ModalController) Open(id, boundContext string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.known[id] {
		return
	}
	m.open[id] = boundContext
}

// Close marks an overlay closed.
func (m *ModalController) Close(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.open, id)
}

// CloseAll closes every open overlay.
func (m *ModalController) CloseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = make(map[string]string)
}

// IsOpen reports whether an overlay is open.
func (m *ModalController) IsOpen(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.open[id]
	return ok
}

// Context returns the bound form context of an open overlay.
func (m *ModalController) Context(id string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ctx, ok := m.open[id]
	return ctx, ok
}

// WithOpen opens an overlay with its bound form context, invokes fn
// with the context read back from the overlay, and closes it when fn
// returns. An unknown overlay id still invokes fn with the given
// context.
func (m *ModalController) WithOpen(id, boundContext string, fn func(bound string) error) error {
	m.Open(id, boundContext)
	defer m.Close(id)
	if bound, ok := m.Context(id); ok {
		boundContext = bound
	}
	return fn(boundContext)
}
