// Package dispatch provides the named-tool dispatch table behind the agent
// surfaces. Tools register a transport-agnostic handler (bytes in, bytes out)
// under a fixed name; both the MCP server and the HTTP POST endpoint resolve
// calls through the same table, so the two surfaces can never disagree on
// the tool vocabulary.
//
//	table := dispatch.New(dispatch.WithLogger(logger))
//	table.Register("search_products", searchHandler)
//
//	resp, err := table.Call(ctx, "search_products", payload)
package dispatch

import (
	"context"
	"log/slog"
	"sort"
	"sync"
)

// Handler is a transport-agnostic tool function: bytes in, bytes out.
// Payload and response are JSON documents.
type Handler func(ctx context.Context, payload []byte) ([]byte, error)

// Table maps fixed tool names to handlers. Thread-safe: registration happens
// at startup, reads take an RLock so concurrent HTTP and MCP calls are fine.
type Table struct {
	mu       sync.RWMutex
	handlers map[string]Handler
	disabled map[string]bool
	logger   *slog.Logger
}

// Option configures a Table.
type Option func(*Table)

// WithLogger sets a custom logger for the table.
func WithLogger(l *slog.Logger) Option {
	return func(t *Table) { t.logger = l }
}

// New creates an empty dispatch table.
func New(opts ...Option) *Table {
	t := &Table{
		handlers: make(map[string]Handler),
		disabled: make(map[string]bool),
		logger:   slog.Default(),
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Register binds a handler to a tool name, replacing any previous binding.
func (t *Table) Register(name string, h Handler) {
	t.mu.Lock()
	t.handlers[name] = h
	t.mu.Unlock()
}

// Disable marks a tool as disabled: Call silently succeeds with a nil
// response. Used as a feature flag when a surface must stay listed but inert.
func (t *Table) Disable(name string) {
	t.mu.Lock()
	t.disabled[name] = true
	t.mu.Unlock()
}

// Call resolves and invokes a tool by name. Unknown names return
// *ErrToolNotFound; the caller turns that into an explicit error payload
// rather than letting it escape the request boundary.
func (t *Table) Call(ctx context.Context, name string, payload []byte) ([]byte, error) {
	t.mu.RLock()
	h, ok := t.handlers[name]
	off := t.disabled[name]
	t.mu.RUnlock()

	if off {
		t.logger.DebugContext(ctx, "dispatch noop", "tool", name)
		return nil, nil
	}
	if !ok {
		return nil, &ErrToolNotFound{Tool: name}
	}
	t.logger.DebugContext(ctx, "dispatch", "tool", name)
	return h(ctx, payload)
}

// Names returns the registered tool names, sorted. Used by tools/list.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	names := make([]string, 0, len(t.handlers))
	for n := range t.handlers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
