package hostapi

import (
	"fmt"
	"sort"
	"sync"
)

// Registry is the host's view of its loaded modules. Beyond name lookup it
// does the two jobs the master agent needs around a dispatch: routing a
// query to a module by the operation it advertises, and assembling one
// module's dispatch Context from the latest outputs of all the others.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]Module
	outputs map[string]map[string]any
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		modules: make(map[string]Module),
		outputs: make(map[string]map[string]any),
	}
}

// Register adds m under its name. Names are unique across the host.
func (r *Registry) Register(m Module) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := m.Name()
	if _, dup := r.modules[name]; dup {
		return fmt.Errorf("module %q already registered", name)
	}
	r.modules[name] = m
	return nil
}

// Unregister removes the named module and forgets any output recorded for
// it, so later context assembly cannot reference a module that is gone.
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.modules[name]; !ok {
		return fmt.Errorf("module %q not found", name)
	}
	delete(r.modules, name)
	delete(r.outputs, name)
	return nil
}

// Get returns the named module.
func (r *Registry) Get(name string) (Module, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.modules[name]
	return m, ok
}

// List returns the registered modules ordered by name.
func (r *Registry) List() []Module {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	mods := make([]Module, len(names))
	for i, name := range names {
		mods[i] = r.modules[name]
	}
	return mods
}

// FindByOperation returns the first module, in name order, whose capability
// descriptor lists op among its supported operations.
func (r *Registry) FindByOperation(op string) (Module, bool) {
	for _, m := range r.List() {
		for _, supported := range m.Capabilities().SupportedOperations {
			if supported == op {
				return m, true
			}
		}
	}
	return nil, false
}

// RecordOutput stores the data of a module's latest successful envelope.
// Error envelopes are ignored: a failed call must not clobber the last good
// output other modules may still want as context. Outputs for unregistered
// modules are dropped.
func (r *Registry) RecordOutput(name string, resp Response) {
	if resp.Status != StatusSuccess || resp.Data == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.modules[name]; !ok {
		return
	}
	r.outputs[name] = resp.Data
}

// ContextFor assembles the dispatch context for the named module: every
// other module's latest recorded output, keyed by module name. The module's
// own output is never part of its context. Returns nil when no other module
// has produced output yet.
func (r *Registry) ContextFor(name string) Context {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var ctx Context
	for other, data := range r.outputs {
		if other == name {
			continue
		}
		if ctx == nil {
			ctx = make(Context)
		}
		ctx[other] = data
	}
	return ctx
}
