package filter

import "sort"

// FrameFilter is the registration surface a debugger front end consults.
type FrameFilter interface {
	Name() string
	Priority() int
	Enabled() bool
	Filter(frames []Frame) *Proxy
}

// Registry is a named filter table. It replaces the debugger's
// process-wide filter dictionary with an explicit value the caller owns.
type Registry struct {
	filters map[string]FrameFilter
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{filters: make(map[string]FrameFilter)}
}

// Register inserts a filter under its name, replacing any previous entry.
func (r *Registry) Register(f FrameFilter) {
	r.filters[f.Name()] = f
}

// Remove drops the named filter.
func (r *Registry) Remove(name string) {
	delete(r.filters, name)
}

// Lookup returns the named filter.
func (r *Registry) Lookup(name string) (FrameFilter, bool) {
	f, ok := r.filters[name]
	return f, ok
}

// Enabled returns the enabled filters, highest priority first. Filters of
// equal priority order by name.
func (r *Registry) Enabled() []FrameFilter {
	var enabled []FrameFilter
	for _, f := range r.filters {
		if f.Enabled() {
			enabled = append(enabled, f)
		}
	}
	sort.Slice(enabled, func(i, j int) bool {
		if enabled[i].Priority() != enabled[j].Priority() {
			return enabled[i].Priority() > enabled[j].Priority()
		}
		return enabled[i].Name() < enabled[j].Name()
	})
	return enabled
}
