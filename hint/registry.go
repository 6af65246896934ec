package hint

// Registry keeps one Manager per live buffer, keyed by Buffer.ID. The host
// owns it and calls Cleanup when a buffer goes away; a buffer that is never
// cleaned up keeps its Manager around but its text stays intact.
type Registry struct {
	cfg      *Config
	managers map[int]*Manager
}

// NewRegistry returns an empty registry whose managers take the process-wide
// Defaults in effect when each one is created.
func NewRegistry() *Registry {
	return &Registry{managers: make(map[int]*Manager)}
}

// NewRegistryWithConfig returns an empty registry whose managers all use cfg.
func NewRegistryWithConfig(cfg Config) *Registry {
	return &Registry{cfg: &cfg, managers: make(map[int]*Manager)}
}

// ForBuffer returns the Manager for buf, creating a Hidden one on first use.
func (r *Registry) ForBuffer(buf Buffer) *Manager {
	id := buf.ID()
	if m, ok := r.managers[id]; ok {
		return m
	}
	cfg := Defaults()
	if r.cfg != nil {
		cfg = *r.cfg
	}
	m := NewManager(buf, cfg)
	r.managers[id] = m
	return m
}

// Lookup returns the Manager registered for id, if any.
func (r *Registry) Lookup(id int) (*Manager, bool) {
	m, ok := r.managers[id]
	return m, ok
}

// Len returns the number of registered managers.
func (r *Registry) Len() int { return len(r.managers) }

// Cleanup hides the hints of buffer id and forgets its Manager. Unknown ids
// are ignored.
func (r *Registry) Cleanup(id int) {
	m, ok := r.managers[id]
	if !ok {
		return
	}
	m.Hide()
	delete(r.managers, id)
}

// CleanupAll hides the hints of every buffer and empties the registry.
func (r *Registry) CleanupAll() {
	for id, m := range r.managers {
		m.Hide()
		delete(r.managers, id)
	}
}
