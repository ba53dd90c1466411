package registry

// Registry is an immutable, ordered catalog of analysis function descriptors.
type Registry struct {
	descriptors []Descriptor
	byName      map[string]*Descriptor
}

// New builds a Registry from the given descriptors. The slice is copied so
// callers cannot mutate the catalog afterwards.
func New(descriptors []Descriptor) *Registry {
	r := &Registry{
		descriptors: make([]Descriptor, len(descriptors)),
		byName:      make(map[string]*Descriptor, len(descriptors)),
	}
	copy(r.descriptors, descriptors)
	for i := range r.descriptors {
		r.byName[r.descriptors[i].Name] = &r.descriptors[i]
	}
	return r
}

// Default returns the built-in must-gather analysis catalog.
func Default() *Registry {
	return New(capabilities)
}

// All returns the descriptors in catalog order.
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, len(r.descriptors))
	copy(out, r.descriptors)
	return out
}

// Get returns the descriptor with the given name, if present.
func (r *Registry) Get(name string) (Descriptor, bool) {
	d, ok := r.byName[name]
	if !ok {
		return Descriptor{}, false
	}
	return *d, true
}

// Names returns all function names in catalog order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.descriptors))
	for _, d := range r.descriptors {
		names = append(names, d.Name)
	}
	return names
}

// Len returns the number of descriptors in the catalog.
func (r *Registry) Len() int {
	return len(r.descriptors)
}
