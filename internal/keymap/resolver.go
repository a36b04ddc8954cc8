package keymap

import "slices"

// Resolver looks up the action bound to a key.
type Resolver struct {
	byKey    map[string]Action
	bindings []Binding
}

// NewResolver indexes bindings. A key bound twice resolves to its last
// binding.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		byKey:    make(map[string]Action, 2*len(bindings)),
		bindings: bindings,
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.byKey[key] = b.Action
		}
	}
	return r
}

// Default resolves the application bindings.
func Default() *Resolver {
	return NewResolver(Bindings)
}

// Resolve returns the action bound to key, or "" when there is none.
func (r *Resolver) Resolve(key string) Action {
	return r.byKey[key]
}

// KeysFor lists the keys of action in binding order, without repeats.
func (r *Resolver) KeysFor(action Action) []string {
	var keys []string
	for _, b := range r.bindings {
		if b.Action != action {
			continue
		}
		for _, key := range b.Keys {
			if !slices.Contains(keys, key) {
				keys = append(keys, key)
			}
		}
	}
	return keys
}
