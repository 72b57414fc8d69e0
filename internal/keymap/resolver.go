package keymap

import (
	"slices"
	"strings"
)

// Resolver maps key presses to actions and each action back to the keys that
// trigger it. Help and status hints read keys through the resolver so they
// always show what Resolve accepts.
type Resolver struct {
	actions  map[string]Action
	keys     map[Action][]string
	bindings []Binding // one per action in table order, keys merged
}

// NewResolver builds a resolver from a binding table. When a key appears in
// several bindings the last one wins, and the key is listed only for that
// action.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actions: make(map[string]Action),
		keys:    make(map[Action][]string),
	}
	seen := make(map[Action]bool)
	for _, b := range bindings {
		for _, k := range b.Keys {
			if prev, ok := r.actions[k]; ok && prev != b.Action {
				r.keys[prev] = slices.DeleteFunc(r.keys[prev], func(s string) bool { return s == k })
			}
			r.actions[k] = b.Action
			if !slices.Contains(r.keys[b.Action], k) {
				r.keys[b.Action] = append(r.keys[b.Action], k)
			}
		}
		if !seen[b.Action] {
			seen[b.Action] = true
			r.bindings = append(r.bindings, b)
		}
	}
	return r
}

// Resolve returns the action for a key, or "" if the key is unbound.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// KeysFor returns the keys bound to an action, in table order.
func (r *Resolver) KeysFor(action Action) []string {
	return slices.Clone(r.keys[action])
}

// Bindings returns one binding per action that still has keys, in table
// order, with Keys replaced by the merged key list.
func (r *Resolver) Bindings() []Binding {
	out := make([]Binding, 0, len(r.bindings))
	for _, b := range r.bindings {
		keys := r.KeysFor(b.Action)
		if len(keys) == 0 {
			continue
		}
		b.Keys = keys
		out = append(out, b)
	}
	return out
}

// Display returns every key of an action in printable form, joined by "/".
func (r *Resolver) Display(action Action) string {
	keys := r.keys[action]
	display := make([]string, len(keys))
	for i, k := range keys {
		display[i] = DisplayKey(k)
	}
	return strings.Join(display, "/")
}

// Hint returns the printable form of the first key of an action, or "" when
// the action is unbound.
func (r *Resolver) Hint(action Action) string {
	keys := r.keys[action]
	if len(keys) == 0 {
		return ""
	}
	return DisplayKey(keys[0])
}
