package input

import (
	"slices"
	"strings"
)

// Binding ties a key to the action sequence it triggers.
type Binding struct {
	Key     Key
	Actions []Action
}

// Binds returns a Binding for k.
func Binds(k Key, actions ...Action) Binding {
	return Binding{Key: k, Actions: actions}
}

// Does reports whether b triggers exactly the given action sequence.
func (b Binding) Does(actions ...Action) bool {
	return slices.Equal(b.Actions, actions)
}

func (b Binding) String() string {
	parts := make([]string, len(b.Actions))
	for i, a := range b.Actions {
		parts[i] = a.String()
	}
	return b.Key.Name() + " -> " + strings.Join(parts, "; ")
}

// Keymap is an ordered list of bindings for one mode. It may bind the same
// key twice and the same action sequence to several keys.
type Keymap []Binding

// Clone returns a copy of km that shares no backing arrays with it.
func (km Keymap) Clone() Keymap {
	if km == nil {
		return nil
	}
	out := make(Keymap, len(km))
	for i, b := range km {
		out[i] = Binding{Key: b.Key, Actions: slices.Clone(b.Actions)}
	}
	return out
}

// Equal reports whether two keymaps hold the same bindings in the same order.
func (km Keymap) Equal(o Keymap) bool {
	return slices.EqualFunc(km, o, func(a, b Binding) bool {
		return a.Key == b.Key && slices.Equal(a.Actions, b.Actions)
	})
}
