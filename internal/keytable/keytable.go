// Package keytable derives the canonical shortcut table from a raw keymap.
//
// A raw keymap comes straight from configuration: keys may repeat and one
// action sequence may be reachable from several keys. The status bar only
// ever shows one key per action sequence, chosen here.
package keytable

import (
	"slices"

	"github.com/Gaurav-Gosain/keybar/internal/input"
)

// Normalize sorts km by key and keeps the first binding of every distinct
// action sequence. A later [GoToNextTab] binding replaces the kept one, so
// that a remapped next-tab key wins over the arrow default.
//
// The input is not modified. The result is sorted by key (a replacing
// binding is always the largest seen so far), which makes Normalize
// idempotent.
func Normalize(km input.Keymap) input.Keymap {
	sorted := km.Clone()
	slices.SortStableFunc(sorted, func(a, b input.Binding) int {
		return a.Key.Compare(b.Key)
	})

	out := make(input.Keymap, 0, len(sorted))
	for _, b := range sorted {
		i := slices.IndexFunc(out, func(kept input.Binding) bool {
			return slices.Equal(kept.Actions, b.Actions)
		})
		switch {
		case i < 0:
			out = append(out, b)
		case b.Does(input.GoToNextTab) && out[i].Key != b.Key:
			out = slices.Delete(out, i, i+1)
			out = append(out, b)
		}
	}
	return out
}

// ToNormalKey returns the key that leaves the current mode. It must be
// computed on the raw keymap: Normalize may drop the binding. Enter is
// preferred when bound, otherwise the first key in table order.
func ToNormalKey(raw input.Keymap) (input.Key, bool) {
	keys := KeysFor(raw, input.SwitchToMode(input.ModeNormal))
	if slices.Contains(keys, input.Enter) {
		return input.Enter, true
	}
	if len(keys) == 0 {
		return input.Key{}, false
	}
	return keys[0], true
}

// KeysFor returns every key bound to exactly the given action sequence, in
// table order.
func KeysFor(km input.Keymap, actions ...input.Action) []input.Key {
	var keys []input.Key
	for _, b := range km {
		if b.Does(actions...) {
			keys = append(keys, b.Key)
		}
	}
	return keys
}

// KeyGroup concatenates KeysFor for each sequence, keeping the order of
// seqs rather than key order.
func KeyGroup(km input.Keymap, seqs ...[]input.Action) []input.Key {
	var keys []input.Key
	for _, seq := range seqs {
		keys = append(keys, KeysFor(km, seq...)...)
	}
	return keys
}

// ShortcutKey returns the first key bound to exactly the given sequence,
// skipping the default return keys (space, enter, escape).
func ShortcutKey(km input.Keymap, actions ...input.Action) (input.Key, bool) {
	for _, k := range KeysFor(km, actions...) {
		if !k.IsDefaultReturn() {
			return k, true
		}
	}
	return input.Key{}, false
}
