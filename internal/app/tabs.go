package app

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Pane is a simulated terminal pane. Its content is a fixed backlog plus
// whatever the user typed into it.
type Pane struct {
	ID       uuid.UUID
	Name     string
	Lines    []string
	Input    string
	Scroll   int // lines scrolled back from the bottom
	Weight   int // share of the tab width, in percent of the default
	Floating bool
}

// Tab is an ordered group of panes with one of them focused.
type Tab struct {
	ID         uuid.UUID
	Name       string
	Panes      []*Pane
	Focus      int
	Sync       bool
	Fullscreen bool
	Floating   bool
}

const defaultWeight = 100

func newPane(n int) *Pane {
	p := &Pane{
		ID:     uuid.New(),
		Name:   fmt.Sprintf("Pane #%d", n),
		Weight: defaultWeight,
	}
	for i := 1; i <= 40; i++ {
		p.Lines = append(p.Lines, fmt.Sprintf("[%s] line %02d", p.Name, i))
	}
	p.Lines = append(p.Lines, "$ ")
	return p
}

func newTab(n, firstPane int) *Tab {
	return &Tab{
		ID:    uuid.New(),
		Name:  fmt.Sprintf("Tab #%d", n),
		Panes: []*Pane{newPane(firstPane)},
	}
}

// Focused returns the focused pane, or nil for an empty tab.
func (t *Tab) Focused() *Pane {
	if t.Focus < 0 || t.Focus >= len(t.Panes) {
		return nil
	}
	return t.Panes[t.Focus]
}

// AddPane inserts p after the focused pane and focuses it.
func (t *Tab) AddPane(p *Pane) {
	at := min(t.Focus+1, len(t.Panes))
	t.Panes = slices.Insert(t.Panes, at, p)
	t.Focus = at
}

// CloseFocused removes the focused pane and reports whether panes remain.
func (t *Tab) CloseFocused() bool {
	if len(t.Panes) == 0 {
		return false
	}
	t.Panes = slices.Delete(t.Panes, t.Focus, t.Focus+1)
	if t.Focus >= len(t.Panes) {
		t.Focus = len(t.Panes) - 1
	}
	return len(t.Panes) > 0
}

// MoveFocus shifts focus by delta and reports whether it moved.
func (t *Tab) MoveFocus(delta int) bool {
	next := t.Focus + delta
	if next < 0 || next >= len(t.Panes) {
		return false
	}
	t.Focus = next
	return true
}

// CycleFocus moves focus to the next pane, wrapping around.
func (t *Tab) CycleFocus() {
	if len(t.Panes) > 0 {
		t.Focus = (t.Focus + 1) % len(t.Panes)
	}
}

// SwapFocused swaps the focused pane with the one delta positions away,
// wrapping around, and keeps it focused.
func (t *Tab) SwapFocused(delta int) {
	n := len(t.Panes)
	if n < 2 {
		return
	}
	other := ((t.Focus+delta)%n + n) % n
	t.Panes[t.Focus], t.Panes[other] = t.Panes[other], t.Panes[t.Focus]
	t.Focus = other
}

// Visible returns the panes drawn side by side.
func (t *Tab) Visible() []*Pane {
	if t.Fullscreen {
		if p := t.Focused(); p != nil {
			return []*Pane{p}
		}
	}
	visible := make([]*Pane, 0, len(t.Panes))
	for _, p := range t.Panes {
		if p.Floating && !t.Floating {
			continue
		}
		visible = append(visible, p)
	}
	return visible
}

// targets returns the panes typed text goes to: the focused pane, or every
// pane when the tab is synced.
func (t *Tab) targets() []*Pane {
	if t.Sync {
		return t.Panes
	}
	if p := t.Focused(); p != nil {
		return []*Pane{p}
	}
	return nil
}

// Type feeds text to the input line of the targeted panes.
func (t *Tab) Type(text string) {
	for _, p := range t.targets() {
		p.Input += text
		p.Lines[len(p.Lines)-1] = "$ " + p.Input
	}
}

// Submit ends the current input line of the targeted panes.
func (t *Tab) Submit() {
	for _, p := range t.targets() {
		p.Lines = append(p.Lines, "$ ")
		p.Input = ""
		p.Scroll = 0
	}
}

// ScrollBy scrolls p back by delta lines, clamped to its backlog.
func (p *Pane) ScrollBy(delta int) {
	p.Scroll = max(0, min(p.Scroll+delta, len(p.Lines)-1))
}
