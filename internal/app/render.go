package app

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// View draws the host in the alternate screen.
func (h *Host) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.SetContent(h.Render())
	return view
}

// Render draws the tab line, the panes of the active tab and the status bar,
// one row per line.
func (h *Host) Render() string {
	if h.quitting || h.Width <= 0 || h.Height <= 0 {
		return ""
	}
	rows := []string{h.renderTabLine()}
	rows = append(rows, h.renderPanes()...)
	rows = append(rows, h.bar.Render(1, h.Width))
	return strings.Join(rows, "\n")
}

// paneHeight is the number of content rows of each pane.
func (h *Host) paneHeight() int {
	height := h.Height - 2
	if h.PaneFrames {
		height--
	}
	if h.Message != "" {
		height--
	}
	return max(1, height)
}

// fit pads or truncates s to exactly width columns.
func fit(s string, width int) string {
	s = ansi.Truncate(s, width, "…")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

func (h *Host) renderTabLine() string {
	active := lipgloss.NewStyle().Bold(true).Foreground(h.palette.Black).Background(h.palette.Green)
	inactive := lipgloss.NewStyle().Foreground(h.palette.Black).Background(h.palette.Fg)

	var sb strings.Builder
	width := 0
	add := func(st lipgloss.Style, s string) {
		if width+ansi.StringWidth(s) > h.Width {
			return
		}
		sb.WriteString(st.Render(s))
		width += ansi.StringWidth(s)
	}

	add(lipgloss.NewStyle().Bold(true), " "+h.session+" ")
	for _, t := range h.bar.Tabs() {
		name := " " + t.Name
		if t.IsSync {
			name += " (SYNC)"
		}
		if t.IsFullscreen {
			name += fmt.Sprintf(" (FULLSCREEN +%d)", t.PanesToHide)
		}
		name += " "
		if t.Active {
			add(active, name)
		} else {
			add(inactive, name)
		}
		add(lipgloss.NewStyle(), " ")
	}
	return sb.String() + ansi.EraseLineRight
}

// renderPanes lays the visible panes of the active tab out side by side.
func (h *Host) renderPanes() []string {
	height := h.paneHeight()
	t := h.ActiveTab()
	var panes []*Pane
	if t != nil {
		panes = t.Visible()
	}
	if len(panes) == 0 {
		lines := make([]string, height)
		for i := range lines {
			lines[i] = fit("", h.Width)
		}
		return h.withMessage(lines)
	}

	total := 0
	for _, p := range panes {
		total += p.Weight
	}

	columns := make([]string, len(panes))
	used := 0
	for i, p := range panes {
		w := h.Width * p.Weight / total
		if i == len(panes)-1 {
			w = h.Width - used
		}
		used += w
		columns[i] = h.renderPane(p, p == t.Focused(), w, height)
	}
	return h.withMessage(strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, columns...), "\n"))
}

func (h *Host) withMessage(lines []string) []string {
	if h.Message == "" {
		return lines
	}
	st := lipgloss.NewStyle().Foreground(h.palette.Yellow)
	return append(lines, st.Render(fit(" "+h.Message, h.Width)))
}

// renderPane draws one pane as a block of exactly width columns.
func (h *Host) renderPane(p *Pane, focused bool, width, height int) string {
	var rows []string
	if h.PaneFrames {
		title := " " + p.Name
		if p.Scroll > 0 {
			title += fmt.Sprintf(" [SCROLL %d/%d]", p.Scroll, len(p.Lines)-1)
		}
		st := lipgloss.NewStyle().Foreground(h.palette.Gray)
		if focused {
			st = lipgloss.NewStyle().Bold(true).Foreground(h.palette.Green)
		}
		rows = append(rows, st.Render(fit(title, width)))
	}

	end := len(p.Lines) - p.Scroll
	start := max(0, end-height)
	for _, line := range p.Lines[start:end] {
		rows = append(rows, fit(" "+line, width))
	}
	for len(rows) < height+boolInt(h.PaneFrames) {
		rows = append(rows, fit("", width))
	}
	return strings.Join(rows, "\n")
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
