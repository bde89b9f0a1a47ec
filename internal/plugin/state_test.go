package plugin

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"

	"github.com/Gaurav-Gosain/keybar/internal/input"
	"github.com/Gaurav-Gosain/keybar/internal/theme"
)

func paneInfo() ModeInfo {
	return ModeInfo{
		Mode: input.ModePane,
		Keymap: input.Keymap{
			input.Binds(input.Enter, input.SwitchToMode(input.ModeNormal)),
			input.Binds(input.Char('n'), input.NewPane(input.DirNone), input.SwitchToMode(input.ModeNormal)),
		},
		Palette:     theme.DefaultPalette(),
		SessionName: "main",
	}
}

func TestUpdateModeInfo(t *testing.T) {
	s := New()

	if !s.Update(ModeUpdate{Info: paneInfo()}) {
		t.Error("first ModeUpdate should request a render")
	}
	if s.Update(ModeUpdate{Info: paneInfo()}) {
		t.Error("identical ModeUpdate should not request a render")
	}

	changed := paneInfo()
	changed.Keymap = append(changed.Keymap, input.Binds(input.Char('x'), input.CloseFocus))
	if !s.Update(ModeUpdate{Info: changed}) {
		t.Error("ModeUpdate with a new binding should request a render")
	}

	changed.Capabilities.SimplifiedUI = true
	if !s.Update(ModeUpdate{Info: changed}) {
		t.Error("ModeUpdate with new capabilities should request a render")
	}
	if got := s.ModeInfo(); !got.Equal(changed) {
		t.Errorf("ModeInfo() = %+v, want %+v", got, changed)
	}
}

func TestUpdateTabs(t *testing.T) {
	s := New()
	tabs := []TabInfo{
		{ID: uuid.New(), Position: 0, Name: "Tab #1", Active: true},
		{ID: uuid.New(), Position: 1, Name: "Tab #2"},
	}

	if !s.Update(TabUpdate{Tabs: tabs}) {
		t.Error("first TabUpdate should request a render")
	}
	if s.Update(TabUpdate{Tabs: append([]TabInfo(nil), tabs...)}) {
		t.Error("identical TabUpdate should not request a render")
	}

	renamed := append([]TabInfo(nil), tabs...)
	renamed[1].Name = "logs"
	if !s.Update(TabUpdate{Tabs: renamed}) {
		t.Error("renamed tab should request a render")
	}

	active, ok := s.ActiveTab()
	if !ok || active.ID != tabs[0].ID {
		t.Errorf("ActiveTab() = %+v, %v, want the first tab", active, ok)
	}
}

func TestUpdatePermission(t *testing.T) {
	s := New()
	if s.Update(PermissionResult{Granted: true}) {
		t.Error("PermissionResult should not request a render")
	}
	if !s.Permitted() {
		t.Error("Permitted() = false after a granted result")
	}
}

func TestRender(t *testing.T) {
	s := New()
	s.Update(ModeUpdate{Info: paneInfo()})

	got := ansi.Strip(s.Render(1, 200))
	for _, want := range []string{"<ENTER> PANE", "<n> New", "<ENTER> Select pane"} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() = %q, missing %q", got, want)
		}
	}

	if got := s.Render(0, 200); got != "" {
		t.Errorf("Render(0, 200) = %q, want empty", got)
	}
}

func TestRenderThreshold(t *testing.T) {
	s := New()
	s.Update(ModeUpdate{Info: paneInfo()})

	if got := ansi.Strip(s.Render(1, 100)); strings.Contains(got, "PANE") {
		t.Errorf("Render() = %q, want the short form below the default threshold", got)
	}

	s.Threshold = 50
	if got := ansi.Strip(s.Render(1, 100)); !strings.Contains(got, "PANE") {
		t.Errorf("Render() = %q, want the long form above a lowered threshold", got)
	}
}
