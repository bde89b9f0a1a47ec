package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/log/v2"
)

// Init starts listening for config changes.
func (h *Host) Init() tea.Cmd {
	return WaitForConfigChange(h.opts.Watcher)
}

// Update handles key presses, resizes and config reloads.
func (h *Host) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.Width = msg.Width
		h.Height = msg.Height
		return h, nil

	case tea.KeyPressMsg:
		h.Message = ""
		return h, h.HandleKeyPress(msg)

	case ConfigChangedMsg:
		h.reloadConfig()
		return h, WaitForConfigChange(h.opts.Watcher)
	}
	return h, nil
}

// reloadConfig re-reads the config file. On error the current bindings stay
// in place.
func (h *Host) reloadConfig() {
	if h.opts.Reload == nil {
		return
	}
	keymaps, err := h.opts.Reload(h.opts.ConfigPath)
	if err != nil {
		log.Warn("config reload failed", "path", h.opts.ConfigPath, "err", err)
		h.Message = "config error: " + err.Error()
		return
	}
	log.Info("config reloaded", "path", h.opts.ConfigPath)
	h.SetKeymaps(keymaps)
	h.Message = "config reloaded"
}
