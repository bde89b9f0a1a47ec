package app

import (
	"charm.land/log/v2"

	"github.com/Gaurav-Gosain/keybar/internal/input"
)

// SwitchMode changes the input mode and refreshes the status bar.
func (h *Host) SwitchMode(m input.Mode) {
	if m == h.Mode {
		return
	}
	log.Debug("mode switch", "from", h.Mode, "to", m)
	h.Mode = m
	h.syncBar()
}
