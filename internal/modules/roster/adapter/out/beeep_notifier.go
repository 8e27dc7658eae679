package out

import (
	"github.com/gen2brain/beeep"

	rosterout "pokerlog/internal/modules/roster/port/out"
)

// DesktopNotifier raises an OS notification. The TUI owns the terminal, so
// dropped-write alerts go through the desktop instead of stderr.
type DesktopNotifier struct{}

func NewDesktopNotifier() rosterout.Notifier {
	return DesktopNotifier{}
}

func (DesktopNotifier) Alert(title, message string) {
	// A failed notification must never fail the save that triggered it.
	_ = beeep.Alert(title, message, "")
}
