// Package clipboard copies generated payloads and webhook URLs to the
// system clipboard. Failures are reported but never block the caller;
// the text is always still on screen.
package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/newthinker/tradedeck/internal/core"
)

// Copier writes text to a clipboard.
type Copier interface {
	Copy(text string) error
}

// System copies to the OS clipboard via xclip/xsel/pbcopy.
type System struct{}

// Copy writes text to the system clipboard.
func (System) Copy(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return core.WrapError(core.ErrClipboardFailed, err)
	}
	return nil
}

// Noop discards everything; used when no clipboard utility is present.
type Noop struct{}

func (Noop) Copy(string) error { return nil }
