// Package clipboard provides access to the system clipboard.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrUnavailable indicates no clipboard utility was found.
var ErrUnavailable = errors.New("clipboard unavailable: install xclip, xsel or wl-clipboard")

// Copier copies text to the system clipboard.
type Copier interface {
	Copy(text string) error
}

// System implements Copier using github.com/atotto/clipboard.
type System struct{}

// Copy writes text to the system clipboard.
func (System) Copy(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}

var _ Copier = System{}
