package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/gitlink/internal/ui/styles"
)

// Notifier writes styled status lines for the user.
type Notifier struct {
	w     io.Writer
	quiet bool
}

// NewNotifier returns a Notifier writing to w. When quiet is set only
// errors are written.
func NewNotifier(w io.Writer, quiet bool) *Notifier {
	return &Notifier{
		w:     colorprofile.NewWriter(w, os.Environ()),
		quiet: quiet,
	}
}

// Success writes an informational notification.
func (n *Notifier) Success(format string, args ...any) {
	if n.quiet {
		return
	}
	fmt.Fprintln(n.w, styles.SuccessStyle.Render(styles.SymbolSuccess)+" "+fmt.Sprintf(format, args...))
}

// Error writes an error notification.
func (n *Notifier) Error(format string, args ...any) {
	fmt.Fprintln(n.w, styles.ErrorStyle.Render(styles.SymbolError+" "+fmt.Sprintf(format, args...)))
}

// Hint writes a muted follow-up line, e.g. how to fix an error.
func (n *Notifier) Hint(format string, args ...any) {
	if n.quiet {
		return
	}
	fmt.Fprintln(n.w, styles.MutedStyle.Render("  "+fmt.Sprintf(format, args...)))
}
