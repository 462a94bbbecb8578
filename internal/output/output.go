// Package output provides context-aware output for gitlink.
// Stdout carries the link itself so it can be piped or captured.
// Stderr (via log package) is used for notifications and diagnostics.
package output

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
)

type ctxKey struct{}

// Printer writes primary output to stdout.
type Printer struct {
	w   io.Writer
	tty bool
}

// New creates a new Printer writing to the given writer.
func New(w io.Writer) *Printer {
	return &Printer{w: w, tty: isTerminal(w)}
}

// WithPrinter attaches a Printer to the context.
func WithPrinter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, New(w))
}

// FromContext retrieves the Printer from context.
// Returns a Printer writing to os.Stdout if none is attached.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Println writes a line of output.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Link writes url on its own line. When hyperlink is set and the output is
// a terminal, the url is wrapped in an OSC 8 hyperlink so it is clickable.
func (p *Printer) Link(url string, hyperlink bool) {
	fmt.Fprintln(p.w, linkText(url, hyperlink && p.tty))
}

// IsTerminal reports whether the printer writes to a terminal.
func (p *Printer) IsTerminal() bool {
	return p.tty
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}

func linkText(url string, hyperlink bool) string {
	if !hyperlink {
		return url
	}
	return ansi.SetHyperlink(url) + url + ansi.ResetHyperlink()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
