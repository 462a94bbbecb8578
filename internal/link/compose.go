package link

import (
	"strings"

	"github.com/raphi011/gitlink/internal/remote"
	"github.com/raphi011/gitlink/internal/selection"
)

// Compose returns {remoteHTTPS}/blob/{commit}/{relPath}#L{start}-L{end}.
// Exactly one slash separates commit and path, whether or not relPath
// starts with one.
func Compose(remoteHTTPS, commit, relPath string, lines selection.LineRange) string {
	return ComposeStyle(remote.DefaultStyle(), remoteHTTPS, commit, relPath, lines)
}

// ComposeStyle is Compose with a forge-specific blob segment and anchor.
func ComposeStyle(style remote.Style, remoteHTTPS, commit, relPath string, lines selection.LineRange) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(remoteHTTPS, "/"))
	b.WriteString("/")
	b.WriteString(style.Blob)
	b.WriteString("/")
	b.WriteString(commit)
	b.WriteString("/")
	b.WriteString(strings.TrimLeft(relPath, "/"))
	b.WriteString("#")
	b.WriteString(style.Anchor(lines.Start, lines.End))
	return b.String()
}
