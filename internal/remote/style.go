package remote

import (
	"fmt"
	"strings"
)

// Forge names accepted in the [hosts] config section.
const (
	GitHub    = "github"
	Gitee     = "gitee"
	GitLab    = "gitlab"
	Gitea     = "gitea"
	Bitbucket = "bitbucket"
)

// Forges lists every supported forge name.
var Forges = []string{GitHub, Gitee, GitLab, Gitea, Bitbucket}

// Style describes how a forge addresses a file at a commit and a line range.
type Style struct {
	Name string
	// Blob is the path segment between the repository URL and the commit.
	Blob string
	// Anchor formats the fragment for a 1-based inclusive line range.
	Anchor func(start, end int) string
}

func hashLines(start, end int) string {
	return fmt.Sprintf("L%d-L%d", start, end)
}

// GitLab repeats the L only on the start line: #L10-20.
func gitlabLines(start, end int) string {
	return fmt.Sprintf("L%d-%d", start, end)
}

var styles = map[string]Style{
	GitHub:    {Name: GitHub, Blob: "blob", Anchor: hashLines},
	Gitee:     {Name: Gitee, Blob: "blob", Anchor: hashLines},
	GitLab:    {Name: GitLab, Blob: "-/blob", Anchor: gitlabLines},
	Gitea:     {Name: Gitea, Blob: "src/commit", Anchor: hashLines},
	Bitbucket: {Name: Bitbucket, Blob: "src", Anchor: func(start, end int) string {
		return fmt.Sprintf("lines-%d:%d", start, end)
	}},
}

// DefaultStyle is the GitHub layout: /blob/<commit>/<path>#L<start>-L<end>.
func DefaultStyle() Style {
	return styles[GitHub]
}

// StyleByName returns the style for a forge name.
// The bool is false for unknown names.
func StyleByName(name string) (Style, bool) {
	s, ok := styles[strings.ToLower(name)]
	return s, ok
}

// IsForge reports whether name is a supported forge.
func IsForge(name string) bool {
	_, ok := StyleByName(name)
	return ok
}

// DetectStyle returns the Style for a remote URL.
// If hostMap is provided, checks for exact host matches first.
// Falls back to hostname pattern matching, then to the GitHub layout.
func DetectStyle(remoteURL string, hostMap map[string]string) Style {
	host := strings.ToLower(Host(remoteURL))

	if host != "" && len(hostMap) > 0 {
		if name, ok := hostMap[host]; ok {
			if s, ok := StyleByName(name); ok {
				return s
			}
		}
	}

	switch {
	case strings.Contains(host, "gitlab"):
		return styles[GitLab]
	case host == "bitbucket.org":
		return styles[Bitbucket]
	case strings.Contains(host, "gitea") || host == "codeberg.org":
		return styles[Gitea]
	case host == "gitee.com":
		return styles[Gitee]
	}
	return DefaultStyle()
}
