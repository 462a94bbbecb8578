package remote

import (
	"net/url"
	"regexp"
	"strings"
)

// sshPattern matches scp-like SSH remotes: git@<host>:<path>.
// The host cannot contain a colon.
var sshPattern = regexp.MustCompile(`^git@([^:]+):(.+)$`)

// ToHTTPS converts git@<host>:<path>[.git] to https://<host>/<path>.
// Up to two trailing ".git" suffixes are removed, so a doubled
// "repo.git.git" still yields the bare repository path.
// Input that does not match is returned unchanged.
func ToHTTPS(remoteURL string) string {
	m := sshPattern.FindStringSubmatch(remoteURL)
	if m == nil {
		return remoteURL
	}
	host := m[1]
	path := strings.TrimSuffix(strings.TrimSuffix(m[2], ".git"), ".git")
	if path == "" {
		return remoteURL
	}
	return "https://" + host + "/" + path
}

// Host parses the hostname from a git remote URL.
// Handles SSH format (git@host:path) and URL formats (https://, http://, ssh://).
// Returns "" when the host cannot be determined.
func Host(remoteURL string) string {
	if m := sshPattern.FindStringSubmatch(remoteURL); m != nil {
		return m[1]
	}

	for _, scheme := range []string{"https://", "http://", "ssh://"} {
		if strings.HasPrefix(remoteURL, scheme) {
			if parsed, err := url.Parse(remoteURL); err == nil {
				return parsed.Hostname()
			}
		}
	}
	return ""
}
