package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `# gitlink configuration

# Remote whose URL the link points at
remote = "origin"

# Revision the link is pinned to. "HEAD" pins the current commit;
# a branch name still resolves to that branch's current commit.
ref = "HEAD"

# Print the link as a clickable terminal hyperlink when stdout is a terminal
hyperlink = true

# Host mappings - for self-hosted forges the hostname alone does not identify
# Maps a hostname to the forge whose URL layout should be used
#
# [hosts]
# "git.internal.corp" = "gitlab"      # /-/blob/<commit>/<path>#L1-2
# "code.company.com" = "gitea"        # /src/commit/<commit>/<path>#L1-L2
# "bitbucket.company.com" = "bitbucket"
#
# Supported forges: "github", "gitee", "gitlab", "gitea", "bitbucket"
`

const defaultLocalConfig = `# gitlink local config (per-repo overrides)
# Place this file at the root of the repository.
# Settings here override the global config for this repository only.

# remote = "upstream"
# ref = "main"

# [hosts]
# "git.internal.corp" = "gitlab"
`

// DefaultContent returns the default global configuration template.
func DefaultContent() string {
	return defaultConfig
}

// DefaultLocalContent returns the default .gitlink.toml template.
func DefaultLocalContent() string {
	return defaultLocalConfig
}

// Init writes content to path, creating parent directories.
// Fails if the file exists unless force is set.
func Init(path, content string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}
