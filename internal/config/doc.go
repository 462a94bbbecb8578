// Package config handles loading and validation of gitlink configuration.
//
// Configuration is read from ~/.config/gitlink/config.toml and can be
// overridden per repository by a .gitlink.toml file at the workspace root.
//
// # Configuration Sources (highest priority first)
//
//   - Command-line flags (--remote, --ref)
//   - .gitlink.toml at the workspace root
//   - GITLINK_CONFIG env var: alternative path for the global file
//   - ~/.config/gitlink/config.toml
//   - Default values
//
// # Key Settings
//
//   - remote: git remote whose URL the link points at (default: "origin")
//   - ref: revision the link is pinned to (default: "HEAD")
//   - hyperlink: print the link as a clickable terminal hyperlink (default: true)
//
// # Host Mappings
//
// The [hosts] section maps hostnames to a forge so self-hosted instances get
// the right URL layout:
//
//	[hosts]
//	"git.internal.corp" = "gitlab"
//	"code.company.com" = "gitea"
//
// Supported forges: github, gitee, gitlab, gitea, bitbucket.
package config
