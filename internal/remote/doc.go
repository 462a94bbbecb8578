// Package remote turns git remote URLs into browsable web URLs.
//
// # Normalization
//
// [ToHTTPS] rewrites the scp-like SSH form used by most hosting services
// (git@host:org/repo.git) into https://host/org/repo. Any other input,
// including URLs that are already HTTPS, is returned unchanged, so applying
// it twice is the same as applying it once.
//
// # Forge Styles
//
// Hosting services disagree on where a file at a commit lives and how a line
// range is anchored. A [Style] captures both. [DetectStyle] picks one from an
// explicit host map (the [hosts] config section) or from the hostname, and
// falls back to the GitHub layout, /blob/<commit>/<path>#L<start>-L<end>,
// which GitHub, Gitee and most mirrors share.
package remote
