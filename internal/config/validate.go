package config

import (
	"fmt"
	"strings"

	"github.com/raphi011/gitlink/internal/remote"
)

// Validate checks field values after defaults have been applied.
func (c *Config) Validate() error {
	if err := ValidateRemote(c.Remote); err != nil {
		return err
	}
	if err := ValidateRef(c.Ref); err != nil {
		return err
	}
	return validateHosts(c.Hosts)
}

// ValidateRemote rejects remote names git would read as an option.
func ValidateRemote(name string) error {
	if name == "" {
		return fmt.Errorf("remote must not be empty")
	}
	if strings.ContainsAny(name, " \t\n") || strings.HasPrefix(name, "-") {
		return fmt.Errorf("invalid remote %q", name)
	}
	return nil
}

// ValidateRef rejects refs git would read as an option.
func ValidateRef(ref string) error {
	if ref == "" {
		return fmt.Errorf("ref must not be empty")
	}
	if strings.HasPrefix(ref, "-") {
		return fmt.Errorf("invalid ref %q: must not start with '-'", ref)
	}
	return nil
}

func validateHosts(hosts map[string]string) error {
	for host, forge := range hosts {
		if !remote.IsForge(forge) {
			return fmt.Errorf("invalid forge %q for host %q: must be %s", forge, host, formatOptions(remote.Forges))
		}
	}
	return nil
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}

// normalizeHosts lowercases hostnames so lookups match parsed URLs.
func normalizeHosts(hosts map[string]string) map[string]string {
	if len(hosts) == 0 {
		return hosts
	}
	out := make(map[string]string, len(hosts))
	for host, forge := range hosts {
		out[strings.ToLower(host)] = strings.ToLower(forge)
	}
	return out
}
