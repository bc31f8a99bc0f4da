package config

import (
	"sort"
)

// CurrentConfigVersion is the version tag written to every saved file.
const CurrentConfigVersion = 2

// UserConfig is the top-level configuration structure, built from the
// global and local .gitguardian.yaml files.
type UserConfig struct {
	Instance          *string      // Dashboard base URL, nil when unset
	ExitZero          bool         // Always exit with code 0
	Verbose           bool         // Verbose output
	AllowSelfSigned   bool         // Skip TLS verification for self-signed certificates
	MaxCommitsForHook int          // Commit limit for pre-receive/pre-push hooks
	Secret            SecretConfig // Secret scan settings
	IaC               IaCConfig    // IaC scan settings
}

// SecretConfig holds all user-defined secret-specific settings.
type SecretConfig struct {
	ShowSecrets      bool
	IgnoredDetectors StringSet
	IgnoredMatches   []IgnoredMatch
	IgnoredPaths     StringSet
}

// IgnoredMatch suppresses reporting of a previously seen secret, identified
// by the hash of its content.
type IgnoredMatch struct {
	Name  string
	Match string
}

// IaCConfig holds the settings used by the IaC scan mode.
type IaCConfig struct {
	IgnoredPaths    StringSet
	IgnoredPolicies StringSet
	MinimumSeverity string
}

// AddIgnoredMatch appends m unless an entry with the same hash already
// exists. An existing unnamed entry takes the name of m.
func (s *SecretConfig) AddIgnoredMatch(m IgnoredMatch) {
	for i := range s.IgnoredMatches {
		if s.IgnoredMatches[i].Match != m.Match {
			continue
		}
		if s.IgnoredMatches[i].Name == "" {
			s.IgnoredMatches[i].Name = m.Name
		}
		return
	}
	s.IgnoredMatches = append(s.IgnoredMatches, m)
}

// IsIgnoredMatch reports whether hash is listed in IgnoredMatches.
func (s SecretConfig) IsIgnoredMatch(hash string) bool {
	for _, m := range s.IgnoredMatches {
		if m.Match == hash {
			return true
		}
	}
	return false
}

// StringSet is an unordered set of unique strings.
type StringSet map[string]struct{}

// NewStringSet returns a set holding values.
func NewStringSet(values ...string) StringSet {
	s := make(StringSet, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts v into the set.
func (s StringSet) Add(v string) {
	s[v] = struct{}{}
}

// Has reports whether v is in the set.
func (s StringSet) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// Sorted returns the members in lexical order. Saved files use this order
// so that output is reproducible.
func (s StringSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Clone returns an independent copy of the set.
func (s StringSet) Clone() StringSet {
	out := make(StringSet, len(s))
	for v := range s {
		out[v] = struct{}{}
	}
	return out
}

// Clone returns a deep copy of c. Merge results never share collections
// with their inputs.
func (c UserConfig) Clone() UserConfig {
	out := c
	if c.Instance != nil {
		instance := *c.Instance
		out.Instance = &instance
	}
	out.Secret.IgnoredDetectors = c.Secret.IgnoredDetectors.Clone()
	out.Secret.IgnoredPaths = c.Secret.IgnoredPaths.Clone()
	out.Secret.IgnoredMatches = append([]IgnoredMatch{}, c.Secret.IgnoredMatches...)
	out.IaC.IgnoredPaths = c.IaC.IgnoredPaths.Clone()
	out.IaC.IgnoredPolicies = c.IaC.IgnoredPolicies.Clone()
	return out
}

// InstanceURL returns the configured instance, or "" when unset.
func (c UserConfig) InstanceURL() string {
	if c.Instance == nil {
		return ""
	}
	return *c.Instance
}
