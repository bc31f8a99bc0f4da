// Package iac selects the files and findings relevant to an IaC scan,
// according to the iac section of the user configuration.
//
// It is a library for the IaC scan commands: they build a Filter from the
// loaded UserConfig.IaC, pass the candidate files of a scan through
// Filter.Files, and drop findings for which Filter.Reports is false. The
// package does not walk directories or talk to the scanning API itself.
package iac

import (
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"ggshield/internal/config"
)

// File name suffixes of IaC files.
var iacExtensions = []string{
	".json",
	".yml",
	".yaml",
	".jinja",
	".py",
	".py.schema",
	".jinja.schema",
	".tf",
}

// Keywords that mark a file as IaC when they appear in its name.
var iacFilenameKeywords = []string{"tfvars", "dockerfile"}

// IsIaCFile reports whether path looks like an infrastructure-as-code file.
func IsIaCFile(path string) bool {
	name := strings.ToLower(filepath.Base(path))
	for _, ext := range iacExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	for _, keyword := range iacFilenameKeywords {
		if strings.Contains(name, keyword) {
			return true
		}
	}
	return false
}

// Filter applies the iac settings of a user configuration.
type Filter struct {
	matcher         gitignore.Matcher
	ignoredPolicies config.StringSet
	minimumRank     int
}

// NewFilter builds a Filter from cfg. ignored_paths entries use gitignore
// pattern syntax, relative to the scan root.
func NewFilter(cfg config.IaCConfig) *Filter {
	var patterns []gitignore.Pattern
	for _, p := range cfg.IgnoredPaths.Sorted() {
		p = strings.TrimSpace(filepath.ToSlash(p))
		if p == "" || strings.HasPrefix(p, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(p, nil))
	}

	rank := severityRank(cfg.MinimumSeverity)
	if rank < 0 {
		rank = 0
	}

	return &Filter{
		matcher:         gitignore.NewMatcher(patterns),
		ignoredPolicies: cfg.IgnoredPolicies.Clone(),
		minimumRank:     rank,
	}
}

// IsIgnoredPath reports whether relPath (relative to the scan root) matches
// one of the ignored path patterns.
func (f *Filter) IsIgnoredPath(relPath string, isDir bool) bool {
	relPath = strings.TrimPrefix(filepath.ToSlash(filepath.Clean(relPath)), "./")
	if relPath == "." || relPath == "" {
		return false
	}
	return f.matcher.Match(strings.Split(relPath, "/"), isDir)
}

// Files returns the IaC files of relPaths that are not ignored, keeping
// their order.
func (f *Filter) Files(relPaths []string) []string {
	out := make([]string, 0, len(relPaths))
	for _, p := range relPaths {
		if IsIaCFile(p) && !f.IsIgnoredPath(p, false) {
			out = append(out, p)
		}
	}
	return out
}

// IsIgnoredPolicy reports whether findings of policyID are suppressed.
func (f *Filter) IsIgnoredPolicy(policyID string) bool {
	return f.ignoredPolicies.Has(policyID)
}

// Reports reports whether a finding for policyID with the given severity
// should be shown. Unknown severities are always shown.
func (f *Filter) Reports(policyID, severity string) bool {
	if f.IsIgnoredPolicy(policyID) {
		return false
	}
	rank := severityRank(severity)
	return rank < 0 || rank >= f.minimumRank
}

func severityRank(severity string) int {
	upper := strings.ToUpper(severity)
	for i, s := range config.Severities() {
		if s == upper {
			return i
		}
	}
	return -1
}
