// Package config provides user configuration management for ggshield.
//
// This package implements a layered configuration system that allows users to
// customize ggshield's behavior through YAML files. Configuration is loaded
// from multiple sources and merged in a specific order, with later sources
// overriding earlier ones.
//
// # Configuration Layers
//
// Configuration is loaded and merged in the following order:
//
//  1. Default Configuration (built into the binary)
//
//  2. Global Configuration (~/.gitguardian.yaml)
//     - The first existing file among .gitguardian, .gitguardian.yml and
//     .gitguardian.yaml in the home directory
//
//  3. Local Configuration (./.gitguardian.yaml)
//     - The first existing file among the same names in the working directory
//     - Also the file updates are saved to (./.gitguardian.yaml if none exists)
//
// An explicit path replaces both tiers: only that file is read, and it is
// where updates are saved.
//
// A tier overrides exactly the fields its file sets. Lists are replaced as
// a whole: a local ignored_paths list does not extend the global one.
//
// # Configuration Structure
//
//	version: 2
//	instance: https://dashboard.gitguardian.com
//	exit_zero: false
//	verbose: false
//	allow_self_signed: false
//	max_commits_for_hook: 50
//	secret:
//	  show_secrets: false
//	  ignored_detectors: [generic_password]
//	  ignored_matches:
//	    - name: test token
//	      match: 530e5a4a7ea00814db8845dd0cae5efaa4b974a3ce1c76d0384ba715248a5dc1
//	  ignored_paths: [tests/fixtures/]
//	iac:
//	  ignored_paths: [terraform/legacy/]
//	  ignored_policies: [GG_IAC_0001]
//	  minimum_severity: MEDIUM
//
// # Legacy Format
//
// Files without a version key, or with version 1, use the legacy flat layout
// (api_url, matches_ignore, paths_ignore, banlisted_detectors, ...). They are
// converted on load and a deprecation warning is returned. Saving always
// writes the current layout.
//
// # Saving
//
// Only the fields that differ from the defaults are written, followed by
// the version tag. Empty lists are indistinguishable from unset ones and are
// never written.
//
// # Usage Example
//
//	res, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	for _, w := range res.Warnings {
//	    fmt.Fprintln(os.Stderr, w)
//	}
//	res.Config.Secret.AddIgnoredMatch(config.IgnoredMatch{Name: "x", Match: hash})
//	return config.Save(res.Config, res.SavePath)
package config
