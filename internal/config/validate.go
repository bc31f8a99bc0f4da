package config

import (
	"gopkg.in/yaml.v3"
)

// parsedConfig is the result of decoding one configuration file: a full
// configuration plus the set of fields the file actually specified.
type parsedConfig struct {
	Config UserConfig
	Set    fieldSet
}

// validateV2 converts a current-version document (without its version key)
// into a configuration. Missing fields keep their defaults; unknown keys and
// wrongly typed values are reported with their field path.
func validateV2(root *yaml.Node) (parsedConfig, fieldErrors) {
	out := parsedConfig{Config: NewUserConfig(), Set: fieldSet{}}
	if root == nil {
		return out, nil
	}

	d := &decoder{}
	cfg := &out.Config
	mark := func(path string, ok bool) {
		if ok {
			out.Set[path] = true
		}
	}

	d.mapping(root, "", func(key string, value *yaml.Node, path string) bool {
		var ok bool
		switch key {
		case "instance":
			cfg.Instance, ok = d.optionalString(value, path)
		case "exit_zero":
			cfg.ExitZero, ok = d.boolean(value, path)
		case "verbose":
			cfg.Verbose, ok = d.boolean(value, path)
		case "allow_self_signed":
			cfg.AllowSelfSigned, ok = d.boolean(value, path)
		case "max_commits_for_hook":
			cfg.MaxCommitsForHook, ok = d.integer(value, path)
		case "secret":
			d.mapping(value, path, func(key string, value *yaml.Node, path string) bool {
				var ok bool
				switch key {
				case "show_secrets":
					cfg.Secret.ShowSecrets, ok = d.boolean(value, path)
				case "ignored_detectors":
					cfg.Secret.IgnoredDetectors, ok = d.stringSet(value, path)
				case "ignored_matches":
					cfg.Secret.IgnoredMatches, ok = d.ignoredMatches(value, path, false)
				case "ignored_paths":
					cfg.Secret.IgnoredPaths, ok = d.stringSet(value, path)
				default:
					return false
				}
				mark(path, ok)
				return true
			})
			return true
		case "iac":
			d.mapping(value, path, func(key string, value *yaml.Node, path string) bool {
				var ok bool
				switch key {
				case "ignored_paths":
					cfg.IaC.IgnoredPaths, ok = d.stringSet(value, path)
				case "ignored_policies":
					cfg.IaC.IgnoredPolicies, ok = d.stringSet(value, path)
				case "minimum_severity":
					cfg.IaC.MinimumSeverity, ok = d.severity(value, path)
				default:
					return false
				}
				mark(path, ok)
				return true
			})
			return true
		default:
			return false
		}
		mark(path, ok)
		return true
	})

	return out, d.errs
}
