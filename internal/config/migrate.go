package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// migrateV1 converts a document in the legacy flat layout into a current
// configuration. Legacy keys are mapped onto their new location:
//
//	api_url              -> instance (converted to a dashboard URL)
//	show_secrets         -> secret.show_secrets
//	banlisted_detectors  -> secret.ignored_detectors
//	matches_ignore       -> secret.ignored_matches
//	paths_ignore         -> secret.ignored_paths
//
// all_policies and ignore_default_excludes are accepted but have no effect.
// The IaC section keeps its defaults.
func migrateV1(root *yaml.Node, source string) (parsedConfig, []Warning, fieldErrors) {
	out := parsedConfig{Config: NewUserConfig(), Set: fieldSet{}}
	if root == nil {
		return out, nil, nil
	}

	d := &decoder{}
	cfg := &out.Config
	var warnings []Warning
	mark := func(path string, ok bool) {
		if ok {
			out.Set[path] = true
		}
	}

	// instance wins over api_url when both are present.
	var apiURL *yaml.Node
	hasInstance := false
	for i := 0; i+1 < len(root.Content); i += 2 {
		switch resolve(root.Content[i]).Value {
		case "api_url":
			apiURL = root.Content[i+1]
		case "instance":
			hasInstance = true
		}
	}
	if apiURL != nil && !hasInstance {
		if raw, ok := d.str(apiURL, "api_url"); ok {
			instance, stripped, err := APIToDashboardURL(raw)
			if err != nil {
				d.errs.add("api_url", "%s", err.Error())
			} else {
				cfg.Instance = &instance
				out.Set["instance"] = true
				warnings = append(warnings, Warning{
					Kind:    WarningRenamedOption,
					Source:  source,
					Field:   "api_url",
					Message: fmt.Sprintf("The `api_url` option is deprecated, use `instance: %s` instead.", instance),
				})
				if stripped {
					warnings = append(warnings, Warning{
						Kind:    WarningSuspiciousValue,
						Source:  source,
						Field:   "api_url",
						Message: fmt.Sprintf("Unexpected /v1 suffix in %s. It has been removed.", raw),
					})
				}
			}
		}
	}

	var allPolicies, ignoreDefaultExcludes bool
	d.mapping(root, "", func(key string, value *yaml.Node, path string) bool {
		var ok bool
		switch key {
		case "api_url":
			// handled above
		case "instance":
			cfg.Instance, ok = d.optionalString(value, path)
			mark("instance", ok)
		case "all_policies":
			allPolicies, _ = d.boolean(value, path)
		case "ignore_default_excludes":
			ignoreDefaultExcludes, _ = d.boolean(value, path)
		case "exit_zero":
			cfg.ExitZero, ok = d.boolean(value, path)
			mark("exit_zero", ok)
		case "verbose":
			cfg.Verbose, ok = d.boolean(value, path)
			mark("verbose", ok)
		case "allow_self_signed":
			cfg.AllowSelfSigned, ok = d.boolean(value, path)
			mark("allow_self_signed", ok)
		case "max_commits_for_hook":
			cfg.MaxCommitsForHook, ok = d.integer(value, path)
			mark("max_commits_for_hook", ok)
		case "show_secrets":
			cfg.Secret.ShowSecrets, ok = d.boolean(value, path)
			mark("secret.show_secrets", ok)
		case "banlisted_detectors":
			cfg.Secret.IgnoredDetectors, ok = d.stringSet(value, path)
			mark("secret.ignored_detectors", ok)
		case "matches_ignore":
			cfg.Secret.IgnoredMatches, ok = d.ignoredMatches(value, path, true)
			mark("secret.ignored_matches", ok)
		case "paths_ignore":
			cfg.Secret.IgnoredPaths, ok = d.stringSet(value, path)
			mark("secret.ignored_paths", ok)
		default:
			return false
		}
		return true
	})

	if len(d.errs) > 0 {
		return out, nil, d.errs
	}

	if allPolicies {
		warnings = append(warnings, Warning{
			Kind:    WarningDeprecatedOption,
			Source:  source,
			Field:   "all_policies",
			Message: "The `all_policies` option has been deprecated and is now ignored.",
		})
	}
	if ignoreDefaultExcludes {
		warnings = append(warnings, Warning{
			Kind:    WarningDeprecatedOption,
			Source:  source,
			Field:   "ignore_default_excludes",
			Message: "The `ignore_default_excludes` option has been deprecated and is now ignored.",
		})
	}

	return out, warnings, nil
}
