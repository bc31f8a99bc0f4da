package config

// mergeField copies one declared field from src onto dst.
type mergeField struct {
	path  string
	apply func(dst *UserConfig, src UserConfig)
}

// mergeFields lists every leaf field of UserConfig in declaration order.
var mergeFields = []mergeField{
	{"instance", func(dst *UserConfig, src UserConfig) {
		dst.Instance = nil
		if src.Instance != nil {
			v := *src.Instance
			dst.Instance = &v
		}
	}},
	{"exit_zero", func(dst *UserConfig, src UserConfig) { dst.ExitZero = src.ExitZero }},
	{"verbose", func(dst *UserConfig, src UserConfig) { dst.Verbose = src.Verbose }},
	{"allow_self_signed", func(dst *UserConfig, src UserConfig) { dst.AllowSelfSigned = src.AllowSelfSigned }},
	{"max_commits_for_hook", func(dst *UserConfig, src UserConfig) { dst.MaxCommitsForHook = src.MaxCommitsForHook }},
	{"secret.show_secrets", func(dst *UserConfig, src UserConfig) { dst.Secret.ShowSecrets = src.Secret.ShowSecrets }},
	{"secret.ignored_detectors", func(dst *UserConfig, src UserConfig) {
		dst.Secret.IgnoredDetectors = src.Secret.IgnoredDetectors.Clone()
	}},
	{"secret.ignored_matches", func(dst *UserConfig, src UserConfig) {
		dst.Secret.IgnoredMatches = append([]IgnoredMatch{}, src.Secret.IgnoredMatches...)
	}},
	{"secret.ignored_paths", func(dst *UserConfig, src UserConfig) {
		dst.Secret.IgnoredPaths = src.Secret.IgnoredPaths.Clone()
	}},
	{"iac.ignored_paths", func(dst *UserConfig, src UserConfig) {
		dst.IaC.IgnoredPaths = src.IaC.IgnoredPaths.Clone()
	}},
	{"iac.ignored_policies", func(dst *UserConfig, src UserConfig) {
		dst.IaC.IgnoredPolicies = src.IaC.IgnoredPolicies.Clone()
	}},
	{"iac.minimum_severity", func(dst *UserConfig, src UserConfig) { dst.IaC.MinimumSeverity = src.IaC.MinimumSeverity }},
}

// mergeConfigs returns a copy of base with every field set by overlay
// replaced by the overlay value. Collections are replaced, never unioned.
// Neither input is modified.
func mergeConfigs(base UserConfig, overlay parsedConfig) UserConfig {
	merged := base.Clone()
	for _, f := range mergeFields {
		if overlay.Set[f.path] {
			f.apply(&merged, overlay.Config)
		}
	}
	return merged
}

// foldConfigs merges layers left to right on top of the defaults.
func foldConfigs(layers []parsedConfig) UserConfig {
	cfg := NewUserConfig()
	for _, l := range layers {
		cfg = mergeConfigs(cfg, l)
	}
	return cfg
}

// Merge returns base overridden by every declared field of overlay. Use it
// when overlay is a complete configuration rather than a loaded file.
func Merge(base, overlay UserConfig) UserConfig {
	all := fieldSet{}
	for _, f := range mergeFields {
		all[f.path] = true
	}
	return mergeConfigs(base, parsedConfig{Config: overlay, Set: all})
}
