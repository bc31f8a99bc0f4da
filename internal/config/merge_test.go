package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestMergeConfigs(t *testing.T) {
	t.Run("later tier wins for fields it sets", func(t *testing.T) {
		a := parsedConfig{Config: NewUserConfig(), Set: fieldSet{}}
		b := parsedConfig{Config: NewUserConfig(), Set: fieldSet{"exit_zero": true}}
		b.Config.ExitZero = true

		cfg := foldConfigs([]parsedConfig{a, b})
		assert.True(t, cfg.ExitZero)
	})

	t.Run("unset everywhere keeps the default", func(t *testing.T) {
		a := parsedConfig{Config: NewUserConfig(), Set: fieldSet{"verbose": true}}
		a.Config.Verbose = true
		b := parsedConfig{Config: NewUserConfig(), Set: fieldSet{}}

		cfg := foldConfigs([]parsedConfig{a, b})
		assert.Equal(t, DefaultMaxCommitsForHook, cfg.MaxCommitsForHook)
		assert.Equal(t, DefaultMinimumSeverity, cfg.IaC.MinimumSeverity)
		assert.True(t, cfg.Verbose, "earlier tier survives when the later one is silent")
	})

	t.Run("explicit default value still overrides", func(t *testing.T) {
		a := parsedConfig{Config: NewUserConfig(), Set: fieldSet{"max_commits_for_hook": true}}
		a.Config.MaxCommitsForHook = 10
		b := parsedConfig{Config: NewUserConfig(), Set: fieldSet{"max_commits_for_hook": true}}

		cfg := foldConfigs([]parsedConfig{a, b})
		assert.Equal(t, DefaultMaxCommitsForHook, cfg.MaxCommitsForHook)
	})

	t.Run("collections are replaced not unioned", func(t *testing.T) {
		a := parsedConfig{Config: NewUserConfig(), Set: fieldSet{"iac.ignored_policies": true, "secret.ignored_matches": true}}
		a.Config.IaC.IgnoredPolicies = NewStringSet("P1", "P2")
		a.Config.Secret.IgnoredMatches = []IgnoredMatch{{Match: "one"}}
		b := parsedConfig{Config: NewUserConfig(), Set: fieldSet{"iac.ignored_policies": true}}
		b.Config.IaC.IgnoredPolicies = NewStringSet("P3")

		cfg := foldConfigs([]parsedConfig{a, b})
		assert.Equal(t, NewStringSet("P3"), cfg.IaC.IgnoredPolicies)
		assert.Equal(t, []IgnoredMatch{{Match: "one"}}, cfg.Secret.IgnoredMatches)
	})

	t.Run("instance can be reset to null", func(t *testing.T) {
		a := parsedConfig{Config: NewUserConfig(), Set: fieldSet{"instance": true}}
		a.Config.Instance = strPtr("https://dashboard.example.com")
		b := parsedConfig{Config: NewUserConfig(), Set: fieldSet{"instance": true}}

		cfg := foldConfigs([]parsedConfig{a, b})
		assert.Nil(t, cfg.Instance)
	})
}

func TestMergeConfigs_DoesNotAliasInputs(t *testing.T) {
	base := NewUserConfig()
	base.Secret.IgnoredPaths.Add("base/")

	overlay := parsedConfig{Config: NewUserConfig(), Set: fieldSet{"iac.ignored_paths": true, "instance": true}}
	overlay.Config.IaC.IgnoredPaths.Add("overlay/")
	overlay.Config.Instance = strPtr("https://dashboard.example.com")

	merged := mergeConfigs(base, overlay)
	merged.Secret.IgnoredPaths.Add("merged/")
	merged.IaC.IgnoredPaths.Add("merged/")
	*merged.Instance = "changed"

	assert.Equal(t, NewStringSet("base/"), base.Secret.IgnoredPaths)
	assert.Equal(t, NewStringSet("overlay/"), overlay.Config.IaC.IgnoredPaths)
	assert.Equal(t, "https://dashboard.example.com", *overlay.Config.Instance)
}

func TestMerge_OverridesEveryField(t *testing.T) {
	base := NewUserConfig()
	base.ExitZero = true
	base.Secret.IgnoredDetectors.Add("x")

	overlay := NewUserConfig()
	overlay.Verbose = true

	merged := Merge(base, overlay)
	assert.Equal(t, overlay, merged)
}
