package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func warningFields(warnings []Warning) []string {
	fields := make([]string, 0, len(warnings))
	for _, w := range warnings {
		fields = append(fields, w.Field)
	}
	return fields
}

func TestMigrateV1_APIURLAndBareHashes(t *testing.T) {
	root := parseDoc(t, `
api_url: https://api.gitguardian.com
matches_ignore:
  - deadbeef
`)

	parsed, warnings, errs := migrateV1(root, "legacy.yaml")
	require.Empty(t, errs)

	assert.Equal(t, "https://dashboard.gitguardian.com", parsed.Config.InstanceURL())
	assert.Equal(t, []IgnoredMatch{{Name: "", Match: "deadbeef"}}, parsed.Config.Secret.IgnoredMatches)
	require.Len(t, warnings, 1)
	assert.Equal(t, WarningRenamedOption, warnings[0].Kind)
	assert.Equal(t, "legacy.yaml", warnings[0].Source)
	assert.True(t, parsed.Set["instance"])
	assert.True(t, parsed.Set["secret.ignored_matches"])
}

func TestMigrateV1_InstanceWinsOverAPIURL(t *testing.T) {
	root := parseDoc(t, `
api_url: https://api.gitguardian.com
instance: https://dashboard.example.com
`)

	parsed, warnings, errs := migrateV1(root, "legacy.yaml")
	require.Empty(t, errs)

	assert.Equal(t, "https://dashboard.example.com", parsed.Config.InstanceURL())
	assert.Empty(t, warnings)
}

func TestMigrateV1_FieldMapping(t *testing.T) {
	root := parseDoc(t, `
exit_zero: true
verbose: true
allow_self_signed: true
max_commits_for_hook: 12
show_secrets: true
banlisted_detectors: [generic_password]
paths_ignore: [vendor/, docs/]
matches_ignore:
  - name: known
    match: cafe
  - babe
`)

	parsed, warnings, errs := migrateV1(root, "legacy.yaml")
	require.Empty(t, errs)
	assert.Empty(t, warnings)

	cfg := parsed.Config
	assert.Nil(t, cfg.Instance)
	assert.True(t, cfg.ExitZero)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.AllowSelfSigned)
	assert.Equal(t, 12, cfg.MaxCommitsForHook)
	assert.True(t, cfg.Secret.ShowSecrets)
	assert.Equal(t, NewStringSet("generic_password"), cfg.Secret.IgnoredDetectors)
	assert.Equal(t, NewStringSet("vendor/", "docs/"), cfg.Secret.IgnoredPaths)
	assert.Equal(t, []IgnoredMatch{{Name: "known", Match: "cafe"}, {Name: "", Match: "babe"}}, cfg.Secret.IgnoredMatches)
	assert.Equal(t, NewUserConfig().IaC, cfg.IaC)

	assert.Equal(t, fieldSet{
		"exit_zero":                true,
		"verbose":                  true,
		"allow_self_signed":        true,
		"max_commits_for_hook":     true,
		"secret.show_secrets":      true,
		"secret.ignored_detectors": true,
		"secret.ignored_paths":     true,
		"secret.ignored_matches":   true,
	}, parsed.Set)
}

func TestMigrateV1_DeprecatedOptions(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		fields []string
	}{
		{"all_policies enabled", "all_policies: true", []string{"all_policies"}},
		{"all_policies disabled", "all_policies: false", []string{}},
		{"ignore_default_excludes enabled", "ignore_default_excludes: true", []string{"ignore_default_excludes"}},
		{"both", "all_policies: true\nignore_default_excludes: true", []string{"all_policies", "ignore_default_excludes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, warnings, errs := migrateV1(parseDoc(t, tt.doc), "legacy.yaml")
			require.Empty(t, errs)
			assert.Equal(t, tt.fields, warningFields(warnings))
			assert.Equal(t, NewUserConfig(), parsed.Config, "deprecated options have no effect")
			assert.Empty(t, parsed.Set)
		})
	}
}

func TestMigrateV1_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		path string
	}{
		{"api_url protocol", "api_url: ftp://api.gitguardian.com", "api_url"},
		{"api_url type", "api_url: 3", "api_url"},
		{"matches_ignore entry type", "matches_ignore: [3]", "matches_ignore.0"},
		{"matches_ignore type", "matches_ignore: deadbeef", "matches_ignore"},
		{"paths_ignore type", "paths_ignore: {a: b}", "paths_ignore"},
		{"all_policies type", "all_policies: sometimes", "all_policies"},
		{"current-format key", "secret: {}", "secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, warnings, errs := migrateV1(parseDoc(t, tt.doc), "legacy.yaml")
			require.Len(t, errs, 1, "errors: %v", errs)
			assert.Equal(t, tt.path, errs[0].Path)
			assert.Nil(t, warnings)
		})
	}
}

func TestLoadFile_LegacyThroughVersionOne(t *testing.T) {
	path := writeConfigFile(t, t.TempDir(), "legacy.yaml", `
version: 1
api_url: https://api.eu1.gitguardian.com/v1
all_policies: true
`)

	cfg, warnings, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "https://dashboard.eu1.gitguardian.com", cfg.InstanceURL())
	kinds := make([]WarningKind, 0, len(warnings))
	for _, w := range warnings {
		kinds = append(kinds, w.Kind)
	}
	assert.Equal(t, []WarningKind{
		WarningDeprecatedFormat,
		WarningRenamedOption,
		WarningSuspiciousValue,
		WarningDeprecatedOption,
	}, kinds)
}
