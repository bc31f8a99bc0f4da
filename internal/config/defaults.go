package config

const (
	// DefaultMaxCommitsForHook is the commit limit applied when none is configured.
	DefaultMaxCommitsForHook = 50
	// DefaultMinimumSeverity is the lowest IaC severity reported by default.
	DefaultMinimumSeverity = "LOW"
)

// IaC severities, lowest first.
var severities = []string{"LOW", "MEDIUM", "HIGH", "CRITICAL"}

// Severities returns the known IaC severities ordered from lowest to highest.
func Severities() []string {
	return append([]string{}, severities...)
}

// NewUserConfig returns a configuration holding only default values.
func NewUserConfig() UserConfig {
	return UserConfig{
		MaxCommitsForHook: DefaultMaxCommitsForHook,
		Secret: SecretConfig{
			IgnoredDetectors: NewStringSet(),
			IgnoredMatches:   []IgnoredMatch{},
			IgnoredPaths:     NewStringSet(),
		},
		IaC: IaCConfig{
			IgnoredPaths:    NewStringSet(),
			IgnoredPolicies: NewStringSet(),
			MinimumSeverity: DefaultMinimumSeverity,
		},
	}
}
