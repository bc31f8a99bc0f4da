package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddIgnoredMatch(t *testing.T) {
	tests := []struct {
		name     string
		adds     []IgnoredMatch
		expected []IgnoredMatch
	}{
		{
			name:     "unnamed then named adopts the name",
			adds:     []IgnoredMatch{{Name: "", Match: "h"}, {Name: "x", Match: "h"}},
			expected: []IgnoredMatch{{Name: "x", Match: "h"}},
		},
		{
			name:     "named then unnamed keeps the name",
			adds:     []IgnoredMatch{{Name: "x", Match: "h"}, {Name: "", Match: "h"}},
			expected: []IgnoredMatch{{Name: "x", Match: "h"}},
		},
		{
			name:     "named then renamed is a no-op",
			adds:     []IgnoredMatch{{Name: "x", Match: "h"}, {Name: "y", Match: "h"}},
			expected: []IgnoredMatch{{Name: "x", Match: "h"}},
		},
		{
			name:     "distinct hashes keep insertion order",
			adds:     []IgnoredMatch{{Name: "b", Match: "2"}, {Name: "a", Match: "1"}},
			expected: []IgnoredMatch{{Name: "b", Match: "2"}, {Name: "a", Match: "1"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewUserConfig().Secret
			for _, m := range tt.adds {
				s.AddIgnoredMatch(m)
			}
			assert.Equal(t, tt.expected, s.IgnoredMatches)
			for _, m := range tt.expected {
				assert.True(t, s.IsIgnoredMatch(m.Match))
			}
			assert.False(t, s.IsIgnoredMatch("unknown"))
		})
	}
}

func TestStringSet(t *testing.T) {
	s := NewStringSet("b", "a", "b")
	assert.Len(t, s, 2)
	assert.True(t, s.Has("a"))
	assert.False(t, s.Has("c"))
	assert.Equal(t, []string{"a", "b"}, s.Sorted())

	clone := s.Clone()
	clone.Add("c")
	assert.False(t, s.Has("c"))

	var empty StringSet
	assert.Empty(t, empty.Sorted())
	assert.NotNil(t, empty.Clone())
}

func TestUserConfigClone(t *testing.T) {
	cfg := NewUserConfig()
	cfg.Instance = strPtr("https://dashboard.example.com")
	cfg.Secret.AddIgnoredMatch(IgnoredMatch{Match: "h"})

	clone := cfg.Clone()
	assert.Equal(t, cfg, clone)

	*clone.Instance = "other"
	clone.Secret.IgnoredMatches[0].Name = "renamed"
	clone.IaC.IgnoredPolicies.Add("P")

	assert.Equal(t, "https://dashboard.example.com", cfg.InstanceURL())
	assert.Equal(t, "", cfg.Secret.IgnoredMatches[0].Name)
	assert.False(t, cfg.IaC.IgnoredPolicies.Has("P"))
}

func TestSeverities(t *testing.T) {
	s := Severities()
	s[0] = "changed"
	assert.Equal(t, []string{"LOW", "MEDIUM", "HIGH", "CRITICAL"}, Severities())
}
