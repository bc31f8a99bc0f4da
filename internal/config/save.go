package config

import (
	"gopkg.in/yaml.v3"
)

// dumpConfig renders every field of c as a mapping node in declaration
// order. Sets are written sorted.
func dumpConfig(c UserConfig) *yaml.Node {
	root := mappingNode()

	if c.Instance != nil {
		setPair(root, "instance", stringNode(*c.Instance))
	} else {
		setPair(root, "instance", nullNode())
	}
	setPair(root, "exit_zero", boolNode(c.ExitZero))
	setPair(root, "verbose", boolNode(c.Verbose))
	setPair(root, "allow_self_signed", boolNode(c.AllowSelfSigned))
	setPair(root, "max_commits_for_hook", intNode(c.MaxCommitsForHook))

	secret := mappingNode()
	setPair(secret, "show_secrets", boolNode(c.Secret.ShowSecrets))
	setPair(secret, "ignored_detectors", stringSeqNode(c.Secret.IgnoredDetectors.Sorted()))
	matches := sequenceNode()
	for _, m := range c.Secret.IgnoredMatches {
		entry := mappingNode()
		setPair(entry, "name", stringNode(m.Name))
		setPair(entry, "match", stringNode(m.Match))
		matches.Content = append(matches.Content, entry)
	}
	setPair(secret, "ignored_matches", matches)
	setPair(secret, "ignored_paths", stringSeqNode(c.Secret.IgnoredPaths.Sorted()))
	setPair(root, "secret", secret)

	iac := mappingNode()
	setPair(iac, "ignored_paths", stringSeqNode(c.IaC.IgnoredPaths.Sorted()))
	setPair(iac, "ignored_policies", stringSeqNode(c.IaC.IgnoredPolicies.Sorted()))
	setPair(iac, "minimum_severity", stringNode(c.IaC.MinimumSeverity))
	setPair(root, "iac", iac)
	return root
}

// nodesEqual reports structural equality of two node trees: same kind,
// same resolved tag and value for scalars, and pairwise equal children.
func nodesEqual(a, b *yaml.Node) bool {
	a, b = resolve(a), resolve(b)
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == yaml.ScalarNode {
		return a.ShortTag() == b.ShortTag() && a.Value == b.Value
	}
	if len(a.Content) != len(b.Content) {
		return false
	}
	for i := range a.Content {
		if !nodesEqual(a.Content[i], b.Content[i]) {
			return false
		}
	}
	return true
}

func lookup(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

// pruneDefaults returns a copy of doc without the pairs whose value equals
// the value at the same path in ref. Nested mappings are pruned
// recursively and dropped once empty.
func pruneDefaults(doc, ref *yaml.Node) *yaml.Node {
	out := mappingNode()
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, value := doc.Content[i], doc.Content[i+1]
		refValue := lookup(ref, key.Value)
		if refValue == nil {
			out.Content = append(out.Content, key, value)
			continue
		}
		if value.Kind == yaml.MappingNode && refValue.Kind == yaml.MappingNode {
			pruned := pruneDefaults(value, refValue)
			if len(pruned.Content) > 0 {
				out.Content = append(out.Content, key, pruned)
			}
			continue
		}
		if !nodesEqual(value, refValue) {
			out.Content = append(out.Content, key, value)
		}
	}
	return out
}

// SaveDocument returns the document Save would write for c: the fields that
// differ from a default configuration, preceded by the version tag.
func SaveDocument(c UserConfig) *yaml.Node {
	pruned := pruneDefaults(dumpConfig(c), dumpConfig(NewUserConfig()))
	doc := mappingNode()
	setPair(doc, "version", intNode(CurrentConfigVersion))
	doc.Content = append(doc.Content, pruned.Content...)
	return doc
}

// Marshal renders the save document of c as YAML.
func Marshal(c UserConfig) ([]byte, error) {
	return encodeYAML(SaveDocument(c))
}

// MarshalFull renders every field of c, including defaults, as YAML.
func MarshalFull(c UserConfig) ([]byte, error) {
	return encodeYAML(dumpConfig(c))
}

// Save writes the non-default fields of c to path.
func Save(c UserConfig, path string) error {
	return saveYAML(SaveDocument(c), path)
}
