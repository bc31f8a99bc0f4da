package config

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// fieldSet records the dotted paths of the fields a document explicitly set.
type fieldSet map[string]bool

// decoder walks a YAML node tree, converting scalars with strict typing and
// collecting every failure instead of stopping at the first.
type decoder struct {
	errs fieldErrors
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

// mapping calls fn for every key of n. fn returns false for keys it does
// not know, which are reported as unknown fields.
func (d *decoder) mapping(n *yaml.Node, path string, fn func(key string, value *yaml.Node, keyPath string) bool) bool {
	n = resolve(n)
	if isNull(n) {
		d.errs.add(path, "Field may not be null.")
		return false
	}
	if n.Kind != yaml.MappingNode {
		d.errs.add(path, "Invalid input type.")
		return false
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := resolve(n.Content[i]).Value
		keyPath := joinPath(path, key)
		if !fn(key, resolve(n.Content[i+1]), keyPath) {
			d.errs.add(keyPath, "Unknown field.")
		}
	}
	return true
}

func (d *decoder) boolean(n *yaml.Node, path string) (bool, bool) {
	n = resolve(n)
	if isNull(n) {
		d.errs.add(path, "Field may not be null.")
		return false, false
	}
	if n.Kind != yaml.ScalarNode || n.ShortTag() != "!!bool" {
		d.errs.add(path, "Not a valid boolean.")
		return false, false
	}
	v, err := strconv.ParseBool(strings.ToLower(n.Value))
	if err != nil {
		d.errs.add(path, "Not a valid boolean.")
		return false, false
	}
	return v, true
}

func (d *decoder) integer(n *yaml.Node, path string) (int, bool) {
	n = resolve(n)
	if isNull(n) {
		d.errs.add(path, "Field may not be null.")
		return 0, false
	}
	if n.Kind != yaml.ScalarNode || n.ShortTag() != "!!int" {
		d.errs.add(path, "Not a valid integer.")
		return 0, false
	}
	v, err := strconv.ParseInt(n.Value, 0, strconv.IntSize)
	if err != nil {
		d.errs.add(path, "Not a valid integer.")
		return 0, false
	}
	return int(v), true
}

func (d *decoder) str(n *yaml.Node, path string) (string, bool) {
	n = resolve(n)
	if isNull(n) {
		d.errs.add(path, "Field may not be null.")
		return "", false
	}
	if n.Kind != yaml.ScalarNode || n.ShortTag() != "!!str" {
		d.errs.add(path, "Not a valid string.")
		return "", false
	}
	return n.Value, true
}

// optionalString accepts null as "unset".
func (d *decoder) optionalString(n *yaml.Node, path string) (*string, bool) {
	if isNull(resolve(n)) {
		return nil, true
	}
	v, ok := d.str(n, path)
	if !ok {
		return nil, false
	}
	return &v, true
}

func (d *decoder) stringSet(n *yaml.Node, path string) (StringSet, bool) {
	n = resolve(n)
	if isNull(n) {
		d.errs.add(path, "Field may not be null.")
		return nil, false
	}
	if n.Kind != yaml.SequenceNode {
		d.errs.add(path, "Not a valid list.")
		return nil, false
	}
	set := NewStringSet()
	ok := true
	for i, item := range n.Content {
		v, itemOK := d.str(item, joinPath(path, strconv.Itoa(i)))
		if !itemOK {
			ok = false
			continue
		}
		set.Add(v)
	}
	return set, ok
}

// ignoredMatches decodes a list of {name, match} objects. With allowBare,
// plain hash strings are accepted and given an empty name.
func (d *decoder) ignoredMatches(n *yaml.Node, path string, allowBare bool) ([]IgnoredMatch, bool) {
	n = resolve(n)
	if isNull(n) {
		d.errs.add(path, "Field may not be null.")
		return nil, false
	}
	if n.Kind != yaml.SequenceNode {
		d.errs.add(path, "Not a valid list.")
		return nil, false
	}
	matches := make([]IgnoredMatch, 0, len(n.Content))
	ok := true
	for i, item := range n.Content {
		itemPath := joinPath(path, strconv.Itoa(i))
		item = resolve(item)
		if allowBare && item.Kind == yaml.ScalarNode && item.ShortTag() == "!!str" {
			matches = append(matches, IgnoredMatch{Name: "", Match: item.Value})
			continue
		}
		m, itemOK := d.ignoredMatch(item, itemPath)
		if !itemOK {
			ok = false
			continue
		}
		matches = append(matches, m)
	}
	return matches, ok
}

func (d *decoder) ignoredMatch(n *yaml.Node, path string) (IgnoredMatch, bool) {
	var m IgnoredMatch
	before := len(d.errs)
	hasMatch := false
	if !d.mapping(n, path, func(key string, value *yaml.Node, keyPath string) bool {
		switch key {
		case "name":
			if isNull(value) {
				return true
			}
			m.Name, _ = d.str(value, keyPath)
		case "match":
			hasMatch = true
			m.Match, _ = d.str(value, keyPath)
		default:
			return false
		}
		return true
	}) {
		return m, false
	}
	if !hasMatch {
		d.errs.add(joinPath(path, "match"), "Missing data for required field.")
	}
	return m, len(d.errs) == before
}

func (d *decoder) severity(n *yaml.Node, path string) (string, bool) {
	v, ok := d.str(n, path)
	if !ok {
		return "", false
	}
	upper := strings.ToUpper(v)
	for _, s := range severities {
		if s == upper {
			return upper, true
		}
	}
	d.errs.add(path, "Must be one of: %s.", strings.Join(severities, ", "))
	return "", false
}
