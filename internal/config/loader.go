package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"gopkg.in/yaml.v3"
)

// LoadResult is a fully merged configuration along with where it came from.
type LoadResult struct {
	Config UserConfig
	// SavePath is the file updates should be written to.
	SavePath string
	// Sources lists the files that were loaded, lowest precedence first.
	Sources []string
	// Warnings holds the non-fatal diagnostics raised while loading.
	Warnings []Warning
}

// Load builds the user configuration by layering the global file, then the
// local file, on top of the defaults. When explicitPath is set, only that
// file is read and it becomes the save location.
//
// Missing files are skipped. Any other failure aborts the whole load: no
// partially merged configuration is ever returned.
func Load(explicitPath string) (LoadResult, error) {
	paths, err := ResolvePaths(explicitPath)
	if err != nil {
		return LoadResult{}, err
	}

	warnings := append([]Warning{}, paths.Warnings...)
	layers := make([]parsedConfig, 0, len(paths.Files))
	for _, path := range paths.Files {
		layer, w, err := loadFile(path)
		if err != nil {
			return LoadResult{}, err
		}
		layers = append(layers, layer)
		warnings = append(warnings, w...)
	}

	return LoadResult{
		Config:   foldConfigs(layers),
		SavePath: paths.SavePath,
		Sources:  paths.Files,
		Warnings: warnings,
	}, nil
}

// LoadFile reads a single configuration file on top of the defaults. A
// missing file yields the default configuration.
func LoadFile(path string) (UserConfig, []Warning, error) {
	layer, warnings, err := loadFile(path)
	if err != nil {
		return UserConfig{}, nil, err
	}
	return foldConfigs([]parsedConfig{layer}), warnings, nil
}

func loadFile(path string) (parsedConfig, []Warning, error) {
	root, err := loadYAML(path)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			return parsedConfig{}, nil, err
		}
		if errors.Is(err, fs.ErrNotExist) {
			return parsedConfig{Set: fieldSet{}}, nil, nil
		}
		return parsedConfig{}, nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	// An empty file, or an empty mapping, is an empty current-version document.
	version := CurrentConfigVersion
	if root != nil && len(root.Content) > 0 {
		root, version, err = popVersion(root, path)
		if err != nil {
			return parsedConfig{}, nil, err
		}
	}

	var (
		layer    parsedConfig
		warnings []Warning
		errs     fieldErrors
	)
	switch version {
	case 2:
		layer, errs = validateV2(root)
	case 1:
		warnings = append(warnings, Warning{
			Kind:    WarningDeprecatedFormat,
			Source:  path,
			Message: "This file uses a deprecated configuration file format. Run `ggshield config update` to update it.",
		})
		var w []Warning
		layer, w, errs = migrateV1(root, path)
		warnings = append(warnings, w...)
	}
	if len(errs) > 0 {
		return parsedConfig{}, nil, &ParseError{Path: path, Fields: errs}
	}
	return layer, warnings, nil
}

// popVersion returns root without its version key, and the version it held.
// Documents without a version key predate versioning and are version 1.
func popVersion(root *yaml.Node, path string) (*yaml.Node, int, error) {
	stripped := *root
	stripped.Content = make([]*yaml.Node, 0, len(root.Content))

	var versionNode *yaml.Node
	for i := 0; i+1 < len(root.Content); i += 2 {
		if resolve(root.Content[i]).Value == "version" {
			versionNode = resolve(root.Content[i+1])
			continue
		}
		stripped.Content = append(stripped.Content, root.Content[i], root.Content[i+1])
	}
	if versionNode == nil {
		return &stripped, 1, nil
	}

	if versionNode.Kind == yaml.ScalarNode && versionNode.ShortTag() == "!!int" {
		v, err := strconv.Atoi(versionNode.Value)
		if err == nil && (v == 1 || v == 2) {
			return &stripped, v, nil
		}
	}
	return nil, 0, &UnsupportedVersionError{Path: path, Version: versionNode.Value}
}
