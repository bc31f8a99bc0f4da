package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// For mocking in tests
var osUserHomeDir = homedir.Dir
var osGetwd = os.Getwd

// Candidate file names, in lookup order. The first existing file of each
// tier is used.
var (
	globalConfigFilenames = []string{".gitguardian", ".gitguardian.yml", ".gitguardian.yaml"}
	localConfigFilenames  = []string{".gitguardian", ".gitguardian.yml", ".gitguardian.yaml"}
)

// DefaultLocalConfigFilename is where a new local configuration is saved.
const DefaultLocalConfigFilename = ".gitguardian.yaml"

// Paths is the outcome of configuration file discovery.
type Paths struct {
	// Files lists the existing files to load, lowest precedence first.
	Files []string
	// SavePath is where updates should be written.
	SavePath string
	// Warnings holds non-fatal discovery problems.
	Warnings []Warning
}

// ResolvePaths discovers the configuration files to load. A non-empty
// explicit path disables discovery: it is the only file loaded (if it
// exists) and the save location.
func ResolvePaths(explicit string) (Paths, error) {
	if explicit != "" {
		p := Paths{SavePath: explicit}
		if fileExists(explicit) {
			p.Files = []string{explicit}
		}
		return p, nil
	}

	var p Paths

	globalPath, err := getGlobalConfigPath()
	if err != nil {
		// The global tier is optional
		p.Warnings = append(p.Warnings, Warning{
			Kind:    WarningDiscovery,
			Message: fmt.Sprintf("Could not determine global config path: %v", err),
		})
	} else if globalPath != "" {
		p.Files = append(p.Files, globalPath)
	}

	wd, err := osGetwd()
	if err != nil {
		return Paths{}, fmt.Errorf("could not determine working directory: %w", err)
	}
	localPath := firstExisting(wd, localConfigFilenames)
	if localPath != "" {
		p.Files = append(p.Files, localPath)
		p.SavePath = localPath
	} else {
		p.SavePath = filepath.Join(wd, DefaultLocalConfigFilename)
	}

	return p, nil
}

// getGlobalConfigPath returns the first existing global file, or "" if
// there is none.
var getGlobalConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return firstExisting(homeDir, globalConfigFilenames), nil
}

func firstExisting(dir string, names []string) string {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
