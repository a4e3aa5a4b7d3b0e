// Package config resolves where the validator looks for its inputs.
//
// Defaults mirror the repository layout in pkg/constants. An optional YAML
// file (.github/solutions-check.yml) may override any of them:
//
//	solutions-file: solutions.json
//	solutions-dir: solutions
//	workflows:
//	  - .github/workflows/export-solution-from-dev.yml
//	markers:
//	  start: GENERATED-OPTIONS-START
//	  end: GENERATED-OPTIONS-END
//	sentinel: <none>
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/solutionops/solutions-check/pkg/constants"
	"github.com/solutionops/solutions-check/pkg/fileutil"
	"github.com/solutionops/solutions-check/pkg/logger"
)

var configLog = logger.New("config:config")

// Config is the resolved set of inputs for one validation pass.
// Paths other than RootDir are relative to RootDir unless absolute.
type Config struct {
	RootDir       string
	SolutionsFile string
	SolutionsDir  string
	Workflows     []string
	StartMarker   constants.Marker
	EndMarker     constants.Marker
	Sentinel      string
}

// fileConfig is the on-disk shape. Pointer fields distinguish "absent" from "empty".
type fileConfig struct {
	SolutionsFile *string      `yaml:"solutions-file"`
	SolutionsDir  *string      `yaml:"solutions-dir"`
	Workflows     *[]string    `yaml:"workflows"`
	Markers       *fileMarkers `yaml:"markers"`
	Sentinel      *string      `yaml:"sentinel"`
}

type fileMarkers struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// Default returns the built-in configuration rooted at rootDir.
func Default(rootDir string) *Config {
	if rootDir == "" {
		rootDir = "."
	}
	return &Config{
		RootDir:       rootDir,
		SolutionsFile: constants.SolutionsFileName,
		SolutionsDir:  constants.SolutionsDirName,
		Workflows:     slices.Clone(constants.SyncedWorkflows),
		StartMarker:   constants.GeneratedOptionsStart,
		EndMarker:     constants.GeneratedOptionsEnd,
		Sentinel:      constants.NoneOption,
	}
}

// Load builds the configuration for rootDir.
//
// When configPath is empty the default config file is tried and silently
// skipped if absent. An explicitly named file must exist.
func Load(rootDir, configPath string) (*Config, error) {
	cfg := Default(rootDir)

	explicit := configPath != ""
	if !explicit {
		configPath = constants.DefaultConfigFile
	}
	path := fileutil.Resolve(cfg.RootDir, configPath)

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			configLog.Printf("No config file at %s, using defaults", path)
			return cfg, cfg.Validate()
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	configLog.Printf("Loading config file: %s", path)
	if err := cfg.apply(content); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) apply(content []byte) error {
	var fc fileConfig
	if err := yaml.UnmarshalWithOptions(content, &fc, yaml.DisallowUnknownField()); err != nil {
		return err
	}

	if fc.SolutionsFile != nil {
		c.SolutionsFile = *fc.SolutionsFile
	}
	if fc.SolutionsDir != nil {
		c.SolutionsDir = *fc.SolutionsDir
	}
	if fc.Workflows != nil {
		c.Workflows = *fc.Workflows
	}
	if fc.Markers != nil {
		if fc.Markers.Start != "" {
			c.StartMarker = constants.Marker(fc.Markers.Start)
		}
		if fc.Markers.End != "" {
			c.EndMarker = constants.Marker(fc.Markers.End)
		}
	}
	if fc.Sentinel != nil {
		c.Sentinel = *fc.Sentinel
	}

	configLog.Printf("Config applied: solutions_file=%s, solutions_dir=%s, workflows=%d", c.SolutionsFile, c.SolutionsDir, len(c.Workflows))
	return nil
}

// Validate checks that the configuration can drive a validation pass.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.SolutionsFile) == "" {
		return errors.New("solutions-file must not be empty")
	}
	if strings.TrimSpace(c.SolutionsDir) == "" {
		return errors.New("solutions-dir must not be empty")
	}
	if len(c.Workflows) == 0 {
		return errors.New("workflows must list at least one file")
	}
	for i, wf := range c.Workflows {
		if strings.TrimSpace(wf) == "" {
			return fmt.Errorf("workflows[%d] must not be empty", i)
		}
	}
	if strings.TrimSpace(c.StartMarker.String()) == "" || strings.TrimSpace(c.EndMarker.String()) == "" {
		return errors.New("markers.start and markers.end must not be empty")
	}
	if c.StartMarker == c.EndMarker {
		return fmt.Errorf("start and end markers must differ, both are %q", c.StartMarker)
	}
	return nil
}

// Path resolves p against RootDir.
func (c *Config) Path(p string) string {
	return fileutil.Resolve(c.RootDir, p)
}

// SolutionsFilePath is the resolved location of the declared-solutions file.
func (c *Config) SolutionsFilePath() string {
	return c.Path(c.SolutionsFile)
}

// SolutionsDirPath is the resolved location of the solutions directory.
func (c *Config) SolutionsDirPath() string {
	return c.Path(c.SolutionsDir)
}

// SolutionsFileLabel names the declared-solutions file in messages.
func (c *Config) SolutionsFileLabel() string {
	return filepath.Base(c.SolutionsFile)
}

// SolutionsDirLabel names the solutions directory in messages, e.g. "solutions/".
func (c *Config) SolutionsDirLabel() string {
	return filepath.ToSlash(filepath.Clean(c.SolutionsDir)) + "/"
}

// WatchPaths lists the directories whose changes can affect a validation pass.
func (c *Config) WatchPaths() []string {
	paths := []string{filepath.Dir(c.SolutionsFilePath()), c.SolutionsDirPath()}
	for _, wf := range c.Workflows {
		paths = append(paths, filepath.Dir(c.Path(wf)))
	}
	slices.Sort(paths)
	return slices.Compact(paths)
}
