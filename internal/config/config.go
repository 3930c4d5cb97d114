package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/quantmind-br/reportmanifest/internal/domain"
	"github.com/quantmind-br/reportmanifest/internal/utils"
)

// Config represents the application configuration
type Config struct {
	Project ProjectConfig `mapstructure:"project" yaml:"project"`
	Reports ReportsConfig `mapstructure:"reports" yaml:"reports"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// ProjectConfig locates the project the reports belong to
type ProjectConfig struct {
	// Root is the directory report and manifest paths are relative to.
	// Empty means the parent of the directory holding the executable.
	Root string `mapstructure:"root" yaml:"root"`
}

// ReportsConfig contains settings for the reports directory scan
type ReportsConfig struct {
	Dir     string   `mapstructure:"dir" yaml:"dir"`
	Mode    string   `mapstructure:"mode" yaml:"mode"`
	Exclude []string `mapstructure:"exclude" yaml:"exclude"`
	Titles  bool     `mapstructure:"titles" yaml:"titles"`
}

// OutputConfig contains manifest output settings
type OutputConfig struct {
	File     string `mapstructure:"file" yaml:"file"`
	Gzip     bool   `mapstructure:"gzip" yaml:"gzip"`
	Progress bool   `mapstructure:"progress" yaml:"progress"`
	DryRun   bool   `mapstructure:"dry_run" yaml:"dry_run"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration, filling empty values with defaults
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Reports.Dir) == "" {
		c.Reports.Dir = DefaultReportsDir
	}
	if strings.TrimSpace(c.Output.File) == "" {
		c.Output.File = DefaultOutputFile
	}
	if strings.TrimSpace(c.Reports.Mode) == "" {
		c.Reports.Mode = DefaultMode
	}

	mode, err := domain.ParseScanMode(c.Reports.Mode)
	if err != nil {
		return fmt.Errorf("invalid reports.mode: %w", err)
	}
	c.Reports.Mode = mode.String()

	for _, pattern := range c.Reports.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return domain.NewValidationError("reports.exclude", fmt.Sprintf("bad pattern %q", pattern))
		}
	}

	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}

// ScanMode returns the configured traversal mode, falling back to the default
// when the configured value does not parse
func (c *Config) ScanMode() domain.ScanMode {
	mode, err := domain.ParseScanMode(c.Reports.Mode)
	if err != nil {
		return domain.ScanMode(DefaultMode)
	}
	return mode
}

// ProjectRoot returns the absolute project root
func (c *Config) ProjectRoot() (string, error) {
	root := c.Project.Root
	if root == "" {
		exeDir, err := utils.ExecutableDir()
		if err != nil {
			return "", fmt.Errorf("locate executable: %w", err)
		}
		root = filepath.Dir(exeDir)
	}
	return filepath.Abs(utils.ExpandPath(root))
}

// ReportsPath returns the absolute reports directory
func (c *Config) ReportsPath() (string, error) {
	root, err := c.ProjectRoot()
	if err != nil {
		return "", err
	}
	return utils.ResolvePath(root, c.Reports.Dir), nil
}

// ManifestPath returns the absolute manifest file path
func (c *Config) ManifestPath() (string, error) {
	root, err := c.ProjectRoot()
	if err != nil {
		return "", err
	}
	return utils.ResolvePath(root, c.Output.File), nil
}

// ReportsLabel returns the reports directory as it appears at the start of
// every entry path: relative to the project root with forward slashes, or the
// absolute slash path when the directory lies outside the project
func (c *Config) ReportsLabel() (string, error) {
	root, err := c.ProjectRoot()
	if err != nil {
		return "", err
	}
	reports := utils.ResolvePath(root, c.Reports.Dir)

	rel, err := filepath.Rel(root, reports)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(reports), nil
	}
	return filepath.ToSlash(rel), nil
}

// YAML renders the configuration as YAML
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
