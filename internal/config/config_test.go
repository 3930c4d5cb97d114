package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/reportmanifest/internal/domain"
)

// TestConfig_Validate tests configuration validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		check   func(*testing.T, *Config)
		wantErr error
	}{
		{
			name:   "defaults are valid",
			modify: func(c *Config) {},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, domain.ScanModeNested, c.ScanMode())
			},
		},
		{
			name: "empty values fall back to defaults",
			modify: func(c *Config) {
				c.Reports.Dir = ""
				c.Reports.Mode = ""
				c.Output.File = "  "
				c.Logging = LoggingConfig{}
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, DefaultReportsDir, c.Reports.Dir)
				assert.Equal(t, DefaultMode, c.Reports.Mode)
				assert.Equal(t, DefaultOutputFile, c.Output.File)
				assert.Equal(t, DefaultLogLevel, c.Logging.Level)
				assert.Equal(t, DefaultLogFormat, c.Logging.Format)
			},
		},
		{
			name: "mode is normalized",
			modify: func(c *Config) {
				c.Reports.Mode = " FLAT "
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "flat", c.Reports.Mode)
				assert.Equal(t, domain.ScanModeFlat, c.ScanMode())
			},
		},
		{
			name: "unknown mode",
			modify: func(c *Config) {
				c.Reports.Mode = "recursive"
			},
			wantErr: domain.ErrInvalidMode,
		},
		{
			name: "valid exclude pattern",
			modify: func(c *Config) {
				c.Reports.Exclude = []string{"drafts/**", "*-old.html"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestConfig_Validate_BadExcludePattern(t *testing.T) {
	cfg := Default()
	cfg.Reports.Exclude = []string{"[unclosed"}

	err := cfg.Validate()

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "reports.exclude", validationErr.Field)
}

func TestConfig_Paths(t *testing.T) {
	root := t.TempDir()

	cfg := Default()
	cfg.Project.Root = root

	projectRoot, err := cfg.ProjectRoot()
	require.NoError(t, err)
	assert.Equal(t, root, projectRoot)

	reports, err := cfg.ReportsPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "report"), reports)

	manifest, err := cfg.ManifestPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "manifest.json"), manifest)

	label, err := cfg.ReportsLabel()
	require.NoError(t, err)
	assert.Equal(t, "report", label)
}

func TestConfig_ReportsLabel(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name string
		dir  string
		want string
	}{
		{"default", "report", "report"},
		{"nested relative", "public/reports/", "public/reports"},
		{"absolute inside project", filepath.Join(root, "out", "report"), "out/report"},
		{"outside project", "/var/reports", "/var/reports"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Project.Root = root
			cfg.Reports.Dir = tt.dir

			label, err := cfg.ReportsLabel()
			require.NoError(t, err)
			assert.Equal(t, tt.want, label)
		})
	}
}

func TestConfig_ProjectRootDefaultsToExecutableParent(t *testing.T) {
	cfg := Default()

	root, err := cfg.ProjectRoot()
	require.NoError(t, err)

	exe, err := os.Executable()
	require.NoError(t, err)
	exe, err = filepath.EvalSymlinks(exe)
	require.NoError(t, err)
	assert.Equal(t, filepath.Dir(filepath.Dir(exe)), root)
}

func TestConfig_YAML(t *testing.T) {
	cfg := Default()
	cfg.Reports.Exclude = []string{"drafts/**"}

	data, err := cfg.YAML()
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "reports:")
	assert.Contains(t, out, "mode: nested")
	assert.Contains(t, out, "file: manifest.json")
	assert.Contains(t, out, "- drafts/**")
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "report", cfg.Reports.Dir)
	assert.Equal(t, "nested", cfg.Reports.Mode)
	assert.Empty(t, cfg.Reports.Exclude)
	assert.False(t, cfg.Reports.Titles)
	assert.Equal(t, "manifest.json", cfg.Output.File)
	assert.False(t, cfg.Output.Gzip)
	assert.False(t, cfg.Output.DryRun)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	assert.Equal(t, ".reportmanifest", filepath.Base(dir))
	assert.Equal(t, filepath.Join(dir, "config.yaml"), ConfigFilePath())
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, DefaultReportsDir, cfg.Reports.Dir)
	assert.Equal(t, DefaultMode, cfg.Reports.Mode)
	assert.Equal(t, DefaultOutputFile, cfg.Output.File)
}

func TestLoadFrom_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reportmanifest.yaml")
	content := `
project:
  root: /srv/portal
reports:
  dir: public/report
  mode: flat
  exclude:
    - "*.draft.html"
  titles: true
output:
  file: public/manifest.json
  gzip: true
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	v := viper.New()
	v.SetConfigFile(path)

	cfg, err := LoadFrom(v)
	require.NoError(t, err)

	assert.Equal(t, "/srv/portal", cfg.Project.Root)
	assert.Equal(t, "public/report", cfg.Reports.Dir)
	assert.Equal(t, domain.ScanModeFlat, cfg.ScanMode())
	assert.Equal(t, []string{"*.draft.html"}, cfg.Reports.Exclude)
	assert.True(t, cfg.Reports.Titles)
	assert.Equal(t, "public/manifest.json", cfg.Output.File)
	assert.True(t, cfg.Output.Gzip)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFrom_MissingExplicitFile(t *testing.T) {
	v := viper.New()
	v.SetConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := LoadFrom(v)
	assert.Error(t, err)
}

func TestLoadFrom_InvalidMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("reports:\n  mode: deep\n"), 0644))

	v := viper.New()
	v.SetConfigFile(path)

	_, err := LoadFrom(v)
	assert.ErrorIs(t, err, domain.ErrInvalidMode)
}

func TestLoadFrom_EnvOverride(t *testing.T) {
	t.Setenv("REPORTMANIFEST_REPORTS_MODE", "flat")
	t.Setenv("REPORTMANIFEST_OUTPUT_FILE", "site/manifest.json")

	cfg, err := LoadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "flat", cfg.Reports.Mode)
	assert.Equal(t, "site/manifest.json", cfg.Output.File)
}
