package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/quantmind-br/reportmanifest/internal/config"
	"github.com/quantmind-br/reportmanifest/internal/console"
	"github.com/quantmind-br/reportmanifest/internal/domain"
	"github.com/quantmind-br/reportmanifest/internal/manifest"
	"github.com/quantmind-br/reportmanifest/internal/utils"
)

// Verifier checks an existing manifest against the configured layout
type Verifier struct {
	config  *config.Config
	paths   paths
	fs      afero.Fs
	loader  *manifest.Loader
	printer *console.Printer
	logger  *utils.Logger
}

// VerifierOptions contains options for creating a verifier
type VerifierOptions struct {
	domain.CommonOptions
	Config  *config.Config
	Fs      afero.Fs
	Printer *console.Printer
	Logger  *utils.Logger
	// Path overrides the configured manifest path
	Path string
}

// NewVerifier creates a new verifier
func NewVerifier(opts VerifierOptions) (*Verifier, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p, err := resolvePaths(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve paths: %w", err)
	}
	if opts.Path != "" {
		p.manifest = utils.ResolvePath(p.projectRoot, opts.Path)
	}

	fsys := opts.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	logger := opts.Logger
	if logger == nil {
		logger = newLogger(cfg, opts.Verbose)
	}
	printer := opts.Printer
	if printer == nil {
		printer = console.NewPrinter(nil, nil)
	}

	return &Verifier{
		config:  cfg,
		paths:   p,
		fs:      fsys,
		loader:  manifest.NewLoader(fsys),
		printer: printer,
		logger:  logger.WithComponent("verifier"),
	}, nil
}

// Verify loads the manifest and checks count, ordering, entry paths and
// that every listed report still exists
func (v *Verifier) Verify(ctx context.Context) (*domain.Manifest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v.logger.Debug().Str("manifest", v.paths.manifest).Msg("Verifying manifest")

	m, err := v.loader.Load(v.paths.manifest)
	if err != nil {
		return nil, err
	}

	err = manifest.Verify(m, manifest.VerifyOptions{
		ReportsLabel: v.paths.label,
		Mode:         v.config.ScanMode(),
		Fs:           v.fs,
		ProjectRoot:  v.paths.projectRoot,
	})
	if err != nil {
		return nil, err
	}

	v.printer.Verified(filepath.Base(v.paths.manifest), m.Count)
	v.logger.Info().Int("count", m.Count).Msg("Manifest verified")

	return m, nil
}
