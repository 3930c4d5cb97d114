package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/quantmind-br/reportmanifest/internal/config"
	"github.com/quantmind-br/reportmanifest/internal/console"
	"github.com/quantmind-br/reportmanifest/internal/domain"
	"github.com/quantmind-br/reportmanifest/internal/output"
	"github.com/quantmind-br/reportmanifest/internal/scanner"
	"github.com/quantmind-br/reportmanifest/internal/utils"
)

// Generator scans the reports directory and writes the manifest
type Generator struct {
	paths   paths
	fs      afero.Fs
	scanner domain.Scanner
	writer  domain.ManifestWriter
	printer *console.Printer
	logger  *utils.Logger
	clock   func() time.Time
	dryRun  bool
}

// GeneratorOptions contains options for creating a generator
type GeneratorOptions struct {
	domain.CommonOptions
	Config *config.Config
	// Fs defaults to the OS filesystem
	Fs      afero.Fs
	Scanner domain.Scanner
	Writer  domain.ManifestWriter
	Printer *console.Printer
	Logger  *utils.Logger
	// Clock stamps the generated field; defaults to time.Now
	Clock func() time.Time
	// Progress receives the scan progress bar when output.progress is set
	Progress io.Writer
}

// paths holds the resolved locations a run works with
type paths struct {
	projectRoot string
	reports     string
	label       string
	manifest    string
}

func resolvePaths(cfg *config.Config) (paths, error) {
	var p paths
	var err error

	if p.projectRoot, err = cfg.ProjectRoot(); err != nil {
		return p, err
	}
	if p.reports, err = cfg.ReportsPath(); err != nil {
		return p, err
	}
	if p.label, err = cfg.ReportsLabel(); err != nil {
		return p, err
	}
	if p.manifest, err = cfg.ManifestPath(); err != nil {
		return p, err
	}
	return p, nil
}

// newLogger builds the run logger from the logging config
func newLogger(cfg *config.Config, verbose bool) *utils.Logger {
	return utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Verbose: verbose,
	})
}

// NewGenerator creates a new generator with the given configuration
func NewGenerator(opts GeneratorOptions) (*Generator, error) {
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

	logger := opts.Logger
	if logger == nil {
		logger = newLogger(cfg, opts.Verbose)
	}
	fsys := opts.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	dryRun := opts.DryRun || cfg.Output.DryRun

	scan := opts.Scanner
	if scan == nil {
		var progress io.Writer
		if cfg.Output.Progress {
			progress = opts.Progress
			if progress == nil {
				progress = os.Stderr
			}
		}

		s, err := scanner.New(scanner.Options{
			Fs:       fsys,
			Root:     p.reports,
			Label:    p.label,
			Mode:     cfg.ScanMode(),
			Exclude:  cfg.Reports.Exclude,
			Titles:   cfg.Reports.Titles,
			Progress: progress,
			Logger:   logger,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create scanner: %w", err)
		}
		scan = s
	}

	writer := opts.Writer
	if writer == nil {
		writer = output.NewWriter(output.WriterOptions{
			Fs:     fsys,
			Path:   p.manifest,
			Gzip:   cfg.Output.Gzip,
			DryRun: dryRun,
			Logger: logger,
		})
	}

	printer := opts.Printer
	if printer == nil {
		printer = console.NewPrinter(nil, nil)
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	return &Generator{
		paths:   p,
		fs:      fsys,
		scanner: scan,
		writer:  writer,
		printer: printer,
		logger:  logger.WithComponent("generator"),
		clock:   clock,
		dryRun:  dryRun,
	}, nil
}

// Generate scans the reports directory and replaces the manifest file.
// Console lines are a start notice, one line per entry and a completion count.
func (g *Generator) Generate(ctx context.Context) (*domain.Manifest, error) {
	startTime := time.Now()
	mode := g.scanner.Mode()

	g.logger.Info().
		Str("reports", g.paths.reports).
		Str("manifest", g.writer.Path()).
		Str("mode", mode.String()).
		Bool("dry_run", g.dryRun).
		Msg("Starting manifest generation")

	g.printer.Start(g.paths.label)

	existed, err := afero.Exists(g.fs, g.paths.reports)
	if err != nil {
		return nil, domain.NewScanError(g.paths.reports, err)
	}
	if !existed && mode == domain.ScanModeNested {
		g.printer.Notice("Report directory does not exist.")
	}

	entries, err := g.scanner.Scan(ctx)
	if err != nil {
		if ctx.Err() != nil {
			g.logger.Warn().Msg("Generation cancelled")
		}
		return nil, err
	}

	if !existed && mode == domain.ScanModeFlat {
		g.printer.Notice(fmt.Sprintf("Created %s/ directory.", g.paths.label))
	}

	m := domain.NewManifest(g.clock(), entries)
	g.printer.Entries(mode, m.Reports)

	if err := g.writer.Write(ctx, m); err != nil {
		return nil, err
	}

	g.printer.Done(filepath.Base(g.writer.Path()), m.Count, g.dryRun)

	g.logger.Info().
		Int("count", m.Count).
		Dur("duration", time.Since(startTime)).
		Msg("Manifest generation completed")

	return m, nil
}
