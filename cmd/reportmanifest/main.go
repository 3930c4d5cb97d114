package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quantmind-br/reportmanifest/internal/app"
	"github.com/quantmind-br/reportmanifest/internal/config"
	"github.com/quantmind-br/reportmanifest/internal/console"
	"github.com/quantmind-br/reportmanifest/internal/domain"
	"github.com/quantmind-br/reportmanifest/internal/utils"
	"github.com/quantmind-br/reportmanifest/pkg/version"
)

const (
	actionGenerate = "generating manifest"
	actionVerify   = "verifying manifest"
	actionConfig   = "loading config"
)

// commandError tags an error with the action that failed
type commandError struct {
	action string
	err    error
}

func (e *commandError) Error() string { return e.err.Error() }
func (e *commandError) Unwrap() error { return e.err }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, viper.GetViper(), afero.NewOsFs(), os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the command line and returns the process exit code
func execute(ctx context.Context, v *viper.Viper, fsys afero.Fs, args []string, stdout, stderr io.Writer) int {
	c := newCLI(v, fsys, stdout, stderr)
	root := c.rootCmd()
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		var cmdErr *commandError
		if errors.As(err, &cmdErr) {
			c.printer.Error(cmdErr.action, cmdErr.err)
		} else {
			c.printer.Error("", err)
		}
		return 1
	}
	return 0
}

type cli struct {
	v       *viper.Viper
	fs      afero.Fs
	stdout  io.Writer
	stderr  io.Writer
	printer *console.Printer

	cfgFile string
	verbose bool
}

func newCLI(v *viper.Viper, fsys afero.Fs, stdout, stderr io.Writer) *cli {
	return &cli{
		v:       v,
		fs:      fsys,
		stdout:  stdout,
		stderr:  stderr,
		printer: console.NewPrinter(stdout, stderr),
	}
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "reportmanifest",
		Short: "Generate a JSON manifest of HTML reports",
		Long: `reportmanifest scans a reports directory for .html files and writes
manifest.json listing each report's name, path, size and modification time.

In nested mode (the default) every subdirectory of the reports directory is a
store and its HTML files are listed with that store name. In flat mode only
the files directly under the reports directory are listed.`,
		Version:           version.Short(),
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.initConfig,
		RunE:              c.runGenerate,
	}
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&c.cfgFile, "config", "", fmt.Sprintf("config file (default is ./config.yaml or %s)", config.ConfigFilePath()))
	flags.String("root", "", "Project root (default is the parent of the executable's directory)")
	flags.String("reports-dir", config.DefaultReportsDir, "Reports directory, relative to the project root")
	flags.StringP("output", "o", config.DefaultOutputFile, "Manifest file, relative to the project root")
	flags.StringP("mode", "m", config.DefaultMode, "Scan mode: flat or nested")
	flags.StringSlice("exclude", nil, "Glob patterns of reports to leave out")
	flags.Bool("titles", false, "Record each report's <title>")
	flags.Bool("gzip", false, "Also write a gzip-compressed manifest")
	flags.Bool("progress", false, "Show a progress bar while scanning")
	flags.Bool("dry-run", false, "Scan and print without writing the manifest")
	flags.String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error, disabled")
	flags.String("log-format", config.DefaultLogFormat, "Log format: pretty or json")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Verbose output")

	// Bind flags to viper
	_ = c.v.BindPFlag("project.root", flags.Lookup("root"))
	_ = c.v.BindPFlag("reports.dir", flags.Lookup("reports-dir"))
	_ = c.v.BindPFlag("reports.mode", flags.Lookup("mode"))
	_ = c.v.BindPFlag("reports.exclude", flags.Lookup("exclude"))
	_ = c.v.BindPFlag("reports.titles", flags.Lookup("titles"))
	_ = c.v.BindPFlag("output.file", flags.Lookup("output"))
	_ = c.v.BindPFlag("output.gzip", flags.Lookup("gzip"))
	_ = c.v.BindPFlag("output.progress", flags.Lookup("progress"))
	_ = c.v.BindPFlag("output.dry_run", flags.Lookup("dry-run"))
	_ = c.v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = c.v.BindPFlag("logging.format", flags.Lookup("log-format"))

	root.AddCommand(c.verifyCmd())
	root.AddCommand(c.configCmd())
	root.AddCommand(c.versionCmd())

	return root
}

func (c *cli) initConfig(cmd *cobra.Command, args []string) error {
	if c.cfgFile != "" {
		c.v.SetConfigFile(c.cfgFile)
	}
	return nil
}

func (c *cli) loadConfig() (*config.Config, *utils.Logger, error) {
	cfg, err := config.LoadFrom(c.v)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Output:  c.stderr,
		Verbose: c.verbose,
	})
	return cfg, logger, nil
}

func (c *cli) runGenerate(cmd *cobra.Command, args []string) error {
	cfg, logger, err := c.loadConfig()
	if err != nil {
		return &commandError{action: actionGenerate, err: err}
	}

	gen, err := app.NewGenerator(app.GeneratorOptions{
		CommonOptions: domain.CommonOptions{
			Verbose: c.verbose,
			DryRun:  cfg.Output.DryRun,
		},
		Config:   cfg,
		Fs:       c.fs,
		Printer:  c.printer,
		Logger:   logger,
		Progress: c.stderr,
	})
	if err != nil {
		return &commandError{action: actionGenerate, err: err}
	}

	if _, err := gen.Generate(cmd.Context()); err != nil {
		logger.Debug().Err(err).Msg("Manifest generation failed")
		return &commandError{action: actionGenerate, err: err}
	}
	return nil
}

func (c *cli) verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [manifest]",
		Short: "Check an existing manifest",
		Long: `Loads the manifest (manifest.json by default, .json.gz also accepted) and
checks that count matches the number of reports, that reports are sorted by
name, that every path lies under the reports directory and that every listed
report still exists.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := c.loadConfig()
			if err != nil {
				return &commandError{action: actionVerify, err: err}
			}

			opts := app.VerifierOptions{
				CommonOptions: domain.CommonOptions{Verbose: c.verbose},
				Config:        cfg,
				Fs:            c.fs,
				Printer:       c.printer,
				Logger:        logger,
			}
			if len(args) == 1 {
				opts.Path = args[0]
			}

			verifier, err := app.NewVerifier(opts)
			if err != nil {
				return &commandError{action: actionVerify, err: err}
			}
			if _, err := verifier.Verify(cmd.Context()); err != nil {
				return &commandError{action: actionVerify, err: err}
			}
			return nil
		},
	}
}

func (c *cli) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long:  "Prints the configuration after merging defaults, config file, environment and flags.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := c.loadConfig()
			if err != nil {
				return &commandError{action: actionConfig, err: err}
			}

			data, err := cfg.YAML()
			if err != nil {
				return &commandError{action: actionConfig, err: err}
			}
			_, err = c.stdout.Write(data)
			return err
		},
	}
}

func (c *cli) versionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			if !asJSON {
				fmt.Fprintln(c.stdout, info.String())
				return nil
			}

			data, err := info.JSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(c.stdout, string(data))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}
