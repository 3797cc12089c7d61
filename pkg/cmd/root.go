package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/bqfmt/pkg/config"
	"github.com/pseudomuto/bqfmt/pkg/consts"
	"github.com/urfave/cli/v3"
)

type (
	// Version identifies the running build.
	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}

	// session carries the state the root command prepares for subcommands.
	session struct {
		config *config.Config
		logger *slog.Logger
	}
)

// New creates the bqfmt CLI application.
//
// The root command loads the configuration before any subcommand runs. The
// config path comes from --config, the BQFMT_CONFIG environment variable, or
// bqfmt.yaml in the working directory. A missing default config file is not an
// error: the built-in defaults are used instead.
//
// Global Flags:
//   - --config, -c: The bqfmt config file
//   - --verbose: Log debug messages to stderr
func New(v Version) *cli.Command {
	s := &session{
		config: config.Default(),
		logger: slog.Default(),
	}

	return &cli.Command{
		Name:  "bqfmt",
		Usage: "A formatter for BigQuery SQL syntax trees",
		Description: `bqfmt prints BigQuery SQL from the concrete syntax trees produced by
bq2cst, applying consistent casing, indentation and line breaking.`,
		Version: v.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the bqfmt config file",
				Sources: cli.EnvVars(consts.ConfigEnvVar),
				Value:   consts.DefaultConfigFile,
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log debug messages",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level := slog.LevelInfo
			if cmd.Bool("verbose") {
				level = slog.LevelDebug
			}

			s.logger = slog.New(slog.NewTextHandler(cmd.Root().ErrWriter, &slog.HandlerOptions{Level: level}))

			cfg, err := loadConfig(cmd.String("config"), cmd.IsSet("config"))
			if err != nil {
				return ctx, err
			}

			s.config = cfg
			s.logger.Debug("Loaded config",
				"print_width", cfg.Format.PrintWidth,
				"indent_size", cfg.Format.IndentSize,
			)
			return ctx, nil
		},
		Commands: []*cli.Command{
			fmtCmd(s),
		},
	}
}

// Run creates the CLI application and executes it with the given arguments,
// writing output to stdout and diagnostics to stderr.
//
// Example usage:
//
//	err := Run(ctx, Version{Version: "v1.0.0"}, []string{"bqfmt", "fmt", "-w", "queries/"}, os.Stdout, os.Stderr)
func Run(ctx context.Context, v Version, args []string, stdout, stderr io.Writer) error {
	app := New(v)
	app.Writer = stdout
	app.ErrWriter = stderr

	return app.Run(ctx, args)
}

// loadConfig reads the config file at path. A missing file is only an error
// when the path was given explicitly.
func loadConfig(path string, explicit bool) (*config.Config, error) {
	_, err := os.Stat(path)
	if os.IsNotExist(err) && !explicit {
		return config.Default(), nil
	}

	if err != nil {
		return nil, errors.Wrapf(err, "failed to access config file: %s", path)
	}

	return config.LoadConfigFile(path)
}
