// Package cmd provides CLI commands for the bqfmt tool.
//
// This package implements the command-line interface for bqfmt, which prints
// BigQuery SQL from the concrete syntax trees produced by bq2cst. Trees are
// read either as bq2cst JSON (.json) or in the compact tree notation (.cst).
//
// # Available Commands
//
// The cmd package currently provides:
//   - fmt: Format tree files to stdout, write <name>.sql beside them, or
//     report a diff against the existing <name>.sql
//
// # Command Structure
//
// Each command is implemented as a separate function that returns a
// *cli.Command, following the urfave/cli/v3 pattern. The root command loads
// bqfmt.yaml and sets up logging in its Before hook; subcommands read both
// from the shared session.
//
// # Global Options
//
// All commands support global flags:
//   - --config, -c: The config file (defaults to bqfmt.yaml, or $BQFMT_CONFIG)
//   - --verbose: Log debug messages to stderr
//   - --help, -h: Display command help
//   - --version, -v: Display version information
//
// # Example Usage
//
//	bqfmt fmt query.json                 # Print formatted SQL
//	bqfmt fmt -w queries/                # Write queries/**/<name>.sql
//	bqfmt fmt -d --width 100 queries/    # Check formatting in CI
//	bqfmt -c ci/bqfmt.yaml fmt -d .      # Use another config file
package cmd
