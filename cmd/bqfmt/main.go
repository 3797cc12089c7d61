package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/pseudomuto/bqfmt/pkg/cmd"
	"github.com/urfave/cli/v3"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	cli.VersionPrinter = func(c *cli.Command) {
		fmt.Fprintln(c.Writer, "Version:", version)
		fmt.Fprintln(c.Writer, "Commit:", commit)
		fmt.Fprintln(c.Writer, "Date:", date)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	v := cmd.Version{Version: version, Commit: commit, Timestamp: date}
	if err := cmd.Run(ctx, v, os.Args, os.Stdout, os.Stderr); err != nil {
		stop()
		log.Fatal(err)
	}
}
