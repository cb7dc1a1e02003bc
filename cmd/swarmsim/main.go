// Command swarmsim solves warehouse bin-relocation requests against a
// generated grid map and writes the resulting agent paths as a CSV trace.
package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/swarmsim/internal/telemetry"
)

// CLI is the top-level kong command tree.
var CLI struct {
	Solve SolveCommand `cmd:"" help:"Solve a scenario and write a CSV trace" default:"withargs"`
}

func main() {
	telemetry.SetLevel(log.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("swarmsim"),
		kong.Description("swarmsim - warehouse bin-relocation solver"),
		kong.UsageOnError(),
	)

	if err := ctx.Run(); err != nil {
		telemetry.Named("swarmsim").Error("command failed", "error", err)
		os.Exit(exitCode(err))
	}
}
