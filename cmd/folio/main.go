// Command folio is a terminal client for the portfolio server: it
// renders the dashboard, analysis charts and stress tests, and manages
// assets and transactions.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"

	"github.com/bobmcallan/folio/internal/app"
	"github.com/bobmcallan/folio/internal/common"
	"github.com/bobmcallan/folio/internal/ui"
)

var configPath = flag.String("config", "", "path to folio.toml")

func main() {
	// .env is optional; environment still overrides file config
	_ = godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(&versionCmd{}, "")

	commander.Register(&dashboardCmd{}, "portfolio")
	commander.Register(&watchCmd{}, "portfolio")
	commander.Register(&analysisCmd{}, "portfolio")
	commander.Register(&stressCmd{}, "portfolio")

	commander.Register(&searchCmd{}, "assets")
	commander.Register(&assetAddCmd{}, "assets")
	commander.Register(&assetDeleteCmd{}, "assets")
	commander.Register(&portfolioDeleteCmd{}, "assets")

	commander.Register(&txAddCmd{}, "transactions")
	commander.Register(&txDeleteCmd{}, "transactions")
	commander.Register(&importCmd{}, "transactions")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// newApp builds the shared application for a subcommand.
func newApp() (*app.App, error) {
	return app.NewApp(*configPath)
}

// fail prints an error and returns the failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}

// printMarkdown renders markdown to stdout, styled when the terminal
// supports it.
func printMarkdown(md string) {
	renderer := ui.NewRenderer(os.Stdout)
	if err := renderer.Render(md); err != nil {
		fmt.Print(md)
	}
}

// confirmPrompt asks on the terminal; used as the Confirmer for
// destructive actions. The -y flag on a command substitutes an
// always-yes confirmer.
func confirmPrompt(prompt string) bool {
	return ui.Confirm(os.Stdin, os.Stdout, prompt)
}

func confirmer(assumeYes bool) func(string) bool {
	if assumeYes {
		return func(string) bool { return true }
	}
	return confirmPrompt
}

// versionCmd prints build information.
type versionCmd struct{}

func (*versionCmd) Name() string             { return "version" }
func (*versionCmd) Synopsis() string         { return "print version information" }
func (*versionCmd) Usage() string            { return "folio version\n" }
func (*versionCmd) SetFlags(f *flag.FlagSet) {}

func (*versionCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	fmt.Println(common.GetFullVersion())
	return subcommands.ExitSuccess
}
