// Command labelfit abbreviates labels to fit a display area.
//
//	labelfit fit --width 120 --height 16 Northwest Boulevard
//	labelfit abbreviate --categories directions,classifications North Main Street
//	echo "Saint Northwest Boulevard" | labelfit stream --width 10 --height 1
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
)

// CLI defines the command-line interface.
type CLI struct {
	Config   string `name:"config" short:"c" help:"Config file (YAML or TOML)" type:"path"`
	Table    string `name:"table" short:"t" help:"Abbreviation table file; overrides config" type:"path"`
	LogLevel string `name:"log-level" help:"Log level: debug, info, warn, error"`
	NoColor  bool   `name:"no-color" help:"Disable colored log output"`

	Abbreviate AbbreviateCmd `cmd:"" help:"Abbreviate words from the given categories"`
	Fit        FitCmd        `cmd:"" help:"Abbreviate a label just enough to fit"`
	Stream     StreamCmd     `cmd:"" help:"Fit each line read from stdin"`
	Lookup     LookupCmd     `cmd:"" help:"Show the abbreviation for a word"`
	Schema     SchemaCmd     `cmd:"" help:"Print the JSON Schema for table files"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run parses args and executes the selected command, returning the exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cli CLI
	exitCode := -1

	parser, err := kong.New(&cli,
		kong.Name("labelfit"),
		kong.Description("Shorten labels with standard abbreviations until they fit."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exitCode = code }),
	)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	kctx, err := parser.Parse(args)
	if exitCode >= 0 {
		// --help and friends.
		return exitCode
	}
	if err != nil {
		fmt.Fprintf(stderr, "labelfit: %v\n", err)
		return 2
	}

	app, err := newApp(ctx, &cli, stdin, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "labelfit: %v\n", err)
		return 1
	}

	if err := kctx.Run(app); err != nil {
		app.logger.Error("command failed", "error", err)
		return 1
	}
	return 0
}
