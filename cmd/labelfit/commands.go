package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/randalmurphal/labelkit/abbrev"
	"github.com/randalmurphal/labelkit/fit"
)

// AbbreviateCmd applies one substitution pass.
type AbbreviateCmd struct {
	Categories string   `name:"categories" short:"C" default:"all" help:"Comma-separated categories: abbreviations, directions, classifications, all"`
	Text       []string `arg:"" required:"" help:"Label text"`
}

// Run executes the command.
func (c *AbbreviateCmd) Run(app *App) error {
	set, err := abbrev.ParseCategorySet(c.Categories)
	if err != nil {
		return err
	}
	fmt.Fprintln(app.stdout, app.ab.Abbreviate(strings.Join(c.Text, " "), set))
	return nil
}

// FitCmd fits one label.
type FitCmd struct {
	Width   float64  `name:"width" short:"w" required:"" help:"Available width"`
	Height  float64  `name:"height" short:"H" required:"" help:"Available height"`
	Verbose bool     `name:"verbose" short:"v" help:"Also print the tier reached and whether the label fits"`
	Text    []string `arg:"" required:"" help:"Label text"`
}

// Run executes the command.
func (c *FitCmd) Run(app *App) error {
	res := app.fitter().Fit(strings.Join(c.Text, " "), fit.Bounds{Width: c.Width, Height: c.Height})
	if c.Verbose {
		fmt.Fprintf(app.stdout, "%s\ttier=%s\tfits=%t\n", res.Text, res.Tier, res.Fits)
		return nil
	}
	fmt.Fprintln(app.stdout, res.Text)
	return nil
}

// StreamCmd fits every stdin line. With watch enabled the table reloads
// while streaming.
type StreamCmd struct {
	Width  float64 `name:"width" short:"w" required:"" help:"Available width"`
	Height float64 `name:"height" short:"H" required:"" help:"Available height"`
}

// Run executes the command.
func (c *StreamCmd) Run(app *App) error {
	if app.reloader != nil {
		go app.reloader.Run(app.ctx)
	}

	f := app.fitter()
	bounds := fit.Bounds{Width: c.Width, Height: c.Height}
	scanner := bufio.NewScanner(app.stdin)
	w := bufio.NewWriter(app.stdout)
	defer w.Flush()

	lines := 0
	for scanner.Scan() {
		if err := app.ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintln(w, f.FitString(scanner.Text(), bounds))
		lines++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	app.logger.Debug("stream finished", slog.Int("lines", lines))
	return nil
}

// LookupCmd shows how a single word is abbreviated.
type LookupCmd struct {
	Categories string `name:"categories" short:"C" default:"all" help:"Comma-separated categories to consult"`
	Word       string `arg:"" help:"Word to look up"`
}

// Run executes the command.
func (c *LookupCmd) Run(app *App) error {
	set, err := abbrev.ParseCategorySet(c.Categories)
	if err != nil {
		return err
	}
	abbreviation, category, ok := app.ab.Match(c.Word, set)
	if !ok {
		fmt.Fprintf(app.stdout, "%s\t(no match)\n", c.Word)
		return nil
	}
	fmt.Fprintf(app.stdout, "%s\t%s\t%s\n", c.Word, abbreviation, category)
	return nil
}

// SchemaCmd prints the table file schema.
type SchemaCmd struct{}

// Run executes the command.
func (c *SchemaCmd) Run(app *App) error {
	enc := json.NewEncoder(app.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(abbrev.Schema())
}
