package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"dexsearch/internal/config"
	"dexsearch/internal/pager"
	"dexsearch/internal/source"
	"dexsearch/internal/ui/logic"
	"dexsearch/internal/ui/views"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:      "dexquery",
		Usage:     "Run one search against the record list and print the matches",
		ArgsUsage: "QUERY",
		Writer:    out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "source",
				Aliases: []string{"s"},
				Usage:   "URL or file path of the record list (overrides source.url)",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the config file",
			},
			&cli.BoolFlag{
				Name:  "max-cp",
				Usage: "Sort by maximum combat points instead of name",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Number of matches to print (default: search.limit)",
			},
			&cli.StringFlag{
				Name:  "type-match",
				Usage: "How the query matches types: any or joined (default: search.type_match)",
			},
			&cli.BoolFlag{
				Name:  "images",
				Usage: "Print each row's image URL",
			},
			&cli.BoolFlag{
				Name:  "pager",
				Usage: "Show the matches in a pager",
			},
		},
		Action: searchCommand,
	}
}

func searchCommand(c *cli.Context) error {
	// Keep library logging off the output
	log.SetOutput(io.Discard)

	query := strings.Join(c.Args().Slice(), " ")
	if query == "" {
		return errors.New("a query is required")
	}

	cfg, err := config.NewConfigServiceWithBus(c.String("config"), nil).Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if c.IsSet("source") {
		cfg.Source.URL = c.String("source")
	}
	if c.IsSet("limit") {
		cfg.Search.Limit = c.Int("limit")
	}
	if c.IsSet("type-match") {
		cfg.Search.TypeMatch = c.String("type-match")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	timeout, err := cfg.RequestTimeout()
	if err != nil {
		return err
	}
	src, err := source.New(cfg.Source.URL, timeout)
	if err != nil {
		return err
	}

	output, err := runSearch(c.Context, src, cfg, query, c.Bool("max-cp") || cfg.Search.SortByMaxCP, c.Bool("images"))
	if err != nil {
		return err
	}

	if c.Bool("pager") {
		return pager.ShowString(output)
	}
	_, err = fmt.Fprintln(c.App.Writer, output)
	return err
}

// runSearch fetches the records once and renders the matches
func runSearch(ctx context.Context, src source.Source, cfg *config.Config, query string, sortByMaxCP, images bool) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	records, err := src.Fetch(ctx)
	if err != nil {
		return "", err
	}

	pipeline := logic.NewPipeline(cfg.Search.Limit, logic.ParseTypeMatch(cfg.Search.TypeMatch))
	results := pipeline.Run(records, query, sortByMaxCP)

	mode := views.ImageHidden
	if images {
		mode = views.ImageURL
	}
	return views.NewResultRenderer(views.NewStyles(), mode).RenderList(results, query), nil
}
