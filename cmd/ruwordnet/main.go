// Command ruwordnet is a thin CLI over the thesaurus lookup service.
// It loads the XML distribution once per invocation and runs a single
// query, printing results as JSON on stdout (logs go to stderr).
//
// Exit codes: 0 = success, 1 = error (including unknown synset ids).
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/heartmarshall/ruwordnet/internal/app"
	"github.com/heartmarshall/ruwordnet/internal/config"
	"github.com/heartmarshall/ruwordnet/internal/service/lookup"
	"github.com/heartmarshall/ruwordnet/internal/thesaurus"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "ruwordnet:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	formFlags := []cli.Flag{
		&cli.StringFlag{
			Name:  "form",
			Usage: "vocabulary view: surface (default) or lemma",
		},
	}

	relationFlags := []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "relation",
			Aliases: []string{"r"},
			Usage:   "restrict to relation type (repeatable; default: all)",
		},
		&cli.BoolFlag{
			Name:  "show-synsets",
			Usage: "group target words by target synset id",
		},
	}

	return &cli.App{
		Name:    "ruwordnet",
		Usage:   "query the RuWordNet thesaurus",
		Version: app.BuildVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "data-dir",
				Usage: "directory with the RuWordNet XML files (overrides config)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "synsets",
				Usage:     "list the synset ids a word belongs to",
				ArgsUsage: "<word>",
				Action: withService(func(svc *lookup.Service, c *cli.Context) error {
					return printJSON(svc.SynsetIDs(c.Args().First()))
				}),
			},
			{
				Name:      "info",
				Usage:     "list a word's synsets with ruthes names and definitions",
				ArgsUsage: "<word>",
				Action: withService(func(svc *lookup.Service, c *cli.Context) error {
					return printJSON(svc.SynsetInfo(c.Args().First()))
				}),
			},
			{
				Name:      "define",
				Usage:     "show the definition of a synset",
				ArgsUsage: "<synset-id>",
				Action: withService(func(svc *lookup.Service, c *cli.Context) error {
					info, err := svc.Definition(c.Args().First())
					if err != nil {
						return err
					}
					return printJSON(info)
				}),
			},
			{
				Name:      "words",
				Usage:     "list the member words of a synset",
				ArgsUsage: "<synset-id>",
				Action: withService(func(svc *lookup.Service, c *cli.Context) error {
					words, err := svc.SynsetWords(c.Args().First())
					if err != nil {
						return err
					}
					return printJSON(words)
				}),
			},
			{
				Name:      "synonyms",
				Usage:     "list a word's synonyms, grouped by sense",
				ArgsUsage: "<word>",
				Action: withService(func(svc *lookup.Service, c *cli.Context) error {
					return printJSON(svc.Synonyms(c.Args().First()))
				}),
			},
			{
				Name:      "relations",
				Usage:     "list the outgoing relations of a synset",
				ArgsUsage: "<synset-id>",
				Action: withService(func(svc *lookup.Service, c *cli.Context) error {
					rels, err := svc.Relations(c.Args().First())
					if err != nil {
						return err
					}
					return printJSON(rels)
				}),
			},
			{
				Name:      "related",
				Usage:     "list words related to a synset",
				ArgsUsage: "<synset-id>",
				Flags:     relationFlags,
				Action: withService(func(svc *lookup.Service, c *cli.Context) error {
					groups, err := svc.RelatedWords(c.Args().First(),
						c.StringSlice("relation"), c.Bool("show-synsets"))
					if err != nil {
						return err
					}
					return printJSON(groups)
				}),
			},
			{
				Name:      "relatives",
				Usage:     "list a word's closest related words, per sense",
				ArgsUsage: "<word>",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:  "synset",
						Usage: "narrow the query to one synset of the word",
					},
				}, relationFlags...),
				Action: withService(func(svc *lookup.Service, c *cli.Context) error {
					word := c.Args().First()
					filter := c.StringSlice("relation")
					showSynsets := c.Bool("show-synsets")

					if id := c.String("synset"); id != "" {
						groups, err := svc.SenseRelatives(word, id, filter, showSynsets)
						if err != nil {
							return err
						}
						return printJSON(groups)
					}

					relatives, err := svc.WordRelatives(word, filter, showSynsets)
					if err != nil {
						return err
					}
					return printJSON(relatives)
				}),
			},
			{
				Name:      "polysemous",
				Usage:     "list polysemous words of a part of speech (noun, verb, adj)",
				ArgsUsage: "<part-of-speech>",
				Flags:     formFlags,
				Action: withService(func(svc *lookup.Service, c *cli.Context) error {
					words, err := svc.PolysemousWords(c.Args().First(), c.String("form"))
					if err != nil {
						return err
					}
					return printJSON(words)
				}),
			},
			{
				Name:      "monosemous",
				Usage:     "list monosemous words of a part of speech (noun, verb, adj)",
				ArgsUsage: "<part-of-speech>",
				Flags:     formFlags,
				Action: withService(func(svc *lookup.Service, c *cli.Context) error {
					words, err := svc.MonosemousWords(c.Args().First(), c.String("form"))
					if err != nil {
						return err
					}
					return printJSON(words)
				}),
			},
			{
				Name:  "relation-types",
				Usage: "list every relation type present in the loaded data",
				Action: withService(func(svc *lookup.Service, c *cli.Context) error {
					return printJSON(svc.RelationTypes())
				}),
			},
		},
	}
}

// withService wraps a command action with config loading and the
// one-time index build.
func withService(action func(*lookup.Service, *cli.Context) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		if c.Args().Len() == 0 && c.Command.ArgsUsage != "" {
			return fmt.Errorf("missing argument %s", c.Command.ArgsUsage)
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if dir := c.String("data-dir"); dir != "" {
			cfg.Data.Dir = dir
		}

		logger := app.NewLogger(cfg.Log)

		index, err := thesaurus.Load(c.Context, logger, thesaurus.DefaultPaths(cfg.Data.Dir))
		if err != nil {
			return err
		}

		return action(lookup.NewService(logger, index), c)
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
