package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/aescanero/seattlewaste-opts/internal/config"
	"github.com/aescanero/seattlewaste-opts/internal/eval/template"
	"github.com/aescanero/seattlewaste-opts/internal/watch"
)

// newApp wires the commands. Errors are returned to main instead of exiting
// so the caller decides the exit code.
func newApp(cfg *config.Config, logger *zap.Logger) *cli.App {
	path := cfg.ConfigFile

	return &cli.App{
		Name:    "seattlewaste-opts",
		Usage:   "Bind, inspect and watch the SeattleWaste configuration section",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Usage:       "Path to the JSON or YAML configuration document",
				Aliases:     []string{"c"},
				Value:       cfg.ConfigFile,
				Destination: &path,
			},
		},
		ExitErrHandler: func(*cli.Context, error) {},
		Commands: []*cli.Command{
			createCheckCommand(&path, logger),
			createShowCommand(&path, logger),
			createResolveCommand(&path, logger),
			createWatchCommand(&path, cfg, logger),
		},
	}
}

// loadSection binds the section and turns a failure into exit code 1.
func loadSection(path string, logger *zap.Logger) (*config.Opts, error) {
	opts, err := config.LoadFile(path, config.WithLogger(logger))
	if err != nil {
		logger.Error("failed to bind configuration section",
			zap.String("path", path),
			zap.String("section", config.Section),
			zap.Error(err),
		)
		return nil, cli.Exit(err.Error(), 1)
	}
	return opts, nil
}

func createCheckCommand(path *string, logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Bind and validate the section",
		Action: func(c *cli.Context) error {
			opts, err := loadSection(*path, logger)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.App.Writer, "%s: %d resource(s) bound from %s\n", opts.Section(), opts.Len(), *path)
			return nil
		},
	}
}

func createShowCommand(path *string, logger *zap.Logger) *cli.Command {
	var tmpl string

	return &cli.Command{
		Name:  "show",
		Usage: "Render the bound section",
		Description: `Render the section with a Handlebars template.

Examples:
  seattlewaste-opts show
  seattlewaste-opts show --template '{{#each resources}}{{slug}}{{/each}}'`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "template",
				Usage:       "Handlebars template with section, count and resources",
				Aliases:     []string{"t"},
				Value:       template.DefaultTemplate,
				Destination: &tmpl,
			},
		},
		Action: func(c *cli.Context) error {
			opts, err := loadSection(*path, logger)
			if err != nil {
				return err
			}

			out, err := template.NewEngine().Render(tmpl, template.SectionContext(opts))
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}

			fmt.Fprint(c.App.Writer, out)
			return nil
		},
	}
}

func createResolveCommand(path *string, logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:      "resolve",
		Usage:     "Print the address a slug maps to",
		ArgsUsage: "SLUG",
		Action: func(c *cli.Context) error {
			slug := c.Args().First()
			if slug == "" {
				return cli.Exit("resolve requires a SLUG argument", 2)
			}

			opts, err := loadSection(*path, logger)
			if err != nil {
				return err
			}

			m, ok := opts.Lookup(slug)
			if !ok {
				return cli.Exit(fmt.Sprintf("slug %q is not configured in section %s", slug, opts.Section()), 1)
			}

			fmt.Fprintln(c.App.Writer, m.Address)
			return nil
		},
	}
}

func createWatchCommand(path *string, cfg *config.Config, logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "Bind the section and reload it whenever the file changes",
		Action: func(c *cli.Context) error {
			opts, err := loadSection(*path, logger)
			if err != nil {
				return err
			}

			store := config.NewStore(opts)
			logger.Info("configuration section bound",
				zap.String("section", opts.Section()),
				zap.Strings("slugs", opts.Slugs()),
			)

			w := watch.New(*path, store, logger,
				watch.WithDebounce(cfg.WatchDebounce),
				watch.WithOnReload(func(prev, next *config.Opts) {
					logger.Info("section replaced",
						zap.Strings("previous", prev.Slugs()),
						zap.Strings("current", next.Slugs()),
					)
				}),
			)
			return w.Run(c.Context)
		},
	}
}
