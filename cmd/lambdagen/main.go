package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/ib-77/lambda3/internal/generator"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "lambdagen"
	app.Usage = "generate the primitive specialization aliases"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "catalogue",
			Usage: "YAML catalogue of kinds; the default catalogue is used when empty",
		},
		cli.StringFlag{
			Name:  "out",
			Value: "aliases_gen.go",
			Usage: "file to write, or - for stdout",
		},
		cli.StringFlag{
			Name:  "package",
			Usage: "package clause of the generated file, overrides the catalogue",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "log every kind of the catalogue",
		},
	}
	app.Action = run
	return app
}

func run(c *cli.Context) error {
	logger, err := newLogger(c.Bool("verbose"))
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	catalogue := generator.DefaultCatalogue()
	if path := c.String("catalogue"); path != "" {
		catalogue, err = generator.LoadCatalogue(path)
		if err != nil {
			return fmt.Errorf("load catalogue %s: %w", path, err)
		}
		logger.Info("catalogue loaded", zap.String("path", path))
	}
	if pkg := c.String("package"); pkg != "" {
		catalogue.Package = pkg
	}

	if c.Bool("verbose") {
		kinds, err := catalogue.Entities()
		if err != nil {
			return err
		}
		for _, k := range kinds {
			logger.Debug("kind",
				zap.Stringer("entity", k),
				zap.Bool("primitive", k.Primitive()),
				zap.Uint64("key", k.Key()))
		}
	}

	out, err := generator.Render(catalogue)
	if err != nil {
		return err
	}

	path := c.String("out")
	if path == "-" {
		_, err = os.Stdout.Write(out.Source)
		return err
	}
	if err := os.WriteFile(path, out.Source, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	logger.Info("aliases generated",
		zap.String("out", path),
		zap.String("package", catalogue.Package),
		zap.Int("aliases", out.Aliases),
		zap.String("fingerprint", fmt.Sprintf("%016x", out.Fingerprint)))
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}
