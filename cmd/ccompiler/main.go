package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/smasonuk/zktcc/pkg/compiler"
)

func main() {
	app := &cli.App{
		Name:  "zktcc",
		Usage: "compile a single-pass C dialect to ZKTC assembly",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "a.asm",
				Usage:   "write generated assembly to `FILE`",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log each compilation stage",
			},
		},
		Action: compileAction,
		Commands: []*cli.Command{
			{
				Name:      "dump-symbols",
				Usage:     "compile and print the resulting symbol table instead of assembly",
				ArgsUsage: "FILE",
				Action:    dumpSymbolsAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return cfg.Build()
}

func readSource(c *cli.Context) (string, string, error) {
	if c.NArg() < 1 {
		return "", "", cli.Exit("missing source file argument", 1)
	}
	path := c.Args().First()
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), filepath.Dir(path), nil
}

func compileAction(c *cli.Context) error {
	log, err := newLogger(c.Bool("verbose"))
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	src, baseDir, err := readSource(c)
	if err != nil {
		return err
	}

	log.Info("compiling", zap.String("file", c.Args().First()))
	assembly, _, err := compiler.Compile(src, baseDir)
	if err != nil {
		log.Error("compile failed", zap.Error(err))
		return cli.Exit(err, 1)
	}

	outPath := c.String("output")
	if err := os.WriteFile(outPath, []byte(assembly), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	log.Info("wrote assembly", zap.String("file", outPath), zap.Int("bytes", len(assembly)))
	return nil
}

func dumpSymbolsAction(c *cli.Context) error {
	log, err := newLogger(c.Bool("verbose"))
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	src, baseDir, err := readSource(c)
	if err != nil {
		return err
	}

	_, syms, err := compiler.Compile(src, baseDir)
	if err != nil {
		log.Error("compile failed", zap.Error(err))
		return cli.Exit(err, 1)
	}
	if syms == nil {
		return cli.Exit("no symbol table produced", 1)
	}
	fmt.Print(syms)
	return nil
}
