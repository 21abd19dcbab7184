package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            "multisplit",
		Usage:           "recursive splitter layout engine",
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log layout diagnostics to stderr"},
		},
		Commands: []*cli.Command{
			{
				Name:   "demo",
				Usage:  "Interactive terminal playground for the layout engine",
				Action: runDemo,
			},
			{
				Name:      "dump",
				Usage:     "Pretty-print a serialized layout and verify its invariants",
				Action:    runDump,
				ArgsUsage: "FILE",
			},
		},
	}

	err := app.Run(ctx, os.Args)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "multisplit: %v\n", err)
		os.Exit(1)
	}
}
