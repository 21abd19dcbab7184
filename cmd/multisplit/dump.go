package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"

	"multisplit"
)

func runDump(_ context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 1 {
		return errors.New("expected exactly one layout file")
	}
	fname := cmd.Args().Get(0)

	data, err := os.ReadFile(fname)
	if err != nil {
		return fmt.Errorf("unable to read layout: %w", err)
	}

	logger, err := newLogger(cmd.Bool("verbose"))
	if err != nil {
		return err
	}
	defer logger.Sync()

	root, err := multisplit.Deserialize(data, nil, multisplit.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("unable to restore layout: %w", err)
	}

	fmt.Print(root.DumpLayout())

	if err := root.CheckSanity(); err != nil {
		return fmt.Errorf("layout invariants violated: %w", err)
	}
	fmt.Println("layout ok")
	return nil
}
