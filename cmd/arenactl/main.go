// Command arenactl judges local solutions against TOML problem files and
// seeds the problem catalog.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"gitlab.com/codearena.net/internal/adapter/logging"
	"gitlab.com/codearena.net/internal/core/ports/primary"
)

type app struct {
	logger primary.Logger
}

func main() {
	a := &app{logger: logging.NewNopLogger()}

	cmd := &cli.Command{
		Name:  "arenactl",
		Usage: "judge solutions and manage the problem catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env",
				Usage: "load `NAME`.env before running",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "write structured logs to stderr",
			},
		},
		Before: a.before,
		Commands: []*cli.Command{
			a.judgeCommand(),
			a.seedCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if env := cmd.String("env"); env != "" {
		if err := godotenv.Load(env + ".env"); err != nil {
			return ctx, fmt.Errorf("failed to load %s.env: %w", env, err)
		}
	}
	if cmd.Bool("verbose") {
		a.logger = logging.NewZapLogger()
	}
	return ctx, nil
}
