package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"gitlab.com/codearena.net/internal/adapter/postgres"
	"gitlab.com/codearena.net/internal/adapter/postgres/problemrepository"
	"gitlab.com/codearena.net/internal/config"
	"gitlab.com/codearena.net/internal/problemfile"
)

func (a *app) seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "upsert every problem file of a directory into postgres",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dir", Aliases: []string{"d"}, Usage: "`DIR` holding *.toml problems", Value: "problems"},
		},
		Action: a.seed,
	}
}

func (a *app) seed(ctx context.Context, cmd *cli.Command) error {
	problems, err := problemfile.LoadDir(cmd.String("dir"))
	if err != nil {
		return err
	}
	if len(problems) == 0 {
		return fmt.Errorf("no %s files in %s", problemfile.Ext, cmd.String("dir"))
	}

	pgCfg := config.NewPostgresConfig()
	db, err := postgres.Connect(ctx, pgCfg.Url)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		return err
	}

	repo := problemrepository.NewProblemRepository(db, a.logger, pgCfg.Schema)
	for _, p := range problems {
		if err := repo.Upsert(ctx, p); err != nil {
			return err
		}
		fmt.Printf("%s %s (%s, %d test cases)\n", color.GreenString("seeded"), p.ID, p.Difficulty, len(p.TestCases))
	}
	return nil
}
