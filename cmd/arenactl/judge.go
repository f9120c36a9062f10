package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"gitlab.com/codearena.net/internal/adapter/piston"
	"gitlab.com/codearena.net/internal/config"
	"gitlab.com/codearena.net/internal/core/services/judge"
	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/problemfile"
)

func (a *app) judgeCommand() *cli.Command {
	return &cli.Command{
		Name:  "judge",
		Usage: "run a solution against every test case of a problem file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "problem", Aliases: []string{"p"}, Usage: "problem `FILE` (.toml)", Required: true},
			&cli.StringFlag{Name: "lang", Aliases: []string{"l"}, Usage: "solution language", Required: true},
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "solution source `FILE`", Required: true},
			&cli.BoolFlag{Name: "strict", Usage: "report an unresolvable entry point as a compilation error"},
		},
		Action: a.judge,
	}
}

func (a *app) judge(ctx context.Context, cmd *cli.Command) error {
	problem, err := problemfile.Load(cmd.String("problem"))
	if err != nil {
		return err
	}
	code, err := os.ReadFile(cmd.String("file"))
	if err != nil {
		return fmt.Errorf("failed to read solution: %w", err)
	}

	judgeCfg := config.NewJudgeConfig()
	if cmd.Bool("strict") {
		judgeCfg.StrictEntryPoint = true
	}
	svc := judge.NewJudgeService(piston.NewClient(config.NewSandboxConfig(), a.logger), judgeCfg, a.logger)

	lang := domain.ParseLanguage(cmd.String("lang"))
	if !svc.Supports(lang) {
		return fmt.Errorf("unsupported language: %s", lang)
	}

	outcome, err := svc.JudgeCases(ctx, lang, string(code), problem.TestCases, int64(problem.TimeLimitMs))
	if err != nil {
		return err
	}

	printOutcome(os.Stdout, problem, *outcome, svc.Score(problem.Difficulty, *outcome))
	if outcome.Verdict != domain.VerdictAccepted {
		return cli.Exit("", 2)
	}
	return nil
}
