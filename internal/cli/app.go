// Package cli implements the gpacalc command line tool.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/language"

	"github.com/yigit/gpacalc/internal/app/report"
	"github.com/yigit/gpacalc/internal/config"
	"github.com/yigit/gpacalc/internal/domain/grading"
	"github.com/yigit/gpacalc/internal/pkg/apperrors"
	"github.com/yigit/gpacalc/internal/pkg/i18n"
	"github.com/yigit/gpacalc/internal/pkg/logger"
)

const (
	flagConfig        = "config"
	flagLang          = "lang"
	flagLogLevel      = "log-level"
	flagSubject       = "subject"
	flagPreviousGPA   = "previous-gpa"
	flagPreviousUnits = "previous-units"
)

// NewApp builds the gpacalc application writing reports to out and
// diagnostics to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:      "gpacalc",
		Usage:     "calculate semester and cumulative GPA",
		Writer:    out,
		ErrWriter: errOut,

		// Exit codes are handled by Run
		ExitErrHandler: func(*cli.Context, error) {},
		// Subject names may contain commas
		DisableSliceFlagSeparator: true,

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagConfig,
				Usage:   "YAML config file with a custom grading scale",
				EnvVars: []string{"CONFIG_PATH"},
			},
			&cli.StringFlag{
				Name:    flagLang,
				Usage:   "label language (en-US, ar)",
				Value:   i18n.BaseLocale,
				EnvVars: []string{"GPACALC_LANG"},
			},
			&cli.StringFlag{
				Name:  flagLogLevel,
				Usage: "diagnostic log level",
				Value: string(logger.WarnLevel),
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "calc",
				Usage: "calculate GPA for the given subjects",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:     flagSubject,
						Aliases:  []string{"s"},
						Usage:    `subject as "Name:GRADE:UNITS[:retake]", repeatable`,
						Required: true,
					},
					&cli.Float64Flag{
						Name:  flagPreviousGPA,
						Usage: "cumulative GPA of earlier semesters",
					},
					&cli.StringFlag{
						Name:  flagPreviousUnits,
						Usage: "units earned in earlier semesters",
					},
				},
				Action: runCalc,
			},
			{
				Name:   "scale",
				Usage:  "print the grading scale",
				Action: runScale,
			},
		},
	}
}

// Run executes the application with os.Args semantics
func Run(args []string) int {
	app := NewApp(os.Stdout, os.Stderr)
	if err := app.Run(args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		return 1
	}
	return 0
}

type environment struct {
	scale   *grading.GradeScale
	catalog *i18n.Catalog
	tag     language.Tag
	logger  zerolog.Logger
}

func setup(c *cli.Context) (*environment, error) {
	lgr := logger.New(logger.Config{
		Level:  logger.LogLevel(c.String(flagLogLevel)),
		Output: c.App.ErrWriter,
	})

	scale := grading.DefaultScale()
	if path := c.String(flagConfig); path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		cfg, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		scale, err = cfg.GradeScale()
		if err != nil {
			return nil, err
		}
		lgr.Debug().Str("path", path).Strs("grades", scale.Symbols()).Msg("Grade scale loaded")
	}

	catalog, err := i18n.Load()
	if err != nil {
		return nil, err
	}

	return &environment{
		scale:   scale,
		catalog: catalog,
		tag:     catalog.Match(c.String(flagLang)),
		logger:  lgr,
	}, nil
}

// validationExit localizes validation errors for the terminal
func (e *environment) validationExit(err error) error {
	if vErr, ok := apperrors.AsValidationError(err); ok {
		e.logger.Debug().Str("field", vErr.Field).Str("reason", string(vErr.Reason)).Msg("Input rejected")
		return cli.Exit(e.catalog.ValidationMessage(e.tag, vErr), 2)
	}
	return err
}

func runCalc(c *cli.Context) error {
	env, err := setup(c)
	if err != nil {
		return err
	}

	ledger := grading.NewLedger(env.scale)
	for _, raw := range c.StringSlice(flagSubject) {
		arg, err := parseSubjectArg(raw)
		if err != nil {
			return env.validationExit(err)
		}
		if _, err := ledger.AddSubject(arg.Name, arg.Grade, arg.Units, arg.IsRetake); err != nil {
			return env.validationExit(err)
		}
	}

	priorUnits, err := grading.ParsePriorUnits(c.String(flagPreviousUnits))
	if err != nil {
		return env.validationExit(err)
	}

	result, err := ledger.CalculateGPA(c.Float64(flagPreviousGPA), priorUnits)
	if err != nil {
		return env.validationExit(err)
	}
	env.logger.Debug().Int("subjects", ledger.Len()).Float64("cumulativeGpa", result.CumulativeGPA).Msg("GPA calculated")

	w := report.NewWriter(c.App.Writer, env.catalog, env.tag)
	if err := w.Subjects(ledger.Subjects(), ledger.Scale()); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(c.App.Writer); err != nil {
		return err
	}
	return w.Result(result)
}

func runScale(c *cli.Context) error {
	env, err := setup(c)
	if err != nil {
		return err
	}
	return report.NewWriter(c.App.Writer, env.catalog, env.tag).Scale(env.scale)
}
