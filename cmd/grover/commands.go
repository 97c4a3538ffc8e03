package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-faster/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/meta77/grover/grover"
	"github.com/meta77/grover/internal/tui"
	"github.com/meta77/grover/internal/view"
)

type runCmd struct {
	SearchOptions
	JSON   bool `long:"json" description:"print the result as JSON"`
	Rows   int  `long:"rows" description:"most basis states listed per stage" default:"16" env:"GROVER_ROWS"`
	Stages int  `long:"stages" description:"leading iterations whose states are recorded, -1 for all" default:"1" env:"GROVER_STAGES"`
}

func newRunCmd() *runCmd {
	return &runCmd{}
}

func (c *runCmd) Execute(args []string) error {
	logger, err := setZap(app.Conf, zapcore.AddSync(os.Stderr))
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return c.run(ctx, app.Conf, os.Stdout)
}

func (c *runCmd) run(ctx context.Context, conf *Conf, w io.Writer) error {
	cfg, err := c.resolve(conf)
	if err != nil {
		zap.L().Error("failed to resolve search options", zap.Error(err))
		return err
	}
	res, err := grover.Run(ctx, cfg, grover.WithStageIterations(c.Stages))
	if err != nil {
		zap.L().Error("search failed", zap.Error(err))
		return err
	}

	if c.JSON {
		_, err = io.WriteString(w, res.JSON())
		return err
	}
	_, err = io.WriteString(w, view.Report(res, c.Rows))
	return err
}

type tuiCmd struct {
	SearchOptions
	SavePath string `long:"save" description:"file written by ctrl+s" default:"grover.qasm" env:"GROVER_SAVE_PATH"`
}

func newTUICmd() *tuiCmd {
	return &tuiCmd{}
}

func (c *tuiCmd) Execute(args []string) error {
	// Anything written to the terminal would tear the alt screen, so logs
	// only go to --log-file here.
	logger, err := setZap(app.Conf, nil)
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg, err := c.resolve(app.Conf)
	if err != nil {
		return err
	}
	m, err := tui.New(tui.Options{Config: cfg, SavePath: c.SavePath, Logger: logger})
	if err != nil {
		return err
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return errors.Wrap(err, "explorer")
	}
	return nil
}
