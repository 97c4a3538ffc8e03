package main

import (
	"fmt"
	"os"

	"github.com/go-faster/errors"
	flags "github.com/jessevdk/go-flags"
	"github.com/massn/envordot"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var versionByBuildFlag string
var parser *flags.Parser
var app *App

func init() {
	if err := envordot.Load(false, ".env"); err == nil {
		fmt.Fprintln(os.Stderr, "Found \".env\" file. Environment variables are preferred, "+
			"but non-conflicting variables are those in the \".env\" file.")
	}
	app = &App{Conf: &Conf{}}
	setParser(app)
}

type App struct {
	Conf *Conf
}

func setParser(app *App) {
	parser = flags.NewParser(app, flags.Default)
	parser.ShortDescription = "grover"
	parser.LongDescription = "state-vector simulation of Grover's search on up to 20 qubits."
	parser.AddCommand("run", "run a search", "build the search circuit, simulate it and sample the result", newRunCmd())
	parser.AddCommand("tui", "explore interactively", "open the circuit explorer in the terminal", newTUICmd())
	parser.AddCommand("version", "print the version", "print the version", &versionCmd{})
}

func parse() {
	if _, err := parser.Parse(); err != nil {
		code := 1
		if fe, ok := err.(*flags.Error); ok {
			if fe.Type == flags.ErrHelp {
				code = 0
			}
		}
		if code == 1 {
			fmt.Fprintf(os.Stderr, "grover: %s\n", err)
		}
		os.Exit(code)
	}
}

// zapLogger builds the process logger. Logs go to --log-file when set and to
// fallback otherwise; a nil fallback discards them.
func zapLogger(conf *Conf, fallback zapcore.WriteSyncer) (*zap.Logger, error) {
	var encoder zapcore.Encoder
	if conf.DevMode {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		c := zap.NewProductionEncoderConfig()
		c.EncodeTime = zapcore.ISO8601TimeEncoder
		c.TimeKey = "timestamp"
		encoder = zapcore.NewJSONEncoder(c)
	}
	var level zap.AtomicLevel
	switch conf.LogLevel {
	case "debug":
		level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "error":
		level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	sink := fallback
	if conf.LogFile != "" {
		f, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, errors.Wrapf(err, "open log file %s", conf.LogFile)
		}
		sink = zapcore.AddSync(f)
	}
	if sink == nil {
		return zap.NewNop(), nil
	}
	core := zapcore.NewCore(encoder, zapcore.Lock(sink), level)
	return zap.New(core, zap.AddCaller()), nil
}

func setZap(conf *Conf, fallback zapcore.WriteSyncer) (*zap.Logger, error) {
	logger, err := zapLogger(conf, fallback)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	zap.L().Debug("Starting logger", zap.Bool("dev_mode", conf.DevMode), zap.String("level", conf.LogLevel))
	return logger, nil
}

type versionCmd struct{}

func (c *versionCmd) Execute(args []string) error {
	v := versionByBuildFlag
	if v == "" {
		v = "dev"
	}
	fmt.Println(v)
	return nil
}

func main() {
	parse()
}
