package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	flags "github.com/jessevdk/go-flags"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/meta77/grover/grover"
	"github.com/meta77/grover/quantum"
)

func TestResolveDefaults(t *testing.T) {
	cfg, err := (&SearchOptions{}).resolve(&Conf{})
	require.NoError(t, err)
	assert.Equal(t, *grover.NewConfig(), cfg)
}

func TestResolveFlagsOverRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.toml")
	require.NoError(t, os.WriteFile(path, []byte(heredoc.Doc(`
		qubits = 4
		target = "0110"
		shots = 64
		seed = 7
		iterations = 2
	`)), 0o600))
	conf := &Conf{ConfigPath: path}

	cfg, err := (&SearchOptions{}).resolve(conf)
	require.NoError(t, err)
	assert.Equal(t, "0110", cfg.Target)
	assert.Equal(t, 2, cfg.Iterations)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(7), *cfg.Seed)

	zero := 0
	cfg, err = (&SearchOptions{Target: "11", Shots: 10, Iterations: &zero}).resolve(conf)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Qubits)
	assert.Equal(t, "11", cfg.Target)
	assert.Equal(t, 10, cfg.Shots)
	assert.Equal(t, 0, cfg.Iterations)
	assert.Equal(t, int64(7), *cfg.Seed)
}

func TestResolveOptimal(t *testing.T) {
	cfg, err := (&SearchOptions{Target: "1011", Optimal: true}).resolve(&Conf{})
	require.NoError(t, err)
	assert.Equal(t, grover.OptimalIterations(4), cfg.Iterations)
}

func TestResolveRejectsBadOptions(t *testing.T) {
	_, err := (&SearchOptions{Target: "101", Qubits: 4}).resolve(&Conf{})
	assert.ErrorIs(t, err, quantum.ErrInvalidTarget)

	_, err = (&SearchOptions{Shots: -5}).resolve(&Conf{})
	assert.ErrorIs(t, err, quantum.ErrInvalidShotCount)

	_, err = (&SearchOptions{}).resolve(&Conf{ConfigPath: filepath.Join(t.TempDir(), "none.toml")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseRunFlags(t *testing.T) {
	cmd := newRunCmd()
	p := flags.NewParser(&App{Conf: &Conf{}}, flags.None)
	_, err := p.AddCommand("run", "", "", cmd)
	require.NoError(t, err)

	var executed flags.Commander
	p.CommandHandler = func(command flags.Commander, args []string) error {
		executed = command
		return nil
	}
	_, err = p.ParseArgs([]string{"--log-level", "debug", "run", "-t", "101", "--seed", "42", "-k", "0", "--json"})
	require.NoError(t, err)

	assert.Same(t, cmd, executed)
	assert.Equal(t, "101", cmd.Target)
	require.NotNil(t, cmd.Seed)
	assert.Equal(t, int64(42), *cmd.Seed)
	require.NotNil(t, cmd.Iterations)
	assert.Equal(t, 0, *cmd.Iterations)
	assert.True(t, cmd.JSON)
	assert.Equal(t, 16, cmd.Rows)
	assert.Equal(t, 1, cmd.Stages)
}

func TestRunCommandJSON(t *testing.T) {
	seed := int64(2024)
	cmd := &runCmd{SearchOptions: SearchOptions{Target: "101", Shots: 512, Seed: &seed}, JSON: true}

	var out bytes.Buffer
	require.NoError(t, cmd.run(context.Background(), &Conf{}, &out))

	var res grover.Result
	require.NoError(t, jsoniter.Unmarshal(out.Bytes(), &res))
	assert.Equal(t, "101", res.Target)
	assert.Equal(t, 512, res.Counts.Total())
	assert.InDelta(t, 25.0/32, res.Probability, 1e-9)
	top, _ := res.Counts.Top()
	assert.Equal(t, "101", top)
}

func TestRunCommandReport(t *testing.T) {
	seed := int64(1)
	cmd := &runCmd{SearchOptions: SearchOptions{Target: "10", Shots: 32, Seed: &seed}, Rows: 4}

	var out bytes.Buffer
	require.NoError(t, cmd.run(context.Background(), &Conf{}, &out))
	assert.Contains(t, out.String(), "found 10")
	assert.Contains(t, out.String(), "after Diffuser #1")
}

func TestRunCommandStages(t *testing.T) {
	seed := int64(4)
	k := 4
	opts := SearchOptions{Target: "110", Shots: 16, Seed: &seed, Iterations: &k}

	decode := func(stages int) grover.Result {
		cmd := &runCmd{SearchOptions: opts, JSON: true, Stages: stages}
		var out bytes.Buffer
		require.NoError(t, cmd.run(context.Background(), &Conf{}, &out))
		var res grover.Result
		require.NoError(t, jsoniter.Unmarshal(out.Bytes(), &res))
		return res
	}

	res := decode(1)
	assert.Len(t, res.Stages, 4)
	assert.Equal(t, 5, res.Omitted)

	res = decode(-1)
	assert.Len(t, res.Stages, 1+2*k)
	assert.Zero(t, res.Omitted)
}

func TestZapLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grover.log")

	logger, err := zapLogger(&Conf{LogLevel: "info", LogFile: path}, nil)
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("visible", zap.String("target", "101"))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"visible"`)
	assert.Contains(t, string(data), `"timestamp"`)
	assert.NotContains(t, string(data), "hidden")

	nop, err := zapLogger(&Conf{LogLevel: "debug"}, nil)
	require.NoError(t, err)
	assert.False(t, nop.Core().Enabled(zap.ErrorLevel))

	_, err = zapLogger(&Conf{LogFile: filepath.Join(t.TempDir(), "missing", "x.log")}, nil)
	assert.Error(t, err)
}
