package main

import (
	"bytes"
	"flag"
	"io"
	"log/slog"
	"slices"
	"testing"
	"time"

	"github.com/amp-labs/reorderable/cli"
	"github.com/amp-labs/reorderable/envutil"
	"github.com/amp-labs/reorderable/errors"
	"github.com/amp-labs/reorderable/logger"
	"github.com/amp-labs/reorderable/playbook"
	"github.com/amp-labs/reorderable/shutdown"
	"github.com/neilotoole/slogt"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// donePrompter picks [Done] straight away.
type donePrompter struct{}

var _ cli.Prompter = donePrompter{}

func (donePrompter) Select(string, []string) (int, error) { return 0, nil }
func (donePrompter) PromptString(string) (string, error)  { return "", nil }
func (donePrompter) PromptInt(string) (int, error)        { return 0, nil }

// pickPrompter answers each Select with the item equal to the next scripted choice.
type pickPrompter struct {
	choices []string
}

func (p *pickPrompter) Select(_ string, items []string) (int, error) {
	choice := p.choices[0]
	p.choices = p.choices[1:]

	idx := slices.Index(items, choice)
	if idx < 0 {
		panic("scripted choice not offered: " + choice)
	}

	return idx, nil
}

func (p *pickPrompter) PromptString(string) (string, error) { return "", nil }
func (p *pickPrompter) PromptInt(string) (int, error)       { return 0, nil }

func testFs(t *testing.T) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()

	files := map[string]string{
		"/work/steps.yaml": "items: [a, b, c]\nops:\n  - op: reverse\n  - op: drop\n    index: 1\n",
		"/work/list.txt":   "x\ny\n",
	}

	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}

	return fs
}

func TestParseFlags(t *testing.T) {
	t.Parallel()

	t.Run("flags", func(t *testing.T) {
		t.Parallel()

		cfg, err := parseFlags(t.Context(), []string{"-playbook", "p.toml", "-items", "i.txt", "-dump"}, io.Discard)
		require.NoError(t, err)
		assert.Equal(t, config{playbook: "p.toml", items: "i.txt", dump: true}, cfg)
	})

	t.Run("environment defaults", func(t *testing.T) {
		t.Parallel()

		ctx := envutil.WithEnvOverride(t.Context(), "REORDER_PLAYBOOK", "env.yaml")
		ctx = envutil.WithEnvOverride(ctx, "REORDER_INTERACTIVE", "true")

		cfg, err := parseFlags(ctx, nil, io.Discard)
		require.NoError(t, err)
		assert.Equal(t, config{playbook: "env.yaml", interactive: true}, cfg)

		cfg, err = parseFlags(ctx, []string{"-playbook", "flag.yaml", "-interactive=false"}, io.Discard)
		require.NoError(t, err)
		assert.Equal(t, config{playbook: "flag.yaml"}, cfg)
	})

	t.Run("save from environment", func(t *testing.T) {
		t.Parallel()

		ctx := envutil.WithEnvOverride(t.Context(), "REORDER_SAVE", "out.toml")

		cfg, err := parseFlags(ctx, []string{"-items", "i.txt"}, io.Discard)
		require.NoError(t, err)
		assert.Equal(t, config{items: "i.txt", save: "out.toml"}, cfg)
	})

	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()

		_, err := parseFlags(t.Context(), []string{"-shuffle"}, io.Discard)
		require.Error(t, err)
		assert.Equal(t, 2, usageExitCode(err))
	})

	t.Run("help exits cleanly", func(t *testing.T) {
		t.Parallel()

		var usage bytes.Buffer

		_, err := parseFlags(t.Context(), []string{"-h"}, &usage)
		require.ErrorIs(t, err, flag.ErrHelp)
		assert.Equal(t, 0, usageExitCode(err))
		assert.Contains(t, usage.String(), "-save")
	})
}

func TestRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  config
		want string
	}{
		{
			name: "playbook",
			cfg:  config{playbook: "/work/steps.yaml"},
			want: "2\tc\n0\ta\n",
		},
		{
			name: "items override playbook items",
			cfg:  config{playbook: "/work/steps.yaml", items: "/work/list.txt"},
			want: "1\ty\n",
		},
		{
			name: "items only",
			cfg:  config{items: "/work/list.txt", interactive: true},
			want: "0\tx\n1\ty\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer

			ctx := logger.WithLogger(t.Context(), slogt.New(t))

			require.NoError(t, run(ctx, testFs(t), tt.cfg, donePrompter{}, &out))
			assert.Equal(t, tt.want, out.String())
		})
	}

	t.Run("dump", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer

		require.NoError(t, run(t.Context(), testFs(t), config{items: "/work/list.txt", dump: true}, donePrompter{}, &out))
		assert.Contains(t, out.String(), "0\tx\n1\ty\n")
		assert.Contains(t, out.String(), "nextID")
	})

	t.Run("no input", func(t *testing.T) {
		t.Parallel()

		err := run(t.Context(), testFs(t), config{}, donePrompter{}, io.Discard)
		require.ErrorIs(t, err, errors.ErrNoInput)
	})

	t.Run("missing playbook", func(t *testing.T) {
		t.Parallel()

		err := run(t.Context(), testFs(t), config{playbook: "/work/none.yaml"}, donePrompter{}, io.Discard)
		require.Error(t, err)
	})

	t.Run("save replays interactive edits", func(t *testing.T) {
		t.Parallel()

		fs := testFs(t)
		prompter := &pickPrompter{choices: []string{"y  (#1)", cli.ActionMoveUp, "[Done]"}}

		var out bytes.Buffer

		cfg := config{items: "/work/list.txt", interactive: true, save: "/work/saved.yaml"}
		require.NoError(t, run(t.Context(), fs, cfg, prompter, &out))
		assert.Equal(t, "1\ty\n0\tx\n", out.String())

		saved, err := playbook.Load(fs, "/work/saved.yaml")
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "y"}, saved.Items)
		assert.Equal(t, []playbook.Op{{Op: "moveUp", Index: 1}}, saved.Ops)

		var replayed bytes.Buffer

		require.NoError(t, run(t.Context(), fs, config{playbook: "/work/saved.yaml"}, donePrompter{}, &replayed))
		assert.Equal(t, out.String(), replayed.String())
	})

	t.Run("save keeps playbook ops", func(t *testing.T) {
		t.Parallel()

		fs := testFs(t)

		var out bytes.Buffer

		cfg := config{playbook: "/work/steps.yaml", save: "/work/saved.toml"}
		require.NoError(t, run(t.Context(), fs, cfg, donePrompter{}, &out))

		saved, err := playbook.Load(fs, "/work/saved.toml")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, saved.Items)
		assert.Equal(t, []playbook.Op{{Op: "reverse"}, {Op: "drop", Index: 1}}, saved.Ops)

		var replayed bytes.Buffer

		require.NoError(t, run(t.Context(), fs, config{playbook: "/work/saved.toml"}, donePrompter{}, &replayed))
		assert.Equal(t, out.String(), replayed.String())
	})

	t.Run("log lines carry the input flags", func(t *testing.T) {
		t.Parallel()

		var logs bytes.Buffer

		ctx := logger.WithLogger(t.Context(), slog.New(slog.NewJSONHandler(&logs, nil)))

		cfg := config{items: "/work/list.txt", save: "/work/saved.yml"}
		require.NoError(t, run(ctx, testFs(t), cfg, donePrompter{}, io.Discard))

		assert.Contains(t, logs.String(), `"msg":"saved playbook"`)
		assert.Contains(t, logs.String(), `"items":"/work/list.txt"`)
	})

	t.Run("unsupported save format", func(t *testing.T) {
		t.Parallel()

		err := run(t.Context(), testFs(t), config{items: "/work/list.txt", save: "/work/saved.json"}, donePrompter{}, io.Discard)
		require.ErrorIs(t, err, errors.ErrUnsupportedFormat)
	})
}

func TestWarnOnInterrupt(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	base := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx, handler := shutdown.SetupHandler(logger.WithLogger(t.Context(), base))
	defer handler.Stop()

	warnOnInterrupt(ctx, handler, config{playbook: "/work/steps.yaml"})

	handler.Shutdown()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context was not canceled")
	}

	handler.Stop()

	assert.Contains(t, buf.String(), "interrupted, nothing was printed")
	assert.Contains(t, buf.String(), "/work/steps.yaml")
}
