// Command reorder builds a list of items, applies a playbook of reordering
// operations to it and prints the result as "key<TAB>value" lines. Keys are
// the stable ids each item received when it entered the list.
//
// Usage:
//
//	reorder -playbook steps.yaml
//	reorder -items list.txt -interactive -save edits.yaml
//
// With -save, the starting items and every operation applied (playbook ops
// followed by interactive edits) are written out as a new playbook that
// reproduces the result.
//
// REORDER_PLAYBOOK, REORDER_INTERACTIVE and REORDER_SAVE provide defaults for
// the flags of the same name. Logging is configured with LOG_JSON, LOG_LEVEL
// and LOG_OUTPUT.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/amp-labs/reorderable/cli"
	"github.com/amp-labs/reorderable/envutil"
	"github.com/amp-labs/reorderable/errors"
	"github.com/amp-labs/reorderable/logger"
	"github.com/amp-labs/reorderable/playbook"
	"github.com/amp-labs/reorderable/shutdown"
	"github.com/sanity-io/litter"
	"github.com/spf13/afero"
)

// dumpOptions shows the list's private fields (ids and counter).
var dumpOptions = litter.Options{StripPackageNames: true} //nolint:gochecknoglobals

type config struct {
	playbook    string
	items       string
	interactive bool
	dump        bool
	save        string
}

func parseFlags(ctx context.Context, args []string, output io.Writer) (config, error) {
	var cfg config

	fset := flag.NewFlagSet("reorder", flag.ContinueOnError)
	fset.SetOutput(output)

	fset.StringVar(&cfg.playbook, "playbook",
		envutil.String(ctx, "REORDER_PLAYBOOK").ValueOrElse(""),
		"playbook file (.yaml, .yml or .toml)")
	fset.StringVar(&cfg.items, "items", "",
		"text file with one item per line; overrides the playbook's items")
	fset.BoolVar(&cfg.interactive, "interactive",
		envutil.Bool(ctx, "REORDER_INTERACTIVE").ValueOrElse(false),
		"edit the list in the terminal before printing it")
	fset.BoolVar(&cfg.dump, "dump", false, "also dump the list's internal state")
	fset.StringVar(&cfg.save, "save",
		envutil.String(ctx, "REORDER_SAVE").ValueOrElse(""),
		"write a playbook (.yaml, .yml or .toml) that replays this run")

	if err := fset.Parse(args); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// usageExitCode maps a parseFlags error to the process exit code.
func usageExitCode(err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}

	return 2 //nolint:mnd
}

// load resolves the starting items and ops from the playbook and items flags.
func load(ctx context.Context, fs afero.Fs, cfg config) (*playbook.Playbook, error) {
	var pb *playbook.Playbook

	switch {
	case cfg.playbook != "":
		loaded, err := playbook.Load(fs, cfg.playbook)
		if err != nil {
			return nil, err
		}

		pb = loaded
	case cfg.items != "":
		pb = &playbook.Playbook{}
	default:
		return nil, errors.ErrNoInput
	}

	if cfg.items != "" {
		items, err := playbook.LoadItems(fs, cfg.items)
		if err != nil {
			return nil, err
		}

		pb.Items = items
	}

	logger.Get(ctx).Debug("loaded input", "items", len(pb.Items), "ops", len(pb.Ops))

	return pb, nil
}

func run(ctx context.Context, fs afero.Fs, cfg config, prompter cli.Prompter, out io.Writer) error {
	ctx = logger.With(ctx, "playbook", cfg.playbook, "items", cfg.items)

	pb, err := load(ctx, fs, cfg)
	if err != nil {
		return err
	}

	list, err := playbook.Run(ctx, pb)
	if err != nil {
		return err
	}

	ops := slices.Clone(pb.Ops)

	if cfg.interactive {
		session := cli.NewSession(prompter, list)
		if err := session.Run(ctx); err != nil {
			return err
		}

		list = session.List()
		ops = append(ops, session.History()...)
	}

	if err := list.Validate(); err != nil {
		return err
	}

	if cfg.save != "" {
		// Not strict: interactive edits were applied leniently.
		saved := playbook.Playbook{Items: pb.Items, Ops: ops}
		if err := playbook.Save(fs, cfg.save, saved); err != nil {
			return err
		}

		logger.Get(ctx).Info("saved playbook", "path", cfg.save, "ops", len(ops))
	}

	if err := playbook.Format(out, list); err != nil {
		return err
	}

	if cfg.dump {
		if _, err := fmt.Fprintln(out, dumpOptions.Sdump(list)); err != nil {
			return err
		}
	}

	return nil
}

// warnOnInterrupt reports a signal that arrives before the list is printed.
func warnOnInterrupt(ctx context.Context, handler *shutdown.Handler, cfg config) {
	handler.BeforeShutdown(func() {
		logger.Get(ctx).Warn("interrupted, nothing was printed",
			"playbook", cfg.playbook, "items", cfg.items, "save", cfg.save)
	})
}

func main() {
	ctx, handler := shutdown.SetupHandler(logger.WithRunId(context.Background()))

	logger.ConfigureLogging(ctx, "reorder")

	cfg, err := parseFlags(ctx, os.Args[1:], os.Stderr)
	if err != nil {
		handler.Stop()
		os.Exit(usageExitCode(err))
	}

	warnOnInterrupt(ctx, handler, cfg)

	err = run(ctx, afero.NewOsFs(), cfg, cli.NewTerminal(), os.Stdout)

	handler.Stop()

	if err != nil {
		logger.Get(ctx).Error("reorder failed", "error", err)
		os.Exit(1)
	}
}
