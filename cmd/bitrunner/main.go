// Command bitrunner automates the routine chores of the hacking game: it
// solves coding contracts, maps and unlocks the network, picks a mining
// target and keeps miners deployed.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/bitrunner/config"
	"github.com/katalvlaran/bitrunner/host"
	"github.com/katalvlaran/bitrunner/storage"
	"github.com/katalvlaran/bitrunner/units"
)

// errFailed marks a failure already reported to the user.
var errFailed = errors.New("failed")

// app holds flag values and the dependencies commands share.
type app struct {
	configPath string
	worldPath  string
	dataDir    string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
	out    *units.Printer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd(w io.Writer) *cobra.Command {
	a := &app{logger: zap.NewNop(), out: units.NewPrinter(w)}

	root := &cobra.Command{
		Use:           "bitrunner",
		Short:         "Automation for the hacking game: contracts, network, unlocking, mining",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.SetOut(w)
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "configuration file (YAML)")
	root.PersistentFlags().StringVar(&a.worldPath, "world", "", "world snapshot, overrides world_path")
	root.PersistentFlags().StringVar(&a.dataDir, "data-dir", "", "data directory, overrides data_dir")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		a.contractsCmd(),
		a.serversCmd(),
		a.pathCmd(),
		a.unlockCmd(),
		a.targetCmd(),
		a.filesCmd(),
		a.mineCmd(),
		a.bankCmd(),
	)
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.worldPath != "" {
		cfg.WorldPath = a.worldPath
	}
	if a.dataDir != "" {
		if cfg.LedgerPath == config.Default().LedgerPath {
			cfg.LedgerPath = filepath.Join(a.dataDir, "ledger.db")
		}
		cfg.DataDir = a.dataDir
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	zc := zap.NewProductionConfig()
	if a.verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	return nil
}

func (a *app) world() (*host.World, error) {
	w, err := host.Load(a.cfg.WorldPath)
	if err != nil {
		return nil, fmt.Errorf("loading world: %w", err)
	}
	return w, nil
}

func (a *app) saveWorld(w *host.World) error {
	if err := w.Save(a.cfg.WorldPath); err != nil {
		return fmt.Errorf("saving world: %w", err)
	}
	return nil
}

func (a *app) store() (*storage.Store, error) {
	return storage.Open(a.cfg.DataDir, storage.WithLogger(a.logger))
}

// fail prints a FAILED line and returns errFailed.
func (a *app) fail(format string, args ...any) error {
	a.out.Failed(format, args...)
	return errFailed
}
