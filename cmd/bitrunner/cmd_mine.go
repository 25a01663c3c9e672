package main

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bitrunner/host"
	"github.com/katalvlaran/bitrunner/mining"
	"github.com/katalvlaran/bitrunner/storage"
	"github.com/katalvlaran/bitrunner/units"
)

func (a *app) mineCmd() *cobra.Command {
	var (
		once        bool
		homeReserve string
	)
	cmd := &cobra.Command{
		Use:   "mine [target]",
		Short: "Deploy miners to every unlocked server and keep them deployed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := a.store()
			if err != nil {
				return err
			}
			tgt := ""
			if len(args) == 1 {
				tgt = args[0]
			} else if tgt, err = st.MiningTarget(); err != nil {
				return err
			}
			reserveGB := a.cfg.HomeReserveGB
			if homeReserve != "" {
				if reserveGB, err = units.ParseRAM(homeReserve); err != nil {
					return a.fail("Invalid home reserve: %s", homeReserve)
				}
			}
			if tgt == "" {
				return a.fail("Failed to get Target nor was it provided.")
			}
			servers, err := st.UnlockedServers()
			if err != nil {
				return err
			}
			if len(servers) == 0 {
				return a.fail("No servers available.")
			}

			w, err := a.world()
			if err != nil {
				return err
			}
			ram, err := w.ScriptRAM(ctx, a.cfg.MinerScript)
			if err != nil {
				return err
			}
			s := mining.Session{
				Target:      tgt,
				Script:      a.cfg.MinerScript,
				ScriptRAM:   ram,
				Root:        a.cfg.RootHost,
				HomeReserve: reserveGB,
			}
			q := mining.NewQueue(a.cfg.QueueCapacity)
			m := mining.NewManager(w, q, mining.WithLogger(a.logger))

			a.out.Lines(
				fmt.Sprintf("Mining manager starting(target: [%s])...", tgt),
				fmt.Sprintf("Using: %s (%s).", s.Script, units.FormatRAM(ram, 2)),
				fmt.Sprintf("Found %d servers.", len(servers)))

			rep, err := m.Start(ctx, s, servers)
			if err != nil {
				return err
			}
			a.out.Lines(fmt.Sprintf("Deployed: %d, optimal: %d, skipped: %d", rep.Deployed, rep.Optimal, rep.Skipped))
			if once {
				return a.saveRuntime(w)
			}

			err = a.serve(ctx, w, st, m, q, s, servers)
			if serr := a.saveRuntime(w); serr != nil {
				return serr
			}
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&once, "once", false, "deploy once and exit instead of watching for newly unlocked servers")
	cmd.Flags().StringVar(&homeReserve, "home-reserve", "", "RAM kept free on the root host, e.g. 256GB or 1TB; overrides home_reserve_gb")
	return cmd
}

// saveRuntime writes the miner's processes back to the world file without
// clobbering what other commands saved meanwhile.
func (a *app) saveRuntime(w *host.World) error {
	if err := w.SaveRuntime(a.cfg.WorldPath); err != nil {
		return fmt.Errorf("saving world: %w", err)
	}
	return nil
}

// accessRetry is how often hosts listed as unlocked but not yet rooted in the
// world file are checked again.
const accessRetry = 200 * time.Millisecond

// handoff turns newly unlocked hosts into queue notifications once the world
// file shows root on them. The unlocked list and the world file are separate
// writes, so a host can be listed before its root flag is visible.
type handoff struct {
	w      *host.World
	q      *mining.Queue
	path   string
	logger *zap.Logger

	mu      sync.Mutex
	pending []string
}

func (h *handoff) add(ctx context.Context, hosts []string) {
	h.mu.Lock()
	h.pending = append(h.pending, hosts...)
	h.mu.Unlock()
	h.flush(ctx)
}

func (h *handoff) flush(ctx context.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.pending) == 0 {
		return
	}
	if err := h.w.SyncAccess(h.path); err != nil {
		h.logger.Warn("syncing world access", zap.Error(err))
		return
	}
	keep := h.pending[:0]
	for _, server := range h.pending {
		root, err := h.w.HasRoot(ctx, server)
		switch {
		case err != nil:
			h.logger.Warn("dropping unlocked server", zap.String("server", server), zap.Error(err))
		case !root:
			h.logger.Debug("waiting for root access", zap.String("server", server))
			keep = append(keep, server)
		case !h.q.Notify(server):
			h.logger.Warn("mining queue full, retrying", zap.String("server", server))
			keep = append(keep, server)
		}
	}
	h.pending = keep
}

// serve runs the queue consumer next to a watcher that turns additions to
// the saved unlocked list into queue notifications.
func (a *app) serve(ctx context.Context, w *host.World, st *storage.Store, m *mining.Manager, q *mining.Queue, s mining.Session, known []string) error {
	g, ctx := errgroup.WithContext(ctx)
	h := &handoff{w: w, q: q, path: a.cfg.WorldPath, logger: a.logger}

	g.Go(func() error { return m.Run(ctx, s) })

	g.Go(func() error {
		return st.Watch(ctx, func(name string) {
			if name != storage.UnlockedServersFile {
				return
			}
			cur, err := st.UnlockedServers()
			if err != nil {
				a.logger.Warn("reading unlocked servers", zap.Error(err))
				return
			}
			added := storage.Added(known, cur)
			known = cur
			if len(added) > 0 {
				h.add(ctx, added)
			}
		})
	})

	g.Go(func() error {
		t := time.NewTicker(accessRetry)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-t.C:
				h.flush(ctx)
			}
		}
	})
	return g.Wait()
}
