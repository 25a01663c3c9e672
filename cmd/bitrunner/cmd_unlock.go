package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bitrunner/host"
	"github.com/katalvlaran/bitrunner/netmap"
	"github.com/katalvlaran/bitrunner/storage"
	"github.com/katalvlaran/bitrunner/unlock"
)

func (a *app) unlockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unlock <host|locked>",
		Short: "Gain root access to a host, or to every saved locked host",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := a.world()
			if err != nil {
				return err
			}
			owned, err := unlock.Owned(ctx, w)
			if err != nil {
				return err
			}

			st, err := a.store()
			if err != nil {
				return err
			}

			if args[0] == "locked" {
				hosts, err := st.LockedServers()
				if err != nil {
					return err
				}
				unlocked, locked, err := unlock.All(ctx, w, hosts)
				if err != nil {
					return err
				}
				if err := a.saveAccess(w, st, unlocked, locked); err != nil {
					return err
				}
				a.out.Lines(
					unlock.Checklist(len(owned)),
					fmt.Sprintf("Unlocked: %d", len(unlocked)),
					fmt.Sprintf("Locked:   %d", len(locked)))
				return nil
			}

			target := args[0]
			if !w.Exists(target) {
				return a.fail("Target doesn't exist.")
			}
			ok, err := unlock.Unlock(ctx, w, target)
			if err != nil {
				a.logger.Warn(err.Error())
			}
			status := "Failed to gain access"
			if ok {
				status = "Successfully unlocked."
				locked, err := st.LockedServers()
				if err != nil {
					return err
				}
				err = a.saveAccess(w, st, []string{target}, netmap.Without(locked, target))
			} else {
				// opened ports persist even when nuking failed
				err = a.saveWorld(w)
			}
			if err != nil {
				return err
			}
			a.out.Lines(unlock.Checklist(len(owned)), "Target: ["+target+"]", status)
			return nil
		},
	}
}

// saveAccess persists newly unlocked hosts. The world goes first: a running
// miner reacts to the unlocked list and reads root state from the world file.
func (a *app) saveAccess(w *host.World, st *storage.Store, unlocked, locked []string) error {
	if err := a.saveWorld(w); err != nil {
		return err
	}
	prev, err := st.UnlockedServers()
	if err != nil {
		return err
	}
	if added := storage.Added(prev, unlocked); len(added) > 0 {
		if err := st.SaveUnlockedServers(append(prev, added...)); err != nil {
			return err
		}
	}
	return st.SaveLockedServers(locked)
}
