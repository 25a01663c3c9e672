package main

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bitrunner/host"
	"github.com/katalvlaran/bitrunner/netmap"
	"github.com/katalvlaran/bitrunner/storage"
	"github.com/katalvlaran/bitrunner/units"
)

var serverCommands = []string{"all", "purchased", "unlocked", "locked", "refresh"}

func (a *app) serversCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "servers [" + strings.Join(serverCommands, "|") + "]",
		Short:     "Find servers and save the lists; no argument prints saved counts",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: serverCommands,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.store()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return a.serverCounts(st)
			}
			command := args[0]
			if !slices.Contains(serverCommands, command) {
				return a.fail("Command is not supported. Commands: %s", strings.Join(serverCommands, ","))
			}
			w, err := a.world()
			if err != nil {
				return err
			}
			lines, err := a.refreshServers(cmd.Context(), w, st, command)
			if err != nil {
				return err
			}
			a.out.Lines(lines...)
			return nil
		},
	}
}

func (a *app) serverCounts(st *storage.Store) error {
	lines := []string{}
	for _, row := range []struct {
		label string
		load  func() ([]string, error)
	}{
		{"Available: ", st.AvailableServers},
		{"Purchased: ", st.PurchasedServers},
		{"Unlocked:  ", st.UnlockedServers},
		{"Locked:    ", st.LockedServers},
	} {
		hosts, err := row.load()
		if err != nil {
			return err
		}
		lines = append(lines, fmt.Sprintf("%s%d", row.label, len(hosts)))
	}
	a.out.Lines(lines...)
	return nil
}

// refreshServers rediscovers the lists selected by command, saves them and
// returns one status line per list with the change since the last save.
func (a *app) refreshServers(ctx context.Context, w *host.World, st *storage.Store, command string) ([]string, error) {
	want := func(c string) bool { return command == c || command == "refresh" }
	root := a.cfg.RootHost
	lines := []string{}

	save := func(label, file string, hosts []string) error {
		prev, err := st.List(file)
		if err != nil {
			return err
		}
		if err := st.SaveList(file, hosts); err != nil {
			return err
		}
		lines = append(lines, strings.TrimRight(fmt.Sprintf("%s%d %s", label, len(hosts), units.FormatChange(len(hosts)-len(prev))), " "))
		return nil
	}

	var all []string
	if want("all") || want("unlocked") || want("locked") {
		var err error
		if all, err = netmap.FindAll(ctx, w, root); err != nil {
			return nil, err
		}
	}
	if want("all") {
		if err := save("Available: ", storage.AvailableServersFile, all); err != nil {
			return nil, err
		}
	}
	if want("purchased") {
		purchased, err := w.PurchasedServers(ctx)
		if err != nil {
			return nil, err
		}
		if err := save("Purchased: ", storage.PurchasedServersFile, purchased); err != nil {
			return nil, err
		}
	}
	if want("unlocked") || want("locked") {
		unlocked, locked, err := netmap.Partition(ctx, w, all)
		if err != nil {
			return nil, err
		}
		if want("unlocked") {
			if err := save("Unlocked:  ", storage.UnlockedServersFile, unlocked); err != nil {
				return nil, err
			}
		}
		if want("locked") {
			if err := save("Locked:    ", storage.LockedServersFile, locked); err != nil {
				return nil, err
			}
		}
	}
	if command == "refresh" {
		lines = append(lines, "", "Refreshed and saved.")
	}
	return lines, nil
}
