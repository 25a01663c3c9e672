package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bitrunner/netmap"
	"github.com/katalvlaran/bitrunner/target"
	"github.com/katalvlaran/bitrunner/units"
)

func (a *app) targetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "target",
		Short: "Pick the best mining target among unlocked servers and save it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.store()
			if err != nil {
				return err
			}
			hosts, err := st.UnlockedServers()
			if err != nil {
				return err
			}
			w, err := a.world()
			if err != nil {
				return err
			}
			best, err := target.Best(cmd.Context(), w, netmap.Without(hosts, a.cfg.RootHost))
			if errors.Is(err, target.ErrNoCandidate) {
				return a.fail("No mining target found.")
			}
			if err != nil {
				return err
			}

			lines := []string{
				"Best mining target: " + best.Host,
				"Max money: " + a.out.Money(units.FormatMoney(best.MaxMoney)),
			}
			saved, err := st.MiningTarget()
			if err != nil {
				return err
			}
			if saved != best.Host {
				if err := st.SaveMiningTarget(best.Host); err != nil {
					return err
				}
				lines = append(lines, "New target saved.")
			}
			a.out.Lines(lines...)
			return nil
		},
	}
}
