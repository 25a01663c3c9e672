package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bitrunner/contracts"
	"github.com/katalvlaran/bitrunner/ledger"
)

func (a *app) contractsCmd() *cobra.Command {
	var (
		list, history bool
		last          int
	)
	cmd := &cobra.Command{
		Use:   "contracts",
		Short: "Solve every contract on the network once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := contracts.NewCatalog()
			if err != nil {
				return err
			}
			if list {
				a.out.Framed(0, cat.Types()...)
				return nil
			}

			l, err := ledger.Open(a.cfg.LedgerPath)
			if err != nil {
				return err
			}
			defer l.Close()

			if history {
				sum, err := l.Summary(cmd.Context())
				if err != nil {
					return err
				}
				if len(sum) == 0 {
					a.out.Lines("No attempts recorded.")
					return nil
				}
				lines := []string{}
				for _, s := range sum {
					line := fmt.Sprintf("%s: %d/%d solved", s.Type, s.Solved, s.Attempts)
					if s.Skipped > 0 {
						line += fmt.Sprintf(", %d skipped", s.Skipped)
					}
					lines = append(lines, line)
				}
				recent, err := l.Recent(cmd.Context(), last)
				if err != nil {
					return err
				}
				lines = append(lines, "", fmt.Sprintf("Last %d:", len(recent)))
				for _, e := range recent {
					line := fmt.Sprintf("%s [%s] '%s' %s", e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Host, e.File, e.Status)
					if e.Answer != "" {
						line += " " + e.Answer
					}
					lines = append(lines, line)
				}
				a.out.Framed(0, lines...)
				return nil
			}

			w, err := a.world()
			if err != nil {
				return err
			}
			runner := contracts.NewRunner(cat, w,
				contracts.WithLogger(a.logger),
				contracts.WithRecorder(l))
			outcomes, err := runner.Run(cmd.Context())
			if err != nil {
				return err
			}
			lines := make([]string, 0, len(outcomes)+1)
			for _, o := range outcomes {
				line := o.String()
				if o.Status == contracts.StatusSolved {
					line = a.out.Money(line)
				} else if o.Status != contracts.StatusNoSolver {
					line = a.out.Warning(line)
				}
				lines = append(lines, line)
			}
			if len(lines) == 0 {
				lines = append(lines, "No contracts found.")
			}
			a.out.Lines(lines...)
			return a.saveWorld(w)
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "list supported contract types")
	cmd.Flags().BoolVar(&history, "history", false, "summarize recorded attempts per type")
	cmd.Flags().IntVar(&last, "last", 10, "with --history, how many recent attempts to list")
	return cmd
}
