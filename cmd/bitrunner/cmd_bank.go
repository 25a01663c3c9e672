package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bitrunner/bank"
	"github.com/katalvlaran/bitrunner/units"
)

var bankCommands = []string{"reserve", "available", "spendable"}

func (a *app) bankCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bank [reserve [amount]|available|spendable]",
		Short: "Report money or manage the reserve; reserve adds, reserve 0 resets",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.store()
			if err != nil {
				return err
			}
			w, err := a.world()
			if err != nil {
				return err
			}
			money := func(v float64) string { return a.out.Money(units.FormatMoney(v)) }

			if len(args) > 0 && !slices.Contains(bankCommands, args[0]) {
				return a.fail("Command is not supported. Commands: %s", strings.Join(bankCommands, ","))
			}
			if len(args) == 2 {
				if args[0] != "reserve" {
					return a.fail("Only reserve takes an amount.")
				}
				amount, err := units.ParseMoney(args[1])
				if err != nil {
					return a.fail("Unable to parse number value. It can be plain number or with symbol e.g. 100, 10K, 5B, etc.")
				}
				total, err := bank.Reserve(st, amount)
				if err != nil {
					return err
				}
				if amount == 0 {
					a.out.Lines("Reserved amount was reset to " + a.out.Money("$0"))
				} else {
					a.out.Lines(fmt.Sprintf("Added to reserve: %s (total: %s)", money(amount), money(total)))
				}
				return nil
			}

			b, err := bank.Check(cmd.Context(), w, st)
			if err != nil {
				return err
			}
			spendable := "Spendable: " + money(b.Spendable())
			available := "Available: " + money(b.Available)
			if len(args) == 0 {
				a.out.Lines(spendable, available, "Reserved:  "+money(b.Reserved))
				return nil
			}
			switch args[0] {
			case "reserve":
				a.out.Lines("Reserved: " + money(b.Reserved))
			case "available":
				a.out.Lines(available)
			default:
				a.out.Lines(spendable)
			}
			return nil
		},
	}
}
