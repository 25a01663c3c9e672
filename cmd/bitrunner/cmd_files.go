package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bitrunner/netmap"
)

func (a *app) filesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "files <substring> [server]",
		Short: "Find files by name across the network",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := a.world()
			if err != nil {
				return err
			}
			substr, only := args[0], ""
			if len(args) == 2 {
				only = args[1]
				if !w.Exists(only) {
					return a.fail("Provided server doesn't exist.")
				}
			}

			hosts := []string{only}
			if only == "" {
				if hosts, err = netmap.FindAll(ctx, w, a.cfg.RootHost); err != nil {
					return err
				}
			}
			lines := []string{}
			for _, h := range hosts {
				files, err := w.ListFiles(ctx, h, substr)
				if err != nil {
					return err
				}
				for _, f := range files {
					lines = append(lines, fmt.Sprintf("[%s] : %s", h, f))
				}
			}
			count := len(lines)
			if count == 0 {
				lines = append(lines, "No files found.")
			}
			summary := fmt.Sprintf("Found %d files.", count)
			if only != "" {
				summary = fmt.Sprintf("Found %d files on [%s].", count, only)
			}
			a.out.Framed(0, append(lines, "", summary)...)
			return nil
		},
	}
}
