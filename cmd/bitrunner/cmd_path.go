package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bitrunner/netmap"
)

func (a *app) pathCmd() *cobra.Command {
	var trace bool
	cmd := &cobra.Command{
		Use:   "path <host>",
		Short: "Print the route from the root host and the connect command for it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := a.world()
			if err != nil {
				return err
			}
			dest, root := args[0], a.cfg.RootHost
			if !w.Exists(dest) {
				return a.fail("[%s] does not exist.", dest)
			}

			var path []string
			if trace {
				back, err := netmap.TraceBack(cmd.Context(), w, dest, root)
				if err != nil {
					return err
				}
				path = netmap.Reverse(back)
			} else if path, err = netmap.PathTo(cmd.Context(), w, root, dest); err != nil {
				return err
			}

			a.out.Framed(0,
				"Path: "+netmap.FormatPath(path),
				"",
				netmap.ConnectCommand(path, root))
			return nil
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "walk depth-first from the host back to the root instead of the shortest route")
	return cmd
}
