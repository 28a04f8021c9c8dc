package cli

import (
	"github.com/phanxgames/dock"
	"github.com/spf13/cobra"
)

func newLockCmd(g *globals) *cobra.Command {
	var unlock bool
	cmd := &cobra.Command{
		Use:   "lock",
		Short: "Lock the item list against edits and reordering",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			want := !unlock
			what := "Locked icons"
			if unlock {
				what = "Unlocked icons"
			}
			return edit(cmd, g, what, func(items []dock.Item, s dock.Settings) ([]dock.Item, dock.Settings, error) {
				if s.Locked == want {
					return items, s, nil
				}
				return applyAction(items, s, dock.Action{Kind: dock.ActionToggleLock})
			})
		},
	}
	cmd.Flags().BoolVar(&unlock, "unlock", false, "unlock instead")
	return cmd
}
