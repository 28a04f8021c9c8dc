package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/phanxgames/dock"
	"github.com/phanxgames/dock/config"
	"github.com/spf13/cobra"
)

// edit loads the configuration, applies fn to its items and settings and
// saves the result.
func edit(cmd *cobra.Command, g *globals, what string, fn func(items []dock.Item, s dock.Settings) ([]dock.Item, dock.Settings, error)) error {
	logger := loggerFromContext(cmd.Context())
	p := newProgress(logger)
	path, err := config.Locate(g.config)
	if err != nil {
		return err
	}
	f, err := config.Load(path)
	if err != nil {
		return err
	}
	s, items := f.Resolve()
	items, s, err = fn(items, s)
	if err != nil {
		return err
	}
	f.Update(items, s)
	if err := f.Save(path); err != nil {
		return err
	}
	p.done(fmt.Sprintf("%s, saved %s", what, path))
	return nil
}

// applyAction runs a on items and s and fails when it changes nothing.
func applyAction(items []dock.Item, s dock.Settings, a dock.Action) ([]dock.Item, dock.Settings, error) {
	items, s, changed := dock.ApplyAction(items, s, a)
	if !changed {
		return nil, s, fmt.Errorf("%s: nothing changed", a.Kind)
	}
	return items, s, nil
}

func parseIndex(arg string, n int) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q", arg)
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("index %d out of range [0, %d)", i, n)
	}
	return i, nil
}

func newItemsCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "List and edit the dock items",
	}
	cmd.AddCommand(newItemsListCmd(g))
	cmd.AddCommand(newItemsAddCmd(g))
	cmd.AddCommand(newItemsRemoveCmd(g))
	cmd.AddCommand(newItemsMoveCmd(g))
	cmd.AddCommand(newItemsSeparatorCmd(g))
	return cmd
}

func newItemsListCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the configured items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Locate(g.config)
			if err != nil {
				return err
			}
			f, err := config.Load(path)
			if err != nil {
				return err
			}
			_, items := f.Resolve()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "#\tNAME\tTARGET")
			for i, it := range items {
				fmt.Fprintf(w, "%d\t%s\t%s\n", i, displayName(it), target(it))
			}
			return w.Flush()
		},
	}
}

func displayName(it dock.Item) string {
	if it.IsSeparator() {
		return "---"
	}
	return it.Name
}

func target(it dock.Item) string {
	switch {
	case it.IsSeparator():
		return ""
	case it.IsSpecial():
		return "special:" + it.Special
	case len(it.Args) > 0:
		return it.Path + " " + strings.Join(it.Args, " ")
	}
	return it.Path
}

func newItemsAddCmd(g *globals) *cobra.Command {
	var (
		icon    string
		special string
		itemArg []string
	)
	cmd := &cobra.Command{
		Use:   "add NAME [PATH]",
		Short: "Append an item",
		Long:  "add appends an application, file or folder item. With --special the item triggers a system action instead and PATH is not needed.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			it := dock.Item{Name: args[0], Icon: icon, Args: itemArg}
			a := dock.Action{Kind: dock.ActionAddItem}
			switch {
			case special != "":
				a = dock.Action{Kind: dock.ActionAddSpecial, Special: strings.ToLower(special), Item: it}
			case len(args) < 2:
				return fmt.Errorf("add %q: PATH is required without --special", args[0])
			default:
				it.Path = args[1]
				a.Item = it
			}
			return edit(cmd, g, "Added "+args[0], func(items []dock.Item, s dock.Settings) ([]dock.Item, dock.Settings, error) {
				return applyAction(items, s, a)
			})
		},
	}
	tags := make([]string, len(dock.SpecialItems))
	for i, sp := range dock.SpecialItems {
		tags[i] = sp.Tag
	}
	cmd.Flags().StringVar(&icon, "icon", "", "icon file (.ico, .png, .icns, ...)")
	cmd.Flags().StringVar(&special, "special", "", "special item: "+strings.Join(tags, ", "))
	cmd.Flags().StringArrayVar(&itemArg, "arg", nil, "launch argument (repeatable)")
	return cmd
}

func newItemsRemoveCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "remove INDEX",
		Short: "Remove the item at INDEX",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return edit(cmd, g, "Removed item "+args[0], func(items []dock.Item, s dock.Settings) ([]dock.Item, dock.Settings, error) {
				i, err := parseIndex(args[0], len(items))
				if err != nil {
					return nil, s, err
				}
				return applyAction(items, s, dock.Action{Kind: dock.ActionRemoveItem, Index: i})
			})
		},
	}
}

func newItemsMoveCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "move FROM TO",
		Short: "Move the item at FROM so it ends up at index TO",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return edit(cmd, g, "Moved item "+args[0], func(items []dock.Item, s dock.Settings) ([]dock.Item, dock.Settings, error) {
				from, err := parseIndex(args[0], len(items))
				if err != nil {
					return nil, s, err
				}
				to, err := parseIndex(args[1], len(items))
				if err != nil {
					return nil, s, err
				}
				// Reorder takes the drop index counted before removal.
				drop := to
				if to > from {
					drop = to + 1
				}
				moved, ok := dock.Reorder(items, from, drop)
				if !ok {
					return nil, s, fmt.Errorf("item %d is already at index %d", from, to)
				}
				return moved, s, nil
			})
		},
	}
}

func newItemsSeparatorCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "separator",
		Short: "Append a separator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return edit(cmd, g, "Added separator", func(items []dock.Item, s dock.Settings) ([]dock.Item, dock.Settings, error) {
				return applyAction(items, s, dock.Action{Kind: dock.ActionAddSeparator})
			})
		},
	}
}
