// Package cli implements the dock command-line interface.
//
// # Commands
//
//   - run: open the dock window
//   - render: draw the dock headlessly to a PNG, optionally driven by a
//     scripted test run
//   - items: list and edit the configured items
//   - lock: lock or unlock the item list
//   - init: write the starter configuration
//
// All commands accept --config to pick the configuration file and
// --verbose (-v) for debug logging.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/phanxgames/dock"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version, usually
// injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// globals are the root command's persistent flags.
type globals struct {
	config  string
	verbose bool
}

// NewRootCmd builds the command tree. Log output goes to logOut.
func NewRootCmd(logOut io.Writer) *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:          "dock",
		Short:        "A magnifying application dock",
		Long:         `dock shows a row of application icons along the bottom of the screen that magnify under the pointer, launch on click and reorder by dragging.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if g.verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(logOut, level)
			dock.SetLogger(logger)
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("dock %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().StringVarP(&g.config, "config", "c", "", "configuration file (default: config.toml next to the executable)")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRunCmd(g))
	root.AddCommand(newRenderCmd(g))
	root.AddCommand(newItemsCmd(g))
	root.AddCommand(newLockCmd(g))
	root.AddCommand(newInitCmd(g))
	return root
}

// Execute runs the CLI with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCmd(os.Stderr).ExecuteContext(ctx)
}
