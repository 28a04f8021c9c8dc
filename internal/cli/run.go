package cli

import (
	"fmt"
	"os"

	"github.com/phanxgames/dock"
	"github.com/phanxgames/dock/ebitenhost"
	"github.com/spf13/cobra"
)

func newRunCmd(g *globals) *cobra.Command {
	var (
		debug   bool
		showFPS bool
		script  string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the dock window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := ebitenhost.Options{ConfigPath: g.config, Debug: debug, ShowFPS: showFPS}
			if script != "" {
				runner, err := loadScript(script)
				if err != nil {
					return err
				}
				opts.Script = runner
			}
			return ebitenhost.Run(cmd.Context(), opts)
		},
	}
	cmd.Flags().BoolVar(&debug, "debug", false, "log per-frame timings (needs --verbose)")
	cmd.Flags().BoolVar(&showFPS, "fps", false, "show the FPS overlay")
	cmd.Flags().StringVar(&script, "script", "", "drive the dock with a JSON test script and quit when it ends")
	return cmd
}

func loadScript(path string) (*dock.TestRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read test script: %w", err)
	}
	return dock.LoadTestScript(data)
}
