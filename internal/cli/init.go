package cli

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/phanxgames/dock/config"
	"github.com/spf13/cobra"
)

func newInitCmd(g *globals) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [PATH]",
		Short: "Write the starter configuration",
		Long:  "init writes the commented starter configuration to PATH, or to --config, or to config.toml in the working directory. A .yaml or .yml path gets YAML.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.FileName
			switch {
			case len(args) == 1:
				path = args[0]
			case g.config != "":
				path = g.config
			}
			path, err := homedir.Expand(path)
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s exists (use --force to overwrite)", path)
			}
			if err := config.WriteDefault(path); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("Wrote starter config", "path", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}
