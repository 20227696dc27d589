package cmd

import (
	"fmt"

	"arche-openrefine/feature/reconciliation"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

// manifestCmd prints the service manifest without connecting to the database.
var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Print the service manifest",
	Long:  `Loads the configuration and profile and prints the manifest OpenRefine receives.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		out, err := json.MarshalIndent(reconciliation.BuildManifest(rt.profile, rt.cfg.Server), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(manifestCmd)
}
