package cmd

import (
	"fmt"
	"os"
	"strings"

	"arche-openrefine/core/protocol"
	"arche-openrefine/core/reconcile"
	"arche-openrefine/feature/reconciliation"

	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	queryTypes []string
	queryLimit int
	queryJSON  bool
)

// queryCmd runs a single reconciliation query from the command line.
var queryCmd = &cobra.Command{
	Use:   "query <text>",
	Short: "Run a reconciliation query against the datastore",
	Long: `Runs one reconciliation query the way OpenRefine would and prints the
ranked candidates.

Examples:
  # Match against every type of the profile
  query "Wolfgang Amadeus Mozart"

  # Restrict to a type and print the raw response
  query Mozart --type https://vocabs.acdh.oeaw.ac.at/schema#Person --limit 3 --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context(), true)
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		payload := map[string]any{"query": args[0]}
		if len(queryTypes) > 0 {
			types := make([]any, len(queryTypes))
			for i, t := range queryTypes {
				types[i] = t
			}
			payload["type"] = types
		}
		if queryLimit > 0 {
			payload["limit"] = queryLimit
		}

		svc := reconciliation.NewService(rt.db, rt.profile, rt.cfg.Server, rt.logger)
		results, err := svc.Reconcile(cmd.Context(), protocol.BatchRequest{
			Queries: map[string]reconcile.Query{"q0": reconcile.NewQuery(payload, rt.profile)},
		})
		if err != nil {
			return fmt.Errorf("query failed: %w", err)
		}

		if queryJSON {
			out, err := json.MarshalIndent(results, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}
		return printCandidates(results["q0"].Result)
	},
}

func printCandidates(candidates []reconcile.Candidate) error {
	table := tablewriter.NewTable(os.Stdout)
	table.Header("ID", "Name", "Type", "Score", "Features")

	for _, c := range candidates {
		types := make([]string, len(c.Type))
		for i, t := range c.Type {
			types[i] = t.Name
		}
		features := make([]string, len(c.Features))
		for i, f := range c.Features {
			features[i] = fmt.Sprintf("%s=%.2f", f.ID, f.Value)
		}
		if err := table.Append(c.ID, c.Name, strings.Join(types, ", "),
			fmt.Sprintf("%.2f", c.Score), strings.Join(features, " ")); err != nil {
			return err
		}
	}
	return table.Render()
}

func init() {
	queryCmd.Flags().StringSliceVar(&queryTypes, "type", nil, "Restrict candidates to these type ids (defaults to every profile type)")
	queryCmd.Flags().IntVar(&queryLimit, "limit", 0, "Maximum number of candidates")
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "Print the JSON response instead of a table")

	RootCmd.AddCommand(queryCmd)
}
