package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"arche-openrefine/feature/integrity"
	"arche-openrefine/feature/integrity/checks"

	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var integrityJSON bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the datastore against the service's expectations",
	Long:  `Checks that the datastore tables have the expected columns and that every profile type and extend property has data.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, true)
	},
}

// datastoreCmd represents the integrity datastore command
var datastoreCmd = &cobra.Command{
	Use:   "datastore",
	Short: "Check the datastore tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false)
	},
}

// profileCheckCmd represents the integrity profile command
var profileCheckCmd = &cobra.Command{
	Use:   "profile",
	Short: "Check profile types and properties for data",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true)
	},
}

func init() {
	integrityCmd.PersistentFlags().BoolVar(&integrityJSON, "json", false, "Print the JSON report")
	integrityCmd.AddCommand(datastoreCmd)
	integrityCmd.AddCommand(profileCheckCmd)
	RootCmd.AddCommand(integrityCmd)
}

func runIntegrityChecks(ctx context.Context, datastore, profile bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	rt, err := bootstrap(ctx, true)
	if err != nil {
		return err
	}
	logg := rt.logger
	defer logg.Sync()

	svc := integrity.NewService(rt.db, rt.profile, logg)
	report := make(map[string]any)
	failed := false

	if datastore {
		logg.Info("Checking datastore tables...")
		ds, err := svc.CheckDatastore(ctx)
		if err != nil {
			return fmt.Errorf("datastore check failed: %w", err)
		}
		report["datastore"] = ds
		if ds.Matched {
			logg.Info("Datastore is intact.")
		} else {
			failed = true
			logg.Warn("Datastore does not match", zap.Strings("errors", ds.Errors))
		}
	}

	if profile {
		logg.Info("Checking profile against datastore...")
		pr, err := svc.CheckProfile(ctx)
		if err != nil {
			return fmt.Errorf("profile check failed: %w", err)
		}
		report["profile"] = pr
		if pr.Matched {
			logg.Info("Every profile type and property has data.")
		} else {
			failed = true
			logg.Warn("Profile entries without data",
				zap.Strings("types", pr.EmptyTypes),
				zap.Strings("properties", pr.EmptyProperties))
		}
	}

	if integrityJSON {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	} else if ds, ok := report["datastore"].(*checks.DatastoreReport); ok {
		if err := printDatastoreReport(ds); err != nil {
			return err
		}
	}

	if failed {
		return fmt.Errorf("integrity checks reported problems")
	}
	return nil
}

func printDatastoreReport(report *checks.DatastoreReport) error {
	table := tablewriter.NewTable(os.Stdout)
	table.Header("Table", "Status", "Missing Columns", "Type Mismatches")
	for _, name := range []string{"metadata", "identifiers", "full_text_search"} {
		tbl, ok := report.Tables[name]
		if !ok {
			if err := table.Append(name, "unchecked", "", ""); err != nil {
				return err
			}
			continue
		}
		if err := table.Append(name, tbl.Status,
			strings.Join(tbl.MissingColumns, ", "),
			strings.Join(tbl.TypeMismatches, "; ")); err != nil {
			return err
		}
	}
	return table.Render()
}
