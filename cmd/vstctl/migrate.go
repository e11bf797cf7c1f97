package main

import (
	"fmt"

	"municipal_backoffice/migrations"

	"github.com/spf13/cobra"
)

var migrateDryRun bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the vst.transactions table and its indexes",
	Long: `Applies the embedded SQL migrations not yet recorded in vst.schema_migrations.
Only the vst schema is touched.

Examples:
  vstctl migrate
  vstctl migrate --dry-run`,
	Args: cobra.NoArgs,
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "list embedded migrations without applying them")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	if migrateDryRun {
		names, err := migrations.Names()
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Fprintln(cmd.OutOrStdout(), n)
		}
		return nil
	}

	e, err := openEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.Close()

	applied, err := migrations.Apply(cmd.Context(), e.pool)
	if err != nil {
		return err
	}
	if len(applied) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "database is up to date")
		return nil
	}
	for _, n := range applied {
		fmt.Fprintf(cmd.OutOrStdout(), "applied %s\n", n)
	}
	return nil
}
