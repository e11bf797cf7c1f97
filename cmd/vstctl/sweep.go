package main

import (
	"municipal_backoffice/internal/adapter/http/dto/response"
	"municipal_backoffice/internal/adapter/persistence/repository"
	"municipal_backoffice/internal/usecase"

	"github.com/spf13/cobra"
)

var sweepHours int

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Expire initiated VST transactions older than --hours",
	Long: `Moves every initiated transaction older than the threshold to expired.
Expired transactions can still be settled by a late callback.

Safe to run repeatedly and concurrently with callbacks; meant for cron.

Examples:
  vstctl sweep
  vstctl sweep --hours 48`,
	Args: cobra.NoArgs,
	RunE: runSweep,
}

func init() {
	sweepCmd.Flags().IntVar(&sweepHours, "hours", 0, "age threshold in hours (default VST_EXPIRY_HOURS)")
}

func runSweep(cmd *cobra.Command, args []string) error {
	e, err := openEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.Close()

	hours := e.cfg.VSTExpiryHours
	if cmd.Flags().Changed("hours") {
		hours = sweepHours
	}

	uc := usecase.NewVSTTransactionUseCase(repository.NewVSTTransactionPgRepository(e.pool), nil, e.logger)
	report, err := uc.ExpireStale(cmd.Context(), hours)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), response.NewVSTExpiryResponse(report.Hours, report.ExpiredTransactions))
}
