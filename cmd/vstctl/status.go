package main

import (
	"municipal_backoffice/internal/adapter/http/dto/response"
	"municipal_backoffice/internal/adapter/persistence/repository"
	"municipal_backoffice/internal/usecase"

	"github.com/spf13/cobra"
)

var (
	statusPaymentID     string
	statusTransactionID string
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the newest VST transaction for a payment or transaction id",
	Long: `Prints the most recent vst.transactions row, whatever its status.
--transaction-id wins when both identifiers are given.

Examples:
  vstctl status --payment-id 123456781
  vstctl status --transaction-id 98765`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().StringVar(&statusPaymentID, "payment-id", "", "payment identifier (account number)")
	statusCmd.Flags().StringVar(&statusTransactionID, "transaction-id", "", "VST transaction id")
}

func runStatus(cmd *cobra.Command, args []string) error {
	if statusPaymentID == "" && statusTransactionID == "" {
		return usecase.ErrMissingIdentifier
	}

	e, err := openEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.Close()

	uc := usecase.NewVSTTransactionUseCase(repository.NewVSTTransactionPgRepository(e.pool), nil, e.logger)
	t, err := uc.GetStatus(cmd.Context(), statusPaymentID, statusTransactionID)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), response.NewVSTStatusResponse(t))
}
