package cli

import (
	"github.com/spf13/cobra"

	"github.com/noahwoodin/wealthsimple-trade-go/wealthsimple"
)

func newAccountsCommand() *cobra.Command {
	var idsOnly bool

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List brokerage accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			if idsOnly {
				ids, err := client.AccountIDs()
				if err != nil {
					return err
				}
				return printJSON(cmd, ids)
			}

			accounts, err := client.Accounts()
			if err != nil {
				return err
			}
			return printJSON(cmd, accounts)
		},
	}
	cmd.Flags().BoolVar(&idsOnly, "ids", false, "print account ids only")

	return cmd
}

func newHistoryCommand() *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "history <account-id>",
		Short: "Show the value history of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			entries, err := client.AccountHistory(args[0], period)
			if err != nil {
				return err
			}
			return printJSON(cmd, entries)
		},
	}
	cmd.Flags().StringVar(&period, "period", wealthsimple.PeriodAll,
		"history period (1d, 1w, 1m, 3m, 1y, all)")

	return cmd
}

func newPositionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "positions <account-id>",
		Short: "List the positions held in an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			positions, err := client.Positions(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, positions)
		},
	}
}
