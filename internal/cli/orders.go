package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newOrdersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List and manage orders",
	}
	cmd.AddCommand(
		newOrdersListCommand(),
		newOrdersBuyCommand(),
		newOrdersCancelCommand(),
	)
	return cmd
}

func newOrdersListCommand() *cobra.Command {
	var symbol string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			orders, err := client.Orders(symbol)
			if err != nil {
				return err
			}
			return printJSON(cmd, orders)
		},
	}
	cmd.Flags().StringVar(&symbol, "symbol", "", "only show orders for this security symbol")

	return cmd
}

func newOrdersBuyCommand() *cobra.Command {
	var (
		accountID string
		amount    string
	)

	cmd := &cobra.Command{
		Use:   "buy <security-id>",
		Short: "Place a fractional share buy order",
		Long: `Buy fractional shares of a security for a fixed dollar amount in
the account's local currency. Fractional orders are only available for
select securities.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("parsing --amount %q: %w", amount, err)
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			receipt, err := client.PlaceFractionalOrder(args[0], accountID, value)
			if err != nil {
				return err
			}
			return printJSON(cmd, receipt)
		},
	}
	cmd.Flags().StringVar(&accountID, "account", "", "account id to buy with")
	cmd.Flags().StringVar(&amount, "amount", "", "dollar amount to spend")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newOrdersCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <order-id>",
		Short: "Cancel a pending order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			resp, err := client.CancelOrder(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, resp)
		},
	}
}
