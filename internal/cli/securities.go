package cli

import (
	"github.com/spf13/cobra"
)

func newSecuritiesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "securities",
		Short: "Look up tradeable securities",
	}
	cmd.AddCommand(newSecuritiesGetCommand(), newSecuritiesSearchCommand())
	return cmd
}

func newSecuritiesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <security-id>",
		Short: "Show details for a security",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			security, err := client.Security(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, security)
		},
	}
}

func newSecuritiesSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <symbol>",
		Short: "Search securities by ticker symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			securities, err := client.SecuritiesByTicker(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, securities)
		},
	}
}
