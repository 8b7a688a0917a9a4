package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noahwoodin/wealthsimple-trade-go/wealthsimple"
)

func newBankAccountsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bank-accounts",
		Short: "List linked bank accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			banks, err := client.BankAccounts()
			if err != nil {
				return err
			}
			return printJSON(cmd, banks)
		},
	}
}

func newDepositsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "deposits",
		Short: "List deposits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			deposits, err := client.Deposits()
			if err != nil {
				return err
			}
			return printJSON(cmd, deposits)
		},
	}
}

func newForexCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "forex",
		Short: "Show currency exchange rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			rates, err := client.Forex()
			if err != nil {
				return err
			}
			return printJSON(cmd, rates)
		},
	}
}

func newMeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the authenticated user object",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			me, err := client.Me()
			if err != nil {
				return err
			}
			return printJSON(cmd, me)
		},
	}
}

func newPersonCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "person",
		Short: "Show the person object",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			person, err := client.Person()
			if err != nil {
				return err
			}
			return printJSON(cmd, person)
		},
	}
}

func newOTPCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "otp",
		Short: "Print the current one-time password",
		Long: `Print the 6-digit one-time password generated from the configured
authenticator secret. Useful for checking that the secret matches the
one enrolled with the brokerage.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.OTPSecret == "" {
				return fmt.Errorf("no authenticator secret configured")
			}

			code, err := wealthsimple.OTPCode(cfg.OTPSecret)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), code)
			return nil
		},
	}
}
