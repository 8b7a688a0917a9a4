// Package cli implements the wstrade command tree.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/noahwoodin/wealthsimple-trade-go/wealthsimple"
)

var verbose bool

// NewRootCommand builds the wstrade command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "wstrade",
		Short: "Interact with the Wealthsimple Trade API",
		Long: `wstrade is a command line front end for the unofficial Wealthsimple
Trade API. Credentials are read from the WSTRADE_EMAIL,
WSTRADE_PASSWORD and WSTRADE_OTP_SECRET environment variables, or from
~/.wstrade.yaml (keys: email, password, otp_secret).`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newAccountsCommand(),
		newHistoryCommand(),
		newPositionsCommand(),
		newOrdersCommand(),
		newSecuritiesCommand(),
		newActivitiesCommand(),
		newBankAccountsCommand(),
		newDepositsCommand(),
		newForexCommand(),
		newMeCommand(),
		newPersonCommand(),
		newOTPCommand(),
	)

	return root
}

// config holds the resolved login credentials.
type config struct {
	Email     string
	Password  string
	OTPSecret string
}

// loadConfig resolves credentials from environment variables, falling
// back to an optional ~/.wstrade.yaml.
func loadConfig() (*config, error) {
	v := viper.New()
	v.SetEnvPrefix("wstrade")
	v.AutomaticEnv()

	v.SetConfigName(".wstrade")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	return &config{
		Email:     v.GetString("email"),
		Password:  v.GetString("password"),
		OTPSecret: v.GetString("otp_secret"),
	}, nil
}

// newLogger builds the CLI logger. Debug output is only enabled with
// --verbose.
func newLogger() (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}

// newClient resolves credentials and logs in.
func newClient() (*wealthsimple.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := newLogger()
	if err != nil {
		return nil, err
	}

	return wealthsimple.New(cfg.Email, cfg.Password, cfg.OTPSecret,
		wealthsimple.WithLogger(logger))
}

// printJSON writes v to the command's stdout as indented JSON.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
