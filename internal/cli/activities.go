package cli

import (
	"github.com/spf13/cobra"

	"github.com/noahwoodin/wealthsimple-trade-go/wealthsimple"
)

func newActivitiesCommand() *cobra.Command {
	var opts wealthsimple.ActivitiesOptions

	cmd := &cobra.Command{
		Use:   "activities",
		Short: "Show recent account activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			activities, err := client.Activities(opts)
			if err != nil {
				return err
			}
			return printJSON(cmd, activities)
		},
	}
	cmd.Flags().StringVar(&opts.Type, "type", "", "filter by activity type (dividend, buy, sell, ...)")
	cmd.Flags().IntVar(&opts.Limit, "limit", wealthsimple.DefaultActivityLimit, "number of activities to return")
	cmd.Flags().StringSliceVar(&opts.AccountIDs, "account", nil, "restrict to the given account ids")

	return cmd
}
