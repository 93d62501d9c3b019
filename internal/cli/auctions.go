package cli

import (
	"github.com/spf13/cobra"
)

func newAuctionsCmd() *cobra.Command {
	var q AuctionQuery

	cmd := &cobra.Command{
		Use:   "auctions",
		Short: "Browse the auction house",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := client.Auctions(cmd.Context(), q)
			if err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&q.Search, "search", "s", "", "Filter by item name")
	cmd.Flags().IntVarP(&q.Page, "page", "p", 1, "Page number")
	cmd.Flags().IntVar(&q.PageSize, "page-size", 0, "Listings per page (server default when 0)")

	return cmd
}
