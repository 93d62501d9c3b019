package cli

import (
	"github.com/spf13/cobra"
)

func newUUIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uuid <username>",
		Short: "Resolve a username to its player identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := client.UUID(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newPlayerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "player <username>",
		Short: "Show a player's Skyblock profiles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := client.Player(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newNamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "names <id>...",
		Short: "Resolve player identifiers to usernames",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := client.Names(cmd.Context(), args)
			if err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}
