package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game state commands",
	}

	cmd.AddCommand(newGameWinnerCmd())
	cmd.AddCommand(newGameCrownCmd())
	cmd.AddCommand(newGameLastAwardCmd())

	return cmd
}

func newGameWinnerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "winner <account-id>",
		Short: "Show the account's winner status and crowning asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Winner

			if err := client.Get("/api/v1/accounts/"+args[0]+"/winner", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameCrownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "crown <account-id>",
		Short: "Mark the account as a winner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Put("/api/v1/accounts/"+args[0]+"/winner", nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Account marked as winner")
			return nil
		},
	}
}

func newGameLastAwardCmd() *cobra.Command {
	var set string

	cmd := &cobra.Command{
		Use:   "last-award <account-id>",
		Short: "Show or set the account's last award time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			if set != "" {
				t, err := time.Parse(time.RFC3339, set)
				if err != nil {
					return fmt.Errorf("--set must be an RFC3339 timestamp: %w", err)
				}

				req := map[string]string{"last_award": t.Format(time.RFC3339)}
				if err := client.Put("/api/v1/accounts/"+args[0]+"/last-award", req); err != nil {
					return err
				}

				out.PrintMessage("Last award time updated")
				return nil
			}

			var result LastAward
			if err := client.Get("/api/v1/accounts/"+args[0]+"/last-award", &result); err != nil {
				return err
			}

			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&set, "set", "", "Set the last award time (RFC3339)")

	return cmd
}
