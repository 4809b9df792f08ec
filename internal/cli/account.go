package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account management commands",
	}

	cmd.AddCommand(newAccountCreateCmd())
	cmd.AddCommand(newAccountListCmd())
	cmd.AddCommand(newAccountGetCmd())
	cmd.AddCommand(newAccountAuthCmd())
	cmd.AddCommand(newAccountSessionCmd())

	return cmd
}

func newAccountCreateCmd() *cobra.Command {
	var pass string

	cmd := &cobra.Command{
		Use:   "create <account-id>",
		Short: "Provision a new account with a ledger account behind it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if pass == "" {
				return fmt.Errorf("--pass is required")
			}

			req := map[string]string{
				"account_id": args[0],
				"password":   pass,
			}
			var result Account

			if err := client.Post("/api/v1/accounts", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newAccountListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List account ids",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result AccountList

			if err := client.Get("/api/v1/accounts", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newAccountGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <account-id>",
		Short: "Show account details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Account

			if err := client.Get("/api/v1/accounts/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newAccountAuthCmd() *cobra.Command {
	var pass string

	cmd := &cobra.Command{
		Use:   "auth <account-id>",
		Short: "Check account credentials",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if pass == "" {
				return fmt.Errorf("--pass is required")
			}

			req := map[string]string{"password": pass}
			var result AuthResult

			if err := client.Post("/api/v1/accounts/"+args[0]+"/authenticate", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newAccountSessionCmd() *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "session <account-id>",
		Short: "Show the account's ledger session token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session

			if refresh {
				if err := client.Post("/api/v1/accounts/"+args[0]+"/session/refresh", nil, &result); err != nil {
					return err
				}
			} else {
				if err := client.Get("/api/v1/accounts/"+args[0]+"/session", &result); err != nil {
					return err
				}
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "Issue a fresh session token instead of showing the stored one")

	return cmd
}
