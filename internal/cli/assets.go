package cli

import (
	"github.com/spf13/cobra"
)

func newAssetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assets",
		Short: "Asset management commands",
	}

	cmd.AddCommand(newAssetsListCmd())
	cmd.AddCommand(newAssetsAwardCmd())
	cmd.AddCommand(newAssetsBurnCmd())

	return cmd
}

func newAssetsListCmd() *cobra.Command {
	var fromLedger bool

	cmd := &cobra.Command{
		Use:   "list <account-id>",
		Short: "List an account's assets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/accounts/" + args[0] + "/assets"
			if fromLedger {
				path += "?source=ledger"
			}

			var result []Asset
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromLedger, "from-ledger", false, "Query the ledger directly instead of the local model")

	return cmd
}

func newAssetsAwardCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "award <account-id> <asset-id>",
		Short: "Award an asset to an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"asset_id": args[1],
				"name":     name,
			}
			var result Asset

			if err := client.Post("/api/v1/accounts/"+args[0]+"/assets", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Asset display name")

	return cmd
}

func newAssetsBurnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "burn <account-id>",
		Short: "Burn all of an account's assets, locally and on the ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/accounts/" + args[0] + "/assets"); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("All assets burned")
			return nil
		},
	}
}
