package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yeisme/csvault/pkg/configs"
	"github.com/yeisme/csvault/pkg/internal/storage/vault"
)

var (
	vaultCmd = &cobra.Command{
		Use:   "vault",
		Short: "Vault storage related commands",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configs.InitConfig(configPath)
		},
	}

	vaultInfoCmd = &cobra.Command{
		Use:   "info",
		Short: "show vault root and dataset totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			cfg := configs.GetConfig()

			store, err := vault.Open(ctx, &cfg.Vault)
			if err != nil {
				return err
			}

			datasets, err := store.List(ctx)
			if err != nil {
				return err
			}

			var (
				totalBytes int64
				totalRows  int
			)

			for _, d := range datasets {
				totalBytes += d.FileSize
				totalRows += d.RowCount
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Vault root: "+store.Root())
			fmt.Fprintf(cmd.OutOrStdout(), "Datasets: %d\n", len(datasets))
			fmt.Fprintf(cmd.OutOrStdout(), "Rows: %d\n", totalRows)
			fmt.Fprintf(cmd.OutOrStdout(), "Bytes: %d\n", totalBytes)

			return nil
		},
	}
)

// registerVaultCommands 注册存储库相关命令.
func registerVaultCommands() {
	rootCmd.AddCommand(vaultCmd)

	vaultCmd.AddCommand(vaultInfoCmd)
}
