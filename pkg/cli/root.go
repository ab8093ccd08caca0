// Package cli 实现 csvaultctl 命令行客户端，将子命令映射为对数据集服务的
// 单次同步请求.参数校验在发起请求之前完成，校验失败不联系服务端.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/yeisme/csvault/pkg/client"
)

var version = "dev"

// Execute 运行 CLI 并返回进程退出码，0 表示成功.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		output, _ := rootCmd.PersistentFlags().GetString("output")
		if output == outputJSON {
			errObj := map[string]any{
				"error": err.Error(),
			}

			var apiErr *client.APIError
			if errors.As(err, &apiErr) {
				errObj["http_status"] = apiErr.StatusCode
			}
			_ = printJSON(os.Stdout, errObj)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		return 1
	}

	return 0
}

func newRootCmd() *cobra.Command {
	var (
		host    string
		timeout time.Duration
		output  string
		quiet   bool
	)

	rootCmd := &cobra.Command{
		Use:           "csvaultctl",
		Short:         "CSV dataset service CLI",
		Long:          "Command-line client for the csvault dataset service.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:8080", "dataset service URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "request timeout")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", outputTable, "output format (table, json)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only output resource identifiers")

	c := client.NewClient(host, timeout)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		// 取值优先级：flag > 环境变量 > 默认值
		if !cmd.Flags().Changed("host") {
			if v := os.Getenv("CSVAULT_HOST"); v != "" {
				host = v
			}
		}
		if !cmd.Flags().Changed("output") {
			if v := os.Getenv("CSVAULT_OUTPUT"); v != "" {
				output = v
				// getOutputFormat 读取的是 flag 值，覆盖需写回 flag
				if err := cmd.Root().PersistentFlags().Set("output", v); err != nil {
					return err
				}
			}
		}

		if err := validateOutputFormat(output); err != nil {
			return err
		}

		c.BaseURL = strings.TrimRight(host, "/")
		c.HTTPClient.Timeout = timeout

		return nil
	}

	rootCmd.AddCommand(newListCmd(c))
	rootCmd.AddCommand(newUploadCmd(c))
	rootCmd.AddCommand(newGetCmd(c))
	rootCmd.AddCommand(newDeleteCmd(c))
	rootCmd.AddCommand(newExcelCmd(c))
	rootCmd.AddCommand(newPlotCmd(c))
	rootCmd.AddCommand(newStatsCmd(c))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if getOutputFormat(cmd) == outputJSON {
				return printJSON(cmd.OutOrStdout(), map[string]string{"version": version})
			}

			fmt.Fprintf(cmd.OutOrStdout(), "csvaultctl %s\n", version)

			return nil
		},
	}
}
