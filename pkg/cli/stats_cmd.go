package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yeisme/csvault/pkg/client"
)

// newStatsCmd 显示数据集总体统计.
func newStatsCmd(c *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show dataset statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := c.Stats(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if getOutputFormat(cmd) == outputJSON {
				return printJSON(out, stats)
			}

			printTable(out, []string{"METRIC", "VALUE"}, [][]string{
				{"total_datasets", strconv.Itoa(stats.TotalDatasets)},
				{"total_rows", strconv.Itoa(stats.TotalRows)},
				{"total_columns", strconv.Itoa(stats.TotalColumns)},
				{"total_size", strconv.FormatInt(stats.TotalSize, 10)},
				{"empty_datasets", strconv.Itoa(stats.EmptyDatasets)},
			})

			return nil
		},
	}
}
