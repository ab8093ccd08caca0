package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yeisme/csvault/pkg/client"
)

// newListCmd 列出服务端的全部数据集.
func newListCmd(c *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all datasets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			datasets, err := c.ListDatasets(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if isQuiet(cmd) {
				for _, ds := range datasets {
					fmt.Fprintln(out, ds.ID)
				}

				return nil
			}

			if getOutputFormat(cmd) == outputJSON {
				return printJSON(out, client.ListResponse{Datasets: datasets, Total: len(datasets)})
			}

			if len(datasets) == 0 {
				fmt.Fprintln(out, "No datasets found.")

				return nil
			}

			for _, ds := range datasets {
				fmt.Fprintf(out, "%s: %s (%d bytes)\n", ds.ID, ds.Filename, ds.FileSize)
			}

			return nil
		},
	}
}
