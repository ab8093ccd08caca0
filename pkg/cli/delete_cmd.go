package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yeisme/csvault/pkg/client"
)

// newDeleteCmd 删除数据集，id 不存在时以非零退出码失败.
func newDeleteCmd(c *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deleted, err := c.DeleteDataset(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if isQuiet(cmd) {
				fmt.Fprintln(out, deleted.ID)

				return nil
			}

			if getOutputFormat(cmd) == outputJSON {
				return printJSON(out, deleted)
			}

			fmt.Fprintln(out, "Dataset deleted successfully.")

			return nil
		},
	}
}
