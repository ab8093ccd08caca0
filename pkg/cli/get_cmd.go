package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/yeisme/csvault/pkg/client"
)

// newGetCmd 获取单个数据集的元数据.
func newGetCmd(c *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Retrieve dataset metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := c.GetDataset(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if isQuiet(cmd) {
				fmt.Fprintln(out, ds.ID)

				return nil
			}

			if getOutputFormat(cmd) == outputJSON {
				return printJSON(out, ds)
			}

			printDataset(out, ds)

			return nil
		},
	}
}

// printDataset 按 field: value 行打印数据集元数据.
func printDataset(w io.Writer, ds *client.Dataset) {
	columns := make([]string, len(ds.ColumnNames))
	for i, name := range ds.ColumnNames {
		columns[i] = fmt.Sprintf("%s (%s)", name, ds.ColumnTypes[i])
	}

	fmt.Fprintf(w, "id:           %s\n", ds.ID)
	fmt.Fprintf(w, "filename:     %s\n", ds.Filename)
	fmt.Fprintf(w, "storage_path: %s\n", ds.StoragePath)
	fmt.Fprintf(w, "file_size:    %d\n", ds.FileSize)
	fmt.Fprintf(w, "row_count:    %d\n", ds.RowCount)
	fmt.Fprintf(w, "columns:      %s\n", strings.Join(columns, ", "))
	fmt.Fprintf(w, "created_at:   %s\n", ds.CreatedAt.Format(time.RFC3339))
}
