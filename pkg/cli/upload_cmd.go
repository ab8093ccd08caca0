package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yeisme/csvault/pkg/client"
)

// newUploadCmd 上传本地 CSV 文件，本地文件不存在时直接失败，不联系服务端.
func newUploadCmd(c *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <path>",
		Short: "Upload a CSV dataset",
		Example: `  csvaultctl upload ./measurements.csv
  csvaultctl upload /data/sales.csv --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			f, err := os.Open(path)
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("file %s does not exist", path)
				}

				return fmt.Errorf("open %s: %w", path, err)
			}
			defer f.Close()

			created, err := c.UploadDataset(cmd.Context(), filepath.Base(path), f)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if isQuiet(cmd) {
				fmt.Fprintln(out, created.ID)

				return nil
			}

			if getOutputFormat(cmd) == outputJSON {
				return printJSON(out, created)
			}

			fmt.Fprintf(out, "Dataset created: %s (id: %s)\n", created.Dataset.Filename, created.ID)

			return nil
		},
	}
}
