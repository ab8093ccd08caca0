package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yeisme/csvault/pkg/client"
)

// newExcelCmd 下载数据集的 Excel 导出并写入本地文件.
func newExcelCmd(c *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "excel <id> <out>",
		Short: "Export a dataset to an Excel file",
		Example: `  csvaultctl excel 2f9c0b1e-8a17-4af0-9f3c-2f6f6f8b1a2d report.xlsx
  csvaultctl excel 2f9c0b1e-8a17-4af0-9f3c-2f6f6f8b1a2d report.xlsx --output json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := saveArtifact(args[1], func(w io.Writer) (int64, error) {
				return c.ExportExcel(cmd.Context(), args[0], w)
			})
			if err != nil {
				return err
			}

			return reportArtifact(cmd, args[0], args[1], n, "Excel file saved to %s\n")
		},
	}
}

// newPlotCmd 下载数据集数值列的 PDF 图表并写入本地文件.
func newPlotCmd(c *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "plot <id> <out>",
		Short: "Generate PDF plots for a dataset",
		Example: `  csvaultctl plot 2f9c0b1e-8a17-4af0-9f3c-2f6f6f8b1a2d plots.pdf
  csvaultctl plot 2f9c0b1e-8a17-4af0-9f3c-2f6f6f8b1a2d plots.pdf --quiet`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := saveArtifact(args[1], func(w io.Writer) (int64, error) {
				return c.ExportPlot(cmd.Context(), args[0], w)
			})
			if err != nil {
				return err
			}

			return reportArtifact(cmd, args[0], args[1], n, "Plot PDF saved to %s\n")
		},
	}
}

// saveArtifact 将导出产物流式写入 path，失败时移除半成品文件.
func saveArtifact(path string, download func(io.Writer) (int64, error)) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}

	n, err := download(f)
	if err != nil {
		f.Close()
		_ = os.Remove(path)

		return 0, err
	}

	if err := f.Close(); err != nil {
		return n, fmt.Errorf("write %s: %w", path, err)
	}

	return n, nil
}

func reportArtifact(cmd *cobra.Command, id, path string, size int64, format string) error {
	if isQuiet(cmd) {
		return nil
	}

	if getOutputFormat(cmd) == outputJSON {
		return printJSON(cmd.OutOrStdout(), map[string]any{
			"id":     id,
			"output": path,
			"bytes":  size,
		})
	}

	fmt.Fprintf(cmd.OutOrStdout(), format, path)

	return nil
}
