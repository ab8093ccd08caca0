package tabular

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"
)

const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 4 * vg.Inch
)

// RenderPlots 将每个数值列渲染为一页折线图，合成单个 PDF 文档写入 w.
// 没有数值列时输出一页占位说明，导出始终产生合法的 PDF.
func RenderPlots(f *Frame, title string, w io.Writer) error {
	canvas := vgpdf.New(plotWidth, plotHeight)

	numeric := f.NumericColumns()
	if len(numeric) == 0 {
		p := plot.New()
		p.Title.Text = fmt.Sprintf("%s: no numeric columns to plot", title)
		p.HideAxes()
		p.Draw(draw.New(canvas))
	} else {
		for i, col := range numeric {
			if i > 0 {
				canvas.NextPage()
			}

			p, err := columnPlot(f, col, title)
			if err != nil {
				return err
			}

			p.Draw(draw.New(canvas))
		}
	}

	if _, err := canvas.WriteTo(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}

	return nil
}

// columnPlot 为单个数值列构建折线图，横轴为行号.
func columnPlot(f *Frame, col int, title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s: %s", title, f.Header[col])
	p.X.Label.Text = "row"
	p.Y.Label.Text = f.Header[col]

	pts := make(plotter.XYs, 0, len(f.Records))

	for row, record := range f.Records {
		v, err := strconv.ParseFloat(record[col], 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			// 数值列中的空值与 NaN 跳过，不绘制该点
			continue
		}

		pts = append(pts, plotter.XY{X: float64(row), Y: v})
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("line for column %s: %w", f.Header[col], err)
	}

	line.Color = plotutil.Color(col)

	p.Add(line)

	return p, nil
}
