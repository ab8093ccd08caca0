package handle_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/xuri/excelize/v2"
)

// TestExportExcelEndpoint 测试 Excel 导出的响应头与工作簿内容
func TestExportExcelEndpoint(t *testing.T) {
	engine := newTestEngine(t)

	created := createDataset(t, engine, "trades.csv", []byte("a,b\n1,x\n2,y\n"))

	w := doRequest(engine, httptest.NewRequest(http.MethodGet, "/api/v1/datasets/"+created.ID+"/excel", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}

	if ct := w.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("unexpected content type %q", ct)
	}

	if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="trades.xlsx"` {
		t.Errorf("unexpected content disposition %q", cd)
	}

	book, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("open exported workbook: %v", err)
	}
	defer book.Close()

	rows, err := book.GetRows("Sheet1")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}

	want := [][]string{{"a", "b"}, {"1", "x"}, {"2", "y"}}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}

	for i, row := range want {
		for j, cell := range row {
			if rows[i][j] != cell {
				t.Errorf("cell (%d,%d) = %q, want %q", i, j, rows[i][j], cell)
			}
		}
	}
}

// TestExportExcelEndpointNotFound 测试未知 id 的导出返回 404
func TestExportExcelEndpointNotFound(t *testing.T) {
	engine := newTestEngine(t)

	w := doRequest(engine, httptest.NewRequest(http.MethodGet, "/api/v1/datasets/11111111-2222-4333-8444-555555555555/excel", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

// TestExportPlotEndpoint 测试图表导出返回 PDF 附件
func TestExportPlotEndpoint(t *testing.T) {
	engine := newTestEngine(t)

	created := createDataset(t, engine, "series.csv", []byte("v\n1\n2\n3\n"))

	w := doRequest(engine, httptest.NewRequest(http.MethodGet, "/api/v1/datasets/"+created.ID+"/plot", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}

	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("unexpected content type %q", ct)
	}

	if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="series_plots.pdf"` {
		t.Errorf("unexpected content disposition %q", cd)
	}

	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")) {
		t.Errorf("body does not look like a PDF: %q", w.Body.Bytes()[:16])
	}
}

// TestExportPlotEndpointNoNumeric 测试无数值列时仍返回合法 PDF
func TestExportPlotEndpointNoNumeric(t *testing.T) {
	engine := newTestEngine(t)

	created := createDataset(t, engine, "words.csv", []byte("w\nfoo\nbar\n"))

	w := doRequest(engine, httptest.NewRequest(http.MethodGet, "/api/v1/datasets/"+created.ID+"/plot", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}

	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")) {
		t.Errorf("body does not look like a PDF")
	}
}
