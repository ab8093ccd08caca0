package cli

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bytedance/sonic"

	"github.com/yeisme/csvault/pkg/client"
)

// runCLI 以给定参数执行一次根命令，返回合并后的输出与错误.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return buf.String(), err
}

func jsonResponse(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()

	data, err := sonic.Marshal(v)
	if err != nil {
		t.Errorf("marshal response: %v", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// noRequestServer 启动一个不允许收到任何请求的服务端，用于校验先于网络的失败.
func noRequestServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
	}))
	t.Cleanup(srv.Close)

	return srv
}

// TestListCommand 验证 list 的默认行格式输出.
func TestListCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(t, w, http.StatusOK, client.ListResponse{
			Datasets: []client.Dataset{
				{ID: "id-1", Filename: "a.csv", FileSize: 10},
				{ID: "id-2", Filename: "b.csv", FileSize: 20},
			},
			Total: 2,
		})
	}))
	t.Cleanup(srv.Close)

	out, err := runCLI(t, "--host", srv.URL, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "id-1: a.csv (10 bytes)") || !strings.Contains(out, "id-2: b.csv (20 bytes)") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

// TestListCommandEmpty 验证空列表的提示语.
func TestListCommandEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(t, w, http.StatusOK, client.ListResponse{Datasets: []client.Dataset{}})
	}))
	t.Cleanup(srv.Close)

	out, err := runCLI(t, "--host", srv.URL, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "No datasets found.") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

// TestListCommandJSON 验证 --output json 输出可解码.
func TestListCommandJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(t, w, http.StatusOK, client.ListResponse{
			Datasets: []client.Dataset{{ID: "id-1", Filename: "a.csv"}},
			Total:    1,
		})
	}))
	t.Cleanup(srv.Close)

	out, err := runCLI(t, "--host", srv.URL, "--output", "json", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	var parsed client.ListResponse
	if err := sonic.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if parsed.Total != 1 || parsed.Datasets[0].ID != "id-1" {
		t.Fatalf("unexpected parsed output: %+v", parsed)
	}
}

// TestListCommandQuiet 验证 --quiet 仅输出 id.
func TestListCommandQuiet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(t, w, http.StatusOK, client.ListResponse{
			Datasets: []client.Dataset{{ID: "id-1", Filename: "a.csv"}},
			Total:    1,
		})
	}))
	t.Cleanup(srv.Close)

	out, err := runCLI(t, "--host", srv.URL, "--quiet", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if strings.TrimSpace(out) != "id-1" {
		t.Fatalf("quiet output = %q, want bare id", out)
	}
}

// TestUploadCommand 验证上传命令的 multipart 传递与确认输出.
func TestUploadCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("form field file: %v", err)
			jsonResponse(t, w, http.StatusBadRequest, map[string]string{"error": "No file was uploaded"})

			return
		}
		defer file.Close()

		content, _ := io.ReadAll(file)
		if string(content) != "a,b\n1,x\n" {
			t.Errorf("uploaded content = %q", content)
		}

		jsonResponse(t, w, http.StatusOK, client.CreateResponse{
			ID:      "id-1",
			Message: "Dataset create with success",
			Dataset: client.Dataset{ID: "id-1", Filename: header.Filename, RowCount: 1},
		})
	}))
	t.Cleanup(srv.Close)

	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte("a,b\n1,x\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	out, err := runCLI(t, "--host", srv.URL, "upload", path)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if !strings.Contains(out, "Dataset created: data.csv (id: id-1)") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

// TestUploadCommandMissingFile 验证本地文件缺失时不发起请求.
func TestUploadCommandMissingFile(t *testing.T) {
	srv := noRequestServer(t)

	path := filepath.Join(t.TempDir(), "nope.csv")

	_, err := runCLI(t, "--host", srv.URL, "upload", path)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestGetCommand 验证 get 的 field: value 输出.
func TestGetCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/datasets/id-1" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		jsonResponse(t, w, http.StatusOK, client.Dataset{
			ID:          "id-1",
			Filename:    "a.csv",
			StoragePath: "data/id-1.csv",
			FileSize:    10,
			RowCount:    2,
			ColumnNames: []string{"a", "b"},
			ColumnTypes: []string{"int", "string"},
		})
	}))
	t.Cleanup(srv.Close)

	out, err := runCLI(t, "--host", srv.URL, "get", "id-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	for _, want := range []string{"filename:     a.csv", "row_count:    2", "a (int), b (string)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

// TestDeleteCommandNotFound 验证 404 映射为命令错误.
func TestDeleteCommandNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(t, w, http.StatusNotFound, map[string]string{"error": "dataset id-1 not found"})
	}))
	t.Cleanup(srv.Close)

	_, err := runCLI(t, "--host", srv.URL, "delete", "id-1")
	if err == nil {
		t.Fatal("expected error for missing dataset")
	}
	if !strings.Contains(err.Error(), "API error (HTTP 404)") {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestExcelCommand 验证导出产物写入目标文件.
func TestExcelCommand(t *testing.T) {
	payload := []byte("xlsx-bytes")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/datasets/id-1/excel" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write(payload)
	}))
	t.Cleanup(srv.Close)

	outPath := filepath.Join(t.TempDir(), "out.xlsx")

	out, err := runCLI(t, "--host", srv.URL, "excel", "id-1", outPath)
	if err != nil {
		t.Fatalf("excel: %v", err)
	}
	if !strings.Contains(out, "Excel file saved to "+outPath) {
		t.Fatalf("unexpected output:\n%s", out)
	}

	saved, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if !bytes.Equal(saved, payload) {
		t.Fatalf("artifact = %q, want %q", saved, payload)
	}
}

// TestPlotCommandNotFound 验证失败时不留下半成品文件.
func TestPlotCommandNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(t, w, http.StatusNotFound, map[string]string{"error": "dataset id-1 not found"})
	}))
	t.Cleanup(srv.Close)

	outPath := filepath.Join(t.TempDir(), "plots.pdf")

	_, err := runCLI(t, "--host", srv.URL, "plot", "id-1", outPath)
	if err == nil {
		t.Fatal("expected error for missing dataset")
	}

	if _, statErr := os.Stat(outPath); !os.IsNotExist(statErr) {
		t.Fatalf("partial artifact left behind: %v", statErr)
	}
}

// TestStatsCommand 验证统计表格输出.
func TestStatsCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/stats/datasets" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		jsonResponse(t, w, http.StatusOK, client.StatsSummary{TotalDatasets: 3, TotalRows: 42})
	}))
	t.Cleanup(srv.Close)

	out, err := runCLI(t, "--host", srv.URL, "stats")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if !strings.Contains(out, "total_datasets") || !strings.Contains(out, "3") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

// TestVersionCommand 验证版本输出.
func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "csvaultctl") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

// TestArgumentValidation 验证参数不合法时快速失败且不发起请求.
func TestArgumentValidation(t *testing.T) {
	srv := noRequestServer(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "upload no args", args: []string{"upload"}},
		{name: "get no args", args: []string{"get"}},
		{name: "delete no args", args: []string{"delete"}},
		{name: "excel missing out", args: []string{"excel", "id-1"}},
		{name: "plot extra arg", args: []string{"plot", "id-1", "out.pdf", "extra"}},
		{name: "list extra arg", args: []string{"list", "extra"}},
		{name: "stats extra arg", args: []string{"stats", "extra"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			args := append([]string{"--host", srv.URL}, tc.args...)
			if _, err := runCLI(t, args...); err == nil {
				t.Fatal("expected usage error")
			}
		})
	}
}

// TestInvalidOutputFormat 验证输出格式校验.
func TestInvalidOutputFormat(t *testing.T) {
	srv := noRequestServer(t)

	_, err := runCLI(t, "--host", srv.URL, "--output", "yaml", "list")
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), "unsupported output format") {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestHostEnvFallback 验证未指定 --host 时使用 CSVAULT_HOST.
func TestHostEnvFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(t, w, http.StatusOK, client.ListResponse{Datasets: []client.Dataset{}})
	}))
	t.Cleanup(srv.Close)

	t.Setenv("CSVAULT_HOST", srv.URL)

	out, err := runCLI(t, "list")
	if err != nil {
		t.Fatalf("list via env host: %v", err)
	}
	if !strings.Contains(out, "No datasets found.") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

// TestHostFlagOverridesEnv 验证 flag 优先于环境变量.
func TestHostFlagOverridesEnv(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(t, w, http.StatusOK, client.ListResponse{Datasets: []client.Dataset{}})
	}))
	t.Cleanup(srv.Close)

	// 环境变量指向不可达地址，flag 必须胜出
	t.Setenv("CSVAULT_HOST", "http://127.0.0.1:1")

	if _, err := runCLI(t, "--host", srv.URL, "list"); err != nil {
		t.Fatalf("flag should override env: %v", err)
	}
}

// TestOutputEnvFallback 验证未指定 --output 时使用 CSVAULT_OUTPUT.
func TestOutputEnvFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(t, w, http.StatusOK, client.ListResponse{
			Datasets: []client.Dataset{{ID: "id-1", Filename: "a.csv"}},
			Total:    1,
		})
	}))
	t.Cleanup(srv.Close)

	t.Setenv("CSVAULT_OUTPUT", "json")

	out, err := runCLI(t, "--host", srv.URL, "list")
	if err != nil {
		t.Fatalf("list via env output: %v", err)
	}

	var parsed client.ListResponse
	if err := sonic.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("env output format not applied: %v\n%s", err, out)
	}
	if parsed.Total != 1 || parsed.Datasets[0].ID != "id-1" {
		t.Fatalf("unexpected parsed output: %+v", parsed)
	}
}
