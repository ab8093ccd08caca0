package service_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/yeisme/csvault/pkg/configs"
	ctxPkg "github.com/yeisme/csvault/pkg/context"
	"github.com/yeisme/csvault/pkg/internal/service"
	"github.com/yeisme/csvault/pkg/internal/storage"
	"github.com/yeisme/csvault/pkg/internal/storage/vault"
)

func TestMain(m *testing.M) {
	_ = configs.InitConfig("")

	os.Exit(m.Run())
}

func newTestService(t *testing.T) (*service.DatasetService, context.Context) {
	t.Helper()

	store, err := vault.Open(context.Background(), &configs.VaultConfig{
		Root:         t.TempDir(),
		MaxUploadMB:  4,
		AllowedExts:  []string{".csv"},
		SweepOrphans: true,
	})
	if err != nil {
		t.Fatalf("open vault: %v", err)
	}

	ctx := ctxPkg.WithStorageManager(context.Background(), &storage.Manager{Vault: store})

	return service.NewDatasetService(ctx), ctx
}

// TestCreateDataset 测试上传合法 CSV 后的元数据
func TestCreateDataset(t *testing.T) {
	ds, ctx := newTestService(t)

	content := []byte("a,b\n1,x\n2,y\n")

	created, err := ds.CreateDataset(ctx, "trades.csv", content)
	if err != nil {
		t.Fatalf("create dataset: %v", err)
	}

	if created.ID == "" {
		t.Error("expected dataset id to be assigned")
	}

	if created.RowCount != 2 {
		t.Errorf("expected row_count 2, got %d", created.RowCount)
	}

	if created.FileSize != int64(len(content)) {
		t.Errorf("expected file_size %d, got %d", len(content), created.FileSize)
	}

	if len(created.ColumnNames) != 2 || created.ColumnNames[0] != "a" {
		t.Errorf("unexpected column names: %v", created.ColumnNames)
	}

	if created.ColumnTypes[0] != "int" || created.ColumnTypes[1] != "string" {
		t.Errorf("unexpected column types: %v", created.ColumnTypes)
	}

	got, err := ds.GetDataset(ctx, created.ID)
	if err != nil {
		t.Fatalf("get dataset: %v", err)
	}

	if got.Filename != "trades.csv" {
		t.Errorf("unexpected filename %q", got.Filename)
	}
}

// TestCreateDatasetRejectsExtension 测试非 CSV 扩展名被拒绝
func TestCreateDatasetRejectsExtension(t *testing.T) {
	ds, ctx := newTestService(t)

	var invalid *service.InvalidFormatError

	if _, err := ds.CreateDataset(ctx, "data.txt", []byte("a,b\n1,2\n")); !errors.As(err, &invalid) {
		t.Errorf("expected InvalidFormatError for .txt, got %v", err)
	}

	if _, err := ds.CreateDataset(ctx, "", []byte("a,b\n1,2\n")); !errors.As(err, &invalid) {
		t.Errorf("expected InvalidFormatError for missing filename, got %v", err)
	}

	if _, err := ds.CreateDataset(ctx, "DATA.CSV", []byte("a,b\n1,2\n")); err != nil {
		t.Errorf("expected uppercase extension accepted, got %v", err)
	}
}

// TestCreateDatasetRejectsCorrupt 测试坏内容归类为解析错误且不留下数据集
func TestCreateDatasetRejectsCorrupt(t *testing.T) {
	ds, ctx := newTestService(t)

	var parseErr *service.ParseError

	if _, err := ds.CreateDataset(ctx, "ragged.csv", []byte("a,b\n1\n")); !errors.As(err, &parseErr) {
		t.Errorf("expected ParseError for ragged row, got %v", err)
	}

	if _, err := ds.CreateDataset(ctx, "empty.csv", nil); !errors.As(err, &parseErr) {
		t.Errorf("expected ParseError for empty content, got %v", err)
	}

	datasets, err := ds.ListDatasets(ctx)
	if err != nil {
		t.Fatalf("list datasets: %v", err)
	}

	if len(datasets) != 0 {
		t.Errorf("expected no datasets after failed uploads, got %d", len(datasets))
	}
}

// TestCreateDatasetHeaderOnly 测试仅有表头的文件创建空数据集
func TestCreateDatasetHeaderOnly(t *testing.T) {
	ds, ctx := newTestService(t)

	created, err := ds.CreateDataset(ctx, "empty.csv", []byte("a,b\n"))
	if err != nil {
		t.Fatalf("create dataset: %v", err)
	}

	if created.RowCount != 0 {
		t.Errorf("expected row_count 0, got %d", created.RowCount)
	}

	if created.ColumnTypes[0] != "string" || created.ColumnTypes[1] != "string" {
		t.Errorf("unexpected column types: %v", created.ColumnTypes)
	}
}

// TestGetDatasetNotFound 测试未知 id 返回 NotFoundError
func TestGetDatasetNotFound(t *testing.T) {
	ds, ctx := newTestService(t)

	var notFound *service.NotFoundError

	if _, err := ds.GetDataset(ctx, "11111111-2222-4333-8444-555555555555"); !errors.As(err, &notFound) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

// TestDeleteDataset 测试删除后数据集不可见且重复删除报错
func TestDeleteDataset(t *testing.T) {
	ds, ctx := newTestService(t)

	created, err := ds.CreateDataset(ctx, "gone.csv", []byte("a\n1\n"))
	if err != nil {
		t.Fatalf("create dataset: %v", err)
	}

	if err := ds.DeleteDataset(ctx, created.ID); err != nil {
		t.Fatalf("delete dataset: %v", err)
	}

	var notFound *service.NotFoundError

	if _, err := ds.GetDataset(ctx, created.ID); !errors.As(err, &notFound) {
		t.Errorf("expected NotFoundError after delete, got %v", err)
	}

	if err := ds.DeleteDataset(ctx, created.ID); !errors.As(err, &notFound) {
		t.Errorf("expected NotFoundError on second delete, got %v", err)
	}
}

// TestListDatasets 测试列表返回全部数据集
func TestListDatasets(t *testing.T) {
	ds, ctx := newTestService(t)

	for _, name := range []string{"one.csv", "two.csv"} {
		if _, err := ds.CreateDataset(ctx, name, []byte("a\n1\n")); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	datasets, err := ds.ListDatasets(ctx)
	if err != nil {
		t.Fatalf("list datasets: %v", err)
	}

	if len(datasets) != 2 {
		t.Errorf("expected 2 datasets, got %d", len(datasets))
	}
}
