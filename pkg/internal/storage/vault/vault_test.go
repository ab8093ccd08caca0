package vault_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yeisme/csvault/pkg/configs"
	"github.com/yeisme/csvault/pkg/internal/model"
	"github.com/yeisme/csvault/pkg/internal/storage/vault"
)

var sampleContent = []byte("a,b\n1,x\n2,y\n")

func testConfig(root string) *configs.VaultConfig {
	return &configs.VaultConfig{
		Root:         root,
		MaxUploadMB:  4,
		AllowedExts:  []string{".csv"},
		SweepOrphans: true,
	}
}

func newTestStore(t *testing.T) *vault.Store {
	t.Helper()

	s, err := vault.Open(context.Background(), testConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("open vault: %v", err)
	}

	return s
}

func sampleMeta(filename string) model.Dataset {
	return model.Dataset{
		Filename:    filename,
		FileSize:    int64(len(sampleContent)),
		RowCount:    2,
		ColumnNames: []string{"a", "b"},
		ColumnTypes: []string{"int", "string"},
	}
}

// TestCreateAndGet 测试创建数据集后能通过 Get 读回一致的元数据
func TestCreateAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.Create(ctx, sampleMeta("trades.csv"), sampleContent)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if created.ID == "" {
		t.Fatal("expected store to assign an id")
	}

	if created.StoragePath != vault.StoragePath(created.ID) {
		t.Errorf("unexpected storage path %q", created.StoragePath)
	}

	if created.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}

	onDisk, err := os.ReadFile(filepath.Join(s.Root(), filepath.FromSlash(created.StoragePath)))
	if err != nil {
		t.Fatalf("read content file: %v", err)
	}

	if !bytes.Equal(onDisk, sampleContent) {
		t.Error("content file does not match uploaded bytes")
	}

	got, err := s.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if got.Filename != "trades.csv" || got.RowCount != 2 {
		t.Errorf("unexpected metadata: %+v", got)
	}

	if len(got.ColumnNames) != 2 || got.ColumnNames[0] != "a" {
		t.Errorf("unexpected column names: %v", got.ColumnNames)
	}
}

// TestSidecarPlainJSON 测试 sidecar 记录不依赖服务即可被标准 JSON 解码器读取
func TestSidecarPlainJSON(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.Create(ctx, sampleMeta("plain.csv"), sampleContent)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(s.Root(), "meta", created.ID+".json"))
	if err != nil {
		t.Fatalf("read sidecar: %v", err)
	}

	var record map[string]any
	if err := json.Unmarshal(raw, &record); err != nil {
		t.Fatalf("decode sidecar with encoding/json: %v", err)
	}

	for _, key := range []string{"id", "filename", "storage_path", "file_size", "row_count", "column_names", "column_types", "created_at"} {
		if _, ok := record[key]; !ok {
			t.Errorf("sidecar missing field %q", key)
		}
	}

	if record["id"] != created.ID {
		t.Errorf("sidecar id %v does not match %s", record["id"], created.ID)
	}
}

// TestGetMissing 测试不存在与非法的 id 均返回 ErrNotExist
func TestGetMissing(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Get(ctx, "11111111-2222-4333-8444-555555555555"); !errors.Is(err, vault.ErrNotExist) {
		t.Errorf("expected ErrNotExist for unknown id, got %v", err)
	}

	if _, err := s.Get(ctx, "../../etc/passwd"); !errors.Is(err, vault.ErrNotExist) {
		t.Errorf("expected ErrNotExist for malformed id, got %v", err)
	}
}

// TestContent 测试读取数据集内容与元数据
func TestContent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.Create(ctx, sampleMeta("trades.csv"), sampleContent)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	meta, content, err := s.Content(ctx, created.ID)
	if err != nil {
		t.Fatalf("content: %v", err)
	}

	if meta.ID != created.ID {
		t.Errorf("expected metadata for %s, got %s", created.ID, meta.ID)
	}

	if !bytes.Equal(content, sampleContent) {
		t.Error("content does not match uploaded bytes")
	}
}

// TestListOrder 测试列表按创建顺序返回全部数据集
func TestListOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	var ids []string

	for _, name := range []string{"one.csv", "two.csv", "three.csv"} {
		created, err := s.Create(ctx, sampleMeta(name), sampleContent)
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}

		ids = append(ids, created.ID)
	}

	datasets, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(datasets) != 3 {
		t.Fatalf("expected 3 datasets, got %d", len(datasets))
	}

	for i := 1; i < len(datasets); i++ {
		if datasets[i].CreatedAt.Before(datasets[i-1].CreatedAt) {
			t.Error("expected list sorted by creation time")
		}
	}

	seen := make(map[string]bool)
	for _, d := range datasets {
		seen[d.ID] = true
	}

	for _, id := range ids {
		if !seen[id] {
			t.Errorf("dataset %s missing from list", id)
		}
	}
}

// TestListSkipsCorruptSidecar 测试损坏的 sidecar 不影响其余数据集的列表
func TestListSkipsCorruptSidecar(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.Create(ctx, sampleMeta("good.csv"), sampleContent)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	bad := filepath.Join(s.Root(), "meta", vault.NewID()+".json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt sidecar: %v", err)
	}

	datasets, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(datasets) != 1 || datasets[0].ID != created.ID {
		t.Errorf("expected only the intact dataset, got %+v", datasets)
	}
}

// TestDelete 测试删除后数据集不可见且内容文件被移除
func TestDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.Create(ctx, sampleMeta("gone.csv"), sampleContent)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := s.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := s.Get(ctx, created.ID); !errors.Is(err, vault.ErrNotExist) {
		t.Errorf("expected ErrNotExist after delete, got %v", err)
	}

	if _, err := os.Stat(filepath.Join(s.Root(), filepath.FromSlash(created.StoragePath))); !os.IsNotExist(err) {
		t.Error("expected content file to be removed")
	}

	if err := s.Delete(ctx, created.ID); !errors.Is(err, vault.ErrNotExist) {
		t.Errorf("expected ErrNotExist on second delete, got %v", err)
	}
}

// TestCreateRollback 测试 sidecar 提交失败时回滚内容文件
func TestCreateRollback(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// 将 meta 目录替换为普通文件，迫使 sidecar 写入失败
	metaDir := filepath.Join(s.Root(), "meta")
	if err := os.RemoveAll(metaDir); err != nil {
		t.Fatalf("remove meta dir: %v", err)
	}

	if err := os.WriteFile(metaDir, []byte("x"), 0o644); err != nil {
		t.Fatalf("block meta dir: %v", err)
	}

	if _, err := s.Create(ctx, sampleMeta("doomed.csv"), sampleContent); err == nil {
		t.Fatal("expected create to fail")
	}

	entries, err := os.ReadDir(filepath.Join(s.Root(), "data"))
	if err != nil {
		t.Fatalf("read data dir: %v", err)
	}

	if len(entries) != 0 {
		t.Errorf("expected content rollback, found %d files", len(entries))
	}
}

// TestOrphanSweep 测试 Open 清理无 sidecar 的内容文件与遗留临时文件
func TestOrphanSweep(t *testing.T) {
	root := t.TempDir()
	ctx := context.Background()

	s, err := vault.Open(ctx, testConfig(root))
	if err != nil {
		t.Fatalf("open vault: %v", err)
	}

	created, err := s.Create(ctx, sampleMeta("keep.csv"), sampleContent)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	orphan := filepath.Join(root, "data", vault.NewID()+".csv")
	if err := os.WriteFile(orphan, []byte("x,y\n"), 0o644); err != nil {
		t.Fatalf("write orphan: %v", err)
	}

	stale := filepath.Join(root, "meta", ".tmp-stale")
	if err := os.WriteFile(stale, []byte("partial"), 0o644); err != nil {
		t.Fatalf("write stale temp: %v", err)
	}

	if _, err := vault.Open(ctx, testConfig(root)); err != nil {
		t.Fatalf("reopen vault: %v", err)
	}

	if _, err := os.Stat(orphan); !os.IsNotExist(err) {
		t.Error("expected orphan content file to be swept")
	}

	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("expected stale temp file to be swept")
	}

	if _, err := s.Get(ctx, created.ID); err != nil {
		t.Errorf("expected surviving dataset to remain readable: %v", err)
	}
}
