// Package vault 实现基于本地文件系统的数据集存储库.
//
// 布局（root 为配置的存储库根目录）：
//
//	<root>/data/<id>.csv   数据集内容，即原始上传字节
//	<root>/meta/<id>.json  元数据 sidecar 记录
//
// 写入协议：内容文件先落盘，sidecar 经临时文件重命名后提交，读取方只
// 通过 sidecar 发现数据集，因此不会观察到半创建状态；删除先移除
// sidecar 再移除内容，崩溃遗留的孤儿内容文件在 Open 时清理.
package vault

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"github.com/yeisme/csvault/pkg/configs"
	"github.com/yeisme/csvault/pkg/internal/model"
	nlog "github.com/yeisme/csvault/pkg/log"
)

const (
	dataDirName = "data"
	metaDirName = "meta"
	contentExt  = ".csv"
	sidecarExt  = ".json"
	tmpPrefix   = ".tmp-"
	dirPerm     = 0o755
	filePerm    = 0o644
)

// ErrNotExist 表示指定 id 的数据集不存在.
var ErrNotExist = errors.New("dataset does not exist")

// Store 本地文件系统存储库.
// 写操作由内部互斥锁序列化；读操作依赖 sidecar 的原子重命名，无需加锁.
type Store struct {
	root string
	mu   sync.Mutex
}

// Open 打开（必要时初始化）存储库目录，并按配置清理孤儿内容文件.
func Open(ctx context.Context, cfg *configs.VaultConfig) (*Store, error) {
	root := cfg.Root
	if root == "" {
		return nil, fmt.Errorf("vault root is required")
	}

	for _, dir := range []string{root, filepath.Join(root, dataDirName), filepath.Join(root, metaDirName)} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return nil, fmt.Errorf("create vault dir %s: %w", dir, err)
		}
	}

	s := &Store{root: root}

	if cfg.SweepOrphans {
		swept, err := s.sweepOrphans()
		if err != nil {
			return nil, fmt.Errorf("sweep orphans: %w", err)
		}

		if swept > 0 {
			nlog.Logger().Warn().Int("count", swept).Msg("removed orphaned vault files")
		}
	}

	nlog.Logger().Info().Str("root", root).Msg("vault opened")

	return s, nil
}

// Root 返回存储库根目录.
func (s *Store) Root() string {
	return s.root
}

// NewID 生成新的数据集标识.
func NewID() string {
	return uuid.NewString()
}

// StoragePath 返回 id 对应内容文件相对存储库根目录的路径.
func StoragePath(id string) string {
	return dataDirName + "/" + id + contentExt
}

// Create 持久化一个新数据集. meta 中的 ID、StoragePath、CreatedAt 由
// Store 填充；其余字段由调用方在解析内容后给出. sidecar 提交失败时回滚
// 已写入的内容文件，创建要么完整可见，要么不留痕迹.
func (s *Store) Create(ctx context.Context, meta model.Dataset, content []byte) (*model.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meta.ID = NewID()
	meta.StoragePath = StoragePath(meta.ID)
	meta.CreatedAt = time.Now().UTC()

	if err := meta.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dataset metadata: %w", err)
	}

	contentPath := s.contentPath(meta.ID)
	if err := writeFileAtomic(contentPath, content); err != nil {
		return nil, fmt.Errorf("write content %s: %w", meta.ID, err)
	}

	if err := s.writeSidecar(&meta); err != nil {
		if rmErr := os.Remove(contentPath); rmErr != nil {
			nlog.Logger().Error().Err(rmErr).Str("id", meta.ID).Msg("rollback of content file failed")
		}

		return nil, fmt.Errorf("write sidecar %s: %w", meta.ID, err)
	}

	return &meta, nil
}

// Get 读取指定 id 的数据集元数据.
func (s *Store) Get(ctx context.Context, id string) (*model.Dataset, error) {
	return s.readSidecar(id)
}

// List 返回全部数据集元数据，按创建时间升序（即创建顺序）.
func (s *Store) List(ctx context.Context) ([]model.Dataset, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, metaDirName))
	if err != nil {
		return nil, fmt.Errorf("read meta dir: %w", err)
	}

	datasets := make([]model.Dataset, 0, len(entries))

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, sidecarExt) {
			continue
		}

		id := strings.TrimSuffix(name, sidecarExt)

		meta, err := s.readSidecar(id)
		if err != nil {
			// 坏记录不应拖垮整个列表，跳过并告警
			nlog.Logger().Warn().Err(err).Str("id", id).Msg("skipping unreadable sidecar")

			continue
		}

		datasets = append(datasets, *meta)
	}

	sort.Slice(datasets, func(i, j int) bool {
		if datasets[i].CreatedAt.Equal(datasets[j].CreatedAt) {
			return datasets[i].ID < datasets[j].ID
		}

		return datasets[i].CreatedAt.Before(datasets[j].CreatedAt)
	})

	return datasets, nil
}

// Content 读取数据集内容及其元数据.
func (s *Store) Content(ctx context.Context, id string) (*model.Dataset, []byte, error) {
	meta, err := s.readSidecar(id)
	if err != nil {
		return nil, nil, err
	}

	b, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(meta.StoragePath)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("content missing for dataset %s: %w", id, err)
		}

		return nil, nil, fmt.Errorf("read content %s: %w", id, err)
	}

	return meta, b, nil
}

// Delete 删除数据集：先移除 sidecar，使删除立即对读取方生效，再移除内容.
// 不存在的 id 返回 ErrNotExist，重复删除不会静默成功.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	meta, err := s.readSidecar(id)
	if err != nil {
		return err
	}

	if err := os.Remove(s.sidecarPath(id)); err != nil {
		if os.IsNotExist(err) {
			return ErrNotExist
		}

		return fmt.Errorf("remove sidecar %s: %w", id, err)
	}

	contentPath := filepath.Join(s.root, filepath.FromSlash(meta.StoragePath))
	if err := os.Remove(contentPath); err != nil && !os.IsNotExist(err) {
		// sidecar 已移除，内容残留交由下次 Open 的清理
		nlog.Logger().Warn().Err(err).Str("id", id).Msg("content removal deferred to orphan sweep")
	}

	return nil
}

// HealthCheck 校验存储库目录可写.
func (s *Store) HealthCheck(ctx context.Context) error {
	f, err := os.CreateTemp(s.root, ".health-*")
	if err != nil {
		return err
	}

	name := f.Name()
	_ = f.Close()

	return os.Remove(name)
}

// Close 关闭存储库（无实际操作，接口兼容）.
func (s *Store) Close() error {
	return nil
}

func (s *Store) contentPath(id string) string {
	return filepath.Join(s.root, dataDirName, id+contentExt)
}

func (s *Store) sidecarPath(id string) string {
	return filepath.Join(s.root, metaDirName, id+sidecarExt)
}

// readSidecar 读取并校验 sidecar 记录. 非法 id 一律视为不存在.
func (s *Store) readSidecar(id string) (*model.Dataset, error) {
	if uuid.Validate(id) != nil {
		return nil, ErrNotExist
	}

	b, err := os.ReadFile(s.sidecarPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotExist
		}

		return nil, fmt.Errorf("read sidecar %s: %w", id, err)
	}

	var meta model.Dataset
	if err := sonic.Unmarshal(b, &meta); err != nil {
		return nil, fmt.Errorf("decode sidecar %s: %w", id, err)
	}

	if err := meta.Validate(); err != nil {
		return nil, fmt.Errorf("corrupt sidecar %s: %w", id, err)
	}

	return &meta, nil
}

// writeSidecar 编码并原子写入 sidecar，重命名即提交点.
func (s *Store) writeSidecar(meta *model.Dataset) error {
	b, err := sonic.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}

	return writeFileAtomic(s.sidecarPath(meta.ID), b)
}

// sweepOrphans 清理两类残留：没有对应 sidecar 的内容文件（创建回滚或
// 删除中断的遗留），以及中断写入留下的临时文件.
func (s *Store) sweepOrphans() (int, error) {
	swept := 0

	// 临时文件
	for _, dir := range []string{dataDirName, metaDirName} {
		entries, err := os.ReadDir(filepath.Join(s.root, dir))
		if err != nil {
			return swept, err
		}

		for _, entry := range entries {
			if strings.HasPrefix(entry.Name(), tmpPrefix) {
				if err := os.Remove(filepath.Join(s.root, dir, entry.Name())); err != nil {
					return swept, err
				}

				swept++
			}
		}
	}

	// 孤儿内容文件
	entries, err := os.ReadDir(filepath.Join(s.root, dataDirName))
	if err != nil {
		return swept, err
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, contentExt) {
			continue
		}

		id := strings.TrimSuffix(name, contentExt)

		if _, err := os.Stat(s.sidecarPath(id)); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return swept, err
		}

		if err := os.Remove(filepath.Join(s.root, dataDirName, name)); err != nil {
			return swept, err
		}

		swept++
	}

	return swept, nil
}

// writeFileAtomic 先写临时文件再重命名到目标路径，重命名即提交点.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, tmpPrefix+"*")
	if err != nil {
		return err
	}

	tmpName := tmp.Name()

	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()

		return err
	}

	if err := tmp.Sync(); err != nil {
		cleanup()

		return err
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)

		return err
	}

	if err := os.Chmod(tmpName, filePerm); err != nil {
		_ = os.Remove(tmpName)

		return err
	}

	return os.Rename(tmpName, path)
}
