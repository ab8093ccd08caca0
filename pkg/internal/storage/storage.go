// Package storage 管理服务进程内的存储资源，目前只有本地数据集存储库.
//
// Example:
//
// 初始化
//
//	 ctx := context.Background()
//	 mgr, err := storage.Init(ctx)
//
//		if err != nil {
//		    // 处理错误
//		}
//
// 获取存储库
//
//	store := mgr.GetVaultStore()
package storage

import (
	"context"
	"sync"

	"github.com/yeisme/csvault/pkg/configs"
	"github.com/yeisme/csvault/pkg/internal/storage/vault"
	nlog "github.com/yeisme/csvault/pkg/log"
)

// Manager 聚合所有存储资源.
type Manager struct {
	Vault *vault.Store
}

var (
	mgr     *Manager
	mgrOnce sync.Once
)

// Init 初始化默认存储，使用全局配置.重复调用只返回已初始化实例.
func Init(ctx context.Context) (*Manager, error) {
	var err error

	mgrOnce.Do(func() {
		cfg := configs.GetConfig()
		m := &Manager{}

		if store, e := vault.Open(ctx, &cfg.Vault); e != nil {
			err = e

			return
		} else {
			m.Vault = store
		}

		mgr = m

		nlog.Logger().Info().Msg("storage manager initialized")
	})

	return mgr, err
}

// GetVaultStore 获取数据集存储库.
func (m *Manager) GetVaultStore() *vault.Store {
	return m.Vault
}

// Close 释放全部存储资源.
func (m *Manager) Close() error {
	if m.Vault != nil {
		return m.Vault.Close()
	}

	return nil
}
