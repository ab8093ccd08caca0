// Package service 实现数据集的业务逻辑：摄取、查询、删除与派生导出.
// 服务对象从请求上下文取出存储资源，按请求构造，无自身状态.
package service

import (
	"context"

	ctxPkg "github.com/yeisme/csvault/pkg/context"
	"github.com/yeisme/csvault/pkg/internal/storage/vault"
)

type DatasetService struct {
	store *vault.Store
}

func NewDatasetService(c context.Context) *DatasetService {
	return &DatasetService{
		store: ctxPkg.GetVaultStore(c),
	}
}
