package configs

import (
	"github.com/spf13/viper"
)

// VaultConfig 数据集存储库配置.
// 数据集内容与元数据 sidecar 均存放在 Root 目录下的本地文件系统中.
type VaultConfig struct {
	Root         string   `mapstructure:"root"           rule:"required"` // 存储库根目录
	MaxUploadMB  int      `mapstructure:"max_upload_mb"  rule:"min=1"`    // 单次上传大小上限（MB）
	AllowedExts  []string `mapstructure:"allowed_exts"`                   // 允许上传的文件扩展名
	SweepOrphans bool     `mapstructure:"sweep_orphans"`                  // 启动时是否清理孤儿内容文件
}

const (
	DefaultVaultRoot         = "storage" // 默认存储库根目录
	DefaultVaultMaxUploadMB  = 64        // 默认上传大小上限（MB）
	DefaultVaultSweepOrphans = true      // 默认启动时清理孤儿文件
)

// GetMaxUploadBytes 返回上传大小上限（字节）.
func (c *VaultConfig) GetMaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// setDefaults 设置存储库配置的默认值.
func (c *VaultConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("vault.root", DefaultVaultRoot)
	v.SetDefault("vault.max_upload_mb", DefaultVaultMaxUploadMB)
	v.SetDefault("vault.allowed_exts", []string{".csv"})
	v.SetDefault("vault.sweep_orphans", DefaultVaultSweepOrphans)
}
