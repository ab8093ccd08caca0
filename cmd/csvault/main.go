// Package main 启动应用程序
package main

import "github.com/yeisme/csvault/pkg/cmd"

//	@title			CSV Dataset API
//	@version		1.0
//	@description	csvault 是一个 CSV 数据集服务，提供数据集上传、查询、删除以及 Excel 与图表 PDF 导出功能。

//	@license.name	MIT
//	@license.url	https://opensource.org/license/mit/

//	@contact.name	yeisme
//	@contact.email	yefun2004@gmail.com.

func main() {
	if err := cmd.Execute(); err != nil {
		panic(err)
	}
}
