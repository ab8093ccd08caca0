// csvaultctl 是 csvault 数据集服务的命令行客户端入口.
package main

import (
	"os"

	"github.com/yeisme/csvault/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
