package game

import (
	"log"

	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/vnovel/pkg/utils"
)

// OpenStorage 打开 gdata 跨平台存储
//
// 参数：
//   - appName: 应用名称，决定存储目录（如 ~/.local/share/{appName}）
//
// 返回：
//   - *gdata.Manager: 存储管理器；初始化失败时返回 nil（降级模式，设置只保存在内存中）
func OpenStorage(appName string) *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[Storage] Warning: %v", err)
	}

	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[Storage] Warning: gdata 初始化失败: %v (设置将不会保存)", err)
		return nil
	}

	log.Printf("[Storage] gdata 初始化成功: %s", appName)
	return manager
}
