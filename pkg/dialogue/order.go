package dialogue

import (
	"fmt"
	"strings"

	"github.com/decker502/vnovel/pkg/script"
)

// SceneOrder 固定的场景顺序表
// Scene1 → Scene2 → ... → SceneN → (结束)
//
// 顺序表是外部配置数据（data/story.yaml），不从剧本内容推导。
// 不在顺序表中的场景没有后继，播放完毕即结束。
type SceneOrder struct {
	ids  []string
	next map[string]string
}

// NewSceneOrder 根据有序场景ID列表创建顺序表
// 场景ID不能为空，也不能重复
func NewSceneOrder(ids ...string) (*SceneOrder, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("scene order must contain at least one scene")
	}

	order := &SceneOrder{
		ids:  make([]string, 0, len(ids)),
		next: make(map[string]string, len(ids)),
	}

	seen := make(map[string]bool, len(ids))
	for i, id := range ids {
		if strings.TrimSpace(id) == "" {
			return nil, fmt.Errorf("scene order[%d]: scene id is empty", i)
		}
		if seen[id] {
			return nil, fmt.Errorf("scene order[%d]: duplicate scene id %q", i, id)
		}
		seen[id] = true
		order.ids = append(order.ids, id)
	}

	for i := 0; i < len(order.ids)-1; i++ {
		order.next[order.ids[i]] = order.ids[i+1]
	}

	return order, nil
}

// Successor 返回指定场景的后继场景
// 最后一个场景以及不在顺序表中的场景返回 false
func (o *SceneOrder) Successor(id string) (string, bool) {
	next, ok := o.next[id]
	return next, ok
}

// First 返回第一个场景
func (o *SceneOrder) First() string {
	return o.ids[0]
}

// IDs 返回顺序表中的全部场景ID
func (o *SceneOrder) IDs() []string {
	ids := make([]string, len(o.ids))
	copy(ids, o.ids)
	return ids
}

// Contains 检查场景是否在顺序表中
func (o *SceneOrder) Contains(id string) bool {
	for _, v := range o.ids {
		if v == id {
			return true
		}
	}
	return false
}

// Missing 返回顺序表中存在、但对话表中缺失的场景
// 启动时用于提前发现配置与剧本不一致
func (o *SceneOrder) Missing(table *script.Table) []string {
	var missing []string
	for _, id := range o.ids {
		if table == nil || !table.Has(id) {
			missing = append(missing, id)
		}
	}
	return missing
}
