package sprites

import (
	"sync"

	"github.com/charmbracelet/log"
)

type noticeKey struct {
	sprite *Sprite
	source string
	msg    string
}

var (
	noticeMu   sync.Mutex
	noticeSeen = make(map[noticeKey]struct{})
)

// Notice 输出一条关于精灵缺少装备等问题的诊断信息
//
// 同一精灵、同一来源、同一消息只输出一次，避免每帧刷屏。
// 返回 true 表示本次实际输出了日志。
func Notice(s *Sprite, source, msg string) bool {
	key := noticeKey{sprite: s, source: source, msg: msg}

	noticeMu.Lock()
	_, seen := noticeSeen[key]
	if !seen {
		noticeSeen[key] = struct{}{}
	}
	noticeMu.Unlock()

	if seen {
		return false
	}

	kind := "nil"
	if s != nil {
		kind = s.Kind.String()
	}
	log.Warn("["+source+"] "+msg, "sprite", kind)
	return true
}

// ResetNotices 清空去重记录
func ResetNotices() {
	noticeMu.Lock()
	noticeSeen = make(map[noticeKey]struct{})
	noticeMu.Unlock()
}
