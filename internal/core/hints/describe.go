package hints

import (
	"fmt"

	"github.com/dep2p/go-transit/pkg/types"
)

// Describe 返回提示的可读描述，仅用于日志和界面
//
// 前缀为 "tor->"（viaTor）或 "->"，viaRelay 时追加 "relay:"。
// TCP 提示渲染为 "tcp:<host>:<port>" / "tor:<host>:<port>"，
// 其他任何类型（包括 RelayV1Hint 和未来的新类型）回退为前缀加 fmt.Sprint(hint)。
//
//	Describe(types.NewDirectTCPV1Hint("h", 80, 0), false, false) // "->tcp:h:80"
//	Describe(types.NewDirectTCPV1Hint("h", 80, 0), true, true)   // "tor->relay:tcp:h:80"
func Describe(hint types.Hint, viaRelay, viaTor bool) string {
	prefix := "->"
	if viaTor {
		prefix = "tor->"
	}
	if viaRelay {
		prefix += "relay:"
	}

	// 这里刻意使用带 default 的类型分支：描述必须对任何类型都成功
	switch h := hint.(type) {
	case types.DirectTCPV1Hint:
		return fmt.Sprintf("%stcp:%s:%d", prefix, h.Hostname, h.Port)
	case types.TorTCPV1Hint:
		return fmt.Sprintf("%stor:%s:%d", prefix, h.Hostname, h.Port)
	default:
		return prefix + fmt.Sprint(hint)
	}
}
