// Package types 定义 go-transit 的公共数据结构
//
// 这是整个系统的最底层包，不依赖任何其他内部包。
// 所有类型都是不可变的纯值类型。
//
// # 文件组织
//
//   - hint.go      - Hint 封闭和类型：DirectTCPV1Hint, TorTCPV1Hint, RelayV1Hint
//   - hint_set.go  - HintSet 按结构去重的有序集合
//   - errors.go    - 公共错误定义
//
// # 提示字典
//
// 信令通道中的提示以字典形式传输，本包的提示对象是其内存表示：
//
//	{"type": "direct-tcp-v1", "hostname": str, "port": int, "priority": float}
//	{"type": "tor-tcp-v1", "hostname": str, "port": int, "priority": float}
//	{"type": "relay-v1", "hints": [<direct-tcp-v1 或 tor-tcp-v1>, ...]}
//
// 字典的编解码由信令层负责。
//
// # 相等与去重
//
// TCP 提示是可比较的结构体，可以直接用 == 比较或作为 map 键。
// RelayV1Hint 内含序列，使用 Key/Equal 做结构比较；HintSet 统一按 Key 去重。
package types
