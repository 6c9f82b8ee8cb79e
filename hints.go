package transit

import (
	"io"

	"github.com/dep2p/go-transit/internal/core/hints"
	"github.com/dep2p/go-transit/internal/core/metrics"
	"github.com/dep2p/go-transit/pkg/interfaces/endpoint"
	"github.com/dep2p/go-transit/pkg/interfaces/reactor"
	"github.com/dep2p/go-transit/pkg/interfaces/tor"
	"github.com/dep2p/go-transit/pkg/types"
)

// ════════════════════════════════════════════════════════════════════════════
//                              类型别名
// ════════════════════════════════════════════════════════════════════════════

type (
	// Hint 连接提示
	Hint = types.Hint

	// TCPHint 可直接发起 TCP 连接的提示
	TCPHint = types.TCPHint

	// DirectTCPV1Hint 直连 TCP 提示
	DirectTCPV1Hint = types.DirectTCPV1Hint

	// TorTCPV1Hint 经 Tor 的 TCP 提示
	TorTCPV1Hint = types.TorTCPV1Hint

	// RelayV1Hint 中继提示
	RelayV1Hint = types.RelayV1Hint

	// HintSet 按结构去重的提示集合
	HintSet = types.HintSet

	// Candidate Plan 得到的候选
	Candidate = hints.Candidate

	// Stats 解析计数快照
	Stats = metrics.Snapshot
)

// ════════════════════════════════════════════════════════════════════════════
//                              无状态函数
// ════════════════════════════════════════════════════════════════════════════

// ParseHintArgv 解析命令行提示 "tcp:<host>:<port>[:priority=<float>]"
//
// 失败时向 stderr 写一行诊断并返回 false；stderr 为 nil 时写入 os.Stderr。
func ParseHintArgv(text string, stderr io.Writer) (DirectTCPV1Hint, bool) {
	return hints.ParseHintArgv(text, stderr)
}

// ParseHints 批量解析命令行提示，跳过无法解析的条目
func ParseHints(texts []string, stderr io.Writer) []DirectTCPV1Hint {
	return hints.ParseHints(texts, stderr)
}

// Describe 返回提示的可读描述
func Describe(h Hint, viaRelay, viaTor bool) string {
	return hints.Describe(h, viaRelay, viaTor)
}

// EndpointFromHint 把提示解析为端点
//
// torCap 非 nil 时所有 TCP 提示经 Tor；否则只有直连提示经 r 得到端点。
func EndpointFromHint(h Hint, torCap tor.Capability, r reactor.Reactor) (endpoint.Endpoint, bool) {
	return hints.EndpointFromHint(h, torCap, r)
}
