package metrics

import "github.com/dep2p/go-transit/pkg/types"

// Reporter 提供记录和检索解析指标的方法
type Reporter interface {
	// LogParse 记录一次命令行提示解析
	LogParse(ok bool)

	// LogResolve 记录一次端点解析
	LogResolve(kind types.HintType, ok bool)

	// Snapshot 返回当前计数快照
	Snapshot() Snapshot

	// Reset 重置所有计数
	Reset()
}

// 确保 ResolutionCounter 实现 Reporter 接口
var _ Reporter = (*ResolutionCounter)(nil)
