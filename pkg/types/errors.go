// Package types 定义 go-transit 的基础类型
//
// 本文件定义所有公共错误类型。
package types

import "errors"

// ============================================================================
//                              提示校验错误
// ============================================================================

var (
	// ErrEmptyHostname 主机名为空
	ErrEmptyHostname = errors.New("empty hostname")

	// ErrInvalidPort 端口无效
	ErrInvalidPort = errors.New("invalid port")

	// ErrInvalidPriority 优先级不是有限实数
	ErrInvalidPriority = errors.New("invalid priority: must be finite")
)
