// Package endpoint 定义可连接端点接口
package endpoint

import (
	"context"
	"net"
)

// Endpoint 可连接端点：描述"如何建立连接"，本身并不是已建立的连接
//
// 同一个 Endpoint 可以多次 Connect，每次得到一个新连接。
// 实现必须是并发安全的。
type Endpoint interface {
	// Connect 建立连接，直到连接建立、失败或 ctx 取消时返回
	Connect(ctx context.Context) (net.Conn, error)

	// String 返回端点的可读描述（用于日志）
	String() string
}
