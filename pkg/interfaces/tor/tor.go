// Package tor 定义 Tor 能力接口
//
// Tor 能力对提示解析器来说是不透明的：它只提供"经 Tor 打开到 host:port 的流"。
// 地址是否被 Tor 传输支持通过 StreamResult 的状态返回，而不是错误，
// 调用方以显式分支处理"不支持"的情况。
package tor

import "github.com/dep2p/go-transit/pkg/interfaces/endpoint"

// Status 流请求结果状态
type Status int

const (
	// StatusOK 成功得到端点
	StatusOK Status = iota

	// StatusUnsupportedAddress 地址不被 Tor 传输支持（非公网 IPv4、IPv6 字面量等）
	StatusUnsupportedAddress

	// StatusUnavailable Tor 能力当前不可用（未配置、已关闭等）
	StatusUnavailable
)

// String 返回状态的字符串表示
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusUnsupportedAddress:
		return "unsupported-address"
	case StatusUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// StreamResult 流请求结果
type StreamResult struct {
	// Endpoint 仅在 Status == StatusOK 时有效
	Endpoint endpoint.Endpoint

	Status Status

	// Reason 非 OK 时的可读原因
	Reason string
}

// OK 判断结果是否带有可用端点
func (r StreamResult) OK() bool {
	return r.Status == StatusOK && r.Endpoint != nil
}

// Stream 构造成功结果
func Stream(ep endpoint.Endpoint) StreamResult {
	return StreamResult{Endpoint: ep, Status: StatusOK}
}

// Unsupported 构造"地址不支持"结果
func Unsupported(reason string) StreamResult {
	return StreamResult{Status: StatusUnsupportedAddress, Reason: reason}
}

// Unavailable 构造"能力不可用"结果
func Unavailable(reason string) StreamResult {
	return StreamResult{Status: StatusUnavailable, Reason: reason}
}

// Capability Tor 能力
type Capability interface {
	// StreamVia 请求一个经 Tor 到 hostname:port 的端点
	StreamVia(hostname string, port int) StreamResult
}
