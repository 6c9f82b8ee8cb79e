// Package reactor 定义端点工厂接口
package reactor

import "github.com/dep2p/go-transit/pkg/interfaces/endpoint"

// Reactor 端点工厂：为 hostname:port 创建普通 TCP 端点
//
// EndpointFor 只构造端点，不做任何网络操作。
type Reactor interface {
	EndpointFor(hostname string, port int) endpoint.Endpoint
}

// Func 函数适配器
type Func func(hostname string, port int) endpoint.Endpoint

// EndpointFor 调用 f
func (f Func) EndpointFor(hostname string, port int) endpoint.Endpoint {
	return f(hostname, port)
}
