package hints

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/dep2p/go-transit/pkg/interfaces/endpoint"
	"github.com/dep2p/go-transit/pkg/interfaces/tor"
)

// fakeEndpoint 记录构造来源的端点
type fakeEndpoint struct {
	via      string
	hostname string
	port     int
}

func (e *fakeEndpoint) Connect(context.Context) (net.Conn, error) {
	return nil, errors.New("fake endpoint")
}

func (e *fakeEndpoint) String() string {
	return fmt.Sprintf("%s:%s:%d", e.via, e.hostname, e.port)
}

// fakeReactor 记录调用次数
type fakeReactor struct {
	calls int
}

func (r *fakeReactor) EndpointFor(hostname string, port int) endpoint.Endpoint {
	r.calls++
	return &fakeEndpoint{via: "reactor", hostname: hostname, port: port}
}

// fakeTor 拒绝 reject 中的主机名
type fakeTor struct {
	reject map[string]bool
	calls  int
}

func (t *fakeTor) StreamVia(hostname string, port int) tor.StreamResult {
	t.calls++
	if t.reject[hostname] {
		return tor.Unsupported("address not supported by tor")
	}
	return tor.Stream(&fakeEndpoint{via: "tor", hostname: hostname, port: port})
}

// panicTor 模拟异常的能力实现
type panicTor struct{}

func (panicTor) StreamVia(string, int) tor.StreamResult {
	panic("tor controller exploded")
}

// nilEndpointTor 声称成功但没有端点
type nilEndpointTor struct{}

func (nilEndpointTor) StreamVia(string, int) tor.StreamResult {
	return tor.StreamResult{Status: tor.StatusOK}
}
