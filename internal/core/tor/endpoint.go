package tor

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"golang.org/x/net/proxy"

	"github.com/dep2p/go-transit/pkg/interfaces/endpoint"
)

// StreamEndpoint 经 Tor 到 hostname:port 的端点
type StreamEndpoint struct {
	Hostname string
	Port     int

	// isolation 流隔离凭据，空表示不隔离
	isolation string

	dialer proxy.ContextDialer
	owner  *SOCKSCapability
}

var _ endpoint.Endpoint = (*StreamEndpoint)(nil)

// Address 返回目标地址
func (e *StreamEndpoint) Address() string {
	return net.JoinHostPort(e.Hostname, strconv.Itoa(e.Port))
}

// String 返回 "tor:<host>:<port>"
func (e *StreamEndpoint) String() string {
	return "tor:" + e.Address()
}

// Isolated 是否使用独立线路
func (e *StreamEndpoint) Isolated() bool {
	return e.isolation != ""
}

// Connect 经 SOCKS5 请求 Tor 建立到目标的流
func (e *StreamEndpoint) Connect(ctx context.Context) (net.Conn, error) {
	if e.owner != nil && e.owner.closed.Load() {
		return nil, ErrCapabilityClosed
	}

	if e.owner != nil {
		if timeout := e.owner.config.DialTimeout.Duration(); timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
	}

	addr := e.Address()
	conn, err := e.dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		log.Debug("Tor 流建立失败", "addr", addr, "error", err)
		return nil, fmt.Errorf("tor stream to %s: %w", addr, err)
	}

	log.Debug("Tor 流已建立", "addr", addr, "isolated", e.Isolated())
	return conn, nil
}
