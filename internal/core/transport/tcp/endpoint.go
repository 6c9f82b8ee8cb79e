package tcp

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"github.com/dep2p/go-transit/pkg/interfaces/endpoint"
)

// HostnameEndpoint 指向 hostname:port 的直连 TCP 端点
type HostnameEndpoint struct {
	Hostname string
	Port     int

	reactor *Reactor
}

var _ endpoint.Endpoint = (*HostnameEndpoint)(nil)

// Address 返回拨号地址（IPv6 字面量加方括号）
func (e *HostnameEndpoint) Address() string {
	return net.JoinHostPort(e.Hostname, strconv.Itoa(e.Port))
}

// String 返回 "tcp:<host>:<port>"
func (e *HostnameEndpoint) String() string {
	return "tcp:" + e.Address()
}

// Connect 解析主机名并建立 TCP 连接
func (e *HostnameEndpoint) Connect(ctx context.Context) (net.Conn, error) {
	r := e.reactor
	if r == nil {
		r = NewReactor(defaultTransportConfig())
	}
	if r.closed.Load() {
		return nil, ErrReactorClosed
	}

	cfg := r.config
	dialer := &net.Dialer{
		Timeout:   cfg.DialTimeout.Duration(),
		KeepAlive: -1,
	}
	if cfg.KeepAlive {
		dialer.KeepAlive = cfg.KeepAlivePeriod.Duration()
	}

	r.dials.Add(1)
	addr := e.Address()
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		log.Debug("TCP 拨号失败", "addr", addr, "error", err)
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}

	tcpConn, ok := conn.(*net.TCPConn)
	if !ok {
		_ = conn.Close()
		return nil, ErrNotTCP
	}

	// 设置连接选项
	if err := tcpConn.SetNoDelay(cfg.NoDelay); err != nil {
		log.Debug("设置 NoDelay 失败", "addr", addr, "error", err)
	}

	log.Debug("TCP 连接已建立", "addr", addr, "local", tcpConn.LocalAddr().String())
	return tcpConn, nil
}
