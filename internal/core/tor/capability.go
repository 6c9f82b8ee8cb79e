package tor

import (
	"fmt"
	"net"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/net/proxy"

	"github.com/dep2p/go-transit/config"
	"github.com/dep2p/go-transit/internal/util/addrutil"
	"github.com/dep2p/go-transit/internal/util/logger"
	torif "github.com/dep2p/go-transit/pkg/interfaces/tor"
)

var log = logger.Logger("core/tor")

// ============================================================================
//                              SOCKSCapability
// ============================================================================

// SOCKSCapability 经 Tor SOCKS5 端口打开流的 Tor 能力
type SOCKSCapability struct {
	config config.TorConfig

	// forward 连接 SOCKS 端口本身使用的拨号器
	forward *net.Dialer

	// streams 已发放的端点数量
	streams atomic.Uint64

	closed atomic.Bool
}

// 确保实现 tor.Capability 接口
var _ torif.Capability = (*SOCKSCapability)(nil)

// NewSOCKSCapability 创建 Tor 能力
//
// 不会连接 SOCKS 端口；Tor 是否在运行要到 Connect 时才知道。
func NewSOCKSCapability(cfg config.TorConfig) *SOCKSCapability {
	if cfg.SOCKSAddr == "" {
		cfg.SOCKSAddr = config.DefaultSOCKSAddr
	}
	return &SOCKSCapability{
		config:  cfg,
		forward: &net.Dialer{Timeout: cfg.DialTimeout.Duration()},
	}
}

// SOCKSAddr 返回 SOCKS 端口地址
func (c *SOCKSCapability) SOCKSAddr() string {
	return c.config.SOCKSAddr
}

// StreamCount 返回已发放的端点数量
func (c *SOCKSCapability) StreamCount() uint64 {
	return c.streams.Load()
}

// StreamVia 请求经 Tor 到 hostname:port 的端点
func (c *SOCKSCapability) StreamVia(hostname string, port int) torif.StreamResult {
	if c.closed.Load() {
		return torif.Unavailable(ErrCapabilityClosed.Error())
	}
	if hostname == "" {
		return torif.Unsupported("empty hostname")
	}
	if port <= 0 || port > 65535 {
		return torif.Unsupported(fmt.Sprintf("port %d out of range", port))
	}
	if reason, ok := checkAddress(hostname); !ok {
		return torif.Unsupported(reason)
	}

	var auth *proxy.Auth
	isolation := ""
	if c.config.IsolateStreams {
		isolation = uuid.NewString()
		auth = &proxy.Auth{User: isolation, Password: isolation}
	}

	d, err := proxy.SOCKS5("tcp", c.config.SOCKSAddr, auth, c.forward)
	if err != nil {
		return torif.Unavailable(fmt.Sprintf("socks dialer: %v", err))
	}
	cd, ok := d.(proxy.ContextDialer)
	if !ok {
		return torif.Unavailable(ErrNoContextDialer.Error())
	}

	c.streams.Add(1)
	return torif.Stream(&StreamEndpoint{
		Hostname:  hostname,
		Port:      port,
		isolation: isolation,
		dialer:    cd,
		owner:     c,
	})
}

// Close 关闭 Tor 能力
//
// 之后 StreamVia 返回 StatusUnavailable，已发放端点的 Connect 返回 ErrCapabilityClosed。
func (c *SOCKSCapability) Close() error {
	if c.closed.CompareAndSwap(false, true) {
		log.Debug("Tor 能力已关闭", "streams", c.streams.Load())
	}
	return nil
}

// IsClosed 检查是否已关闭
func (c *SOCKSCapability) IsClosed() bool {
	return c.closed.Load()
}

// checkAddress 检查 Tor 出口能否到达该主机
//
// 只有公网 IPv4 字面量和主机名可用；IPv4 映射的 IPv6 地址也按 IPv6 拒绝。
func checkAddress(hostname string) (string, bool) {
	if _, isIP := addrutil.ParseIPLiteral(hostname); !isIP {
		return "", true
	}
	if addrutil.IsIPv6Literal(hostname) {
		return "ipv6 literal not supported by tor", false
	}
	if !addrutil.IsPublicHost(hostname) {
		return fmt.Sprintf("non-public ipv4 address (%s)", addrutil.HostType(hostname)), false
	}
	return "", true
}
