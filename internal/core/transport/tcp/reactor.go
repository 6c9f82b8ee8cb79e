package tcp

import (
	"sync/atomic"
	"time"

	"github.com/dep2p/go-transit/config"
	"github.com/dep2p/go-transit/internal/util/logger"
	"github.com/dep2p/go-transit/pkg/interfaces/endpoint"
	"github.com/dep2p/go-transit/pkg/interfaces/reactor"
)

var log = logger.Logger("core/transport/tcp")

// ============================================================================
//                              Reactor 实现
// ============================================================================

// Reactor 直连 TCP 端点工厂
type Reactor struct {
	config config.TransportConfig

	// dials 已发起的拨号次数
	dials atomic.Uint64

	closed atomic.Bool
}

// 确保实现 reactor.Reactor 接口
var _ reactor.Reactor = (*Reactor)(nil)

// NewReactor 创建 TCP Reactor
func NewReactor(cfg config.TransportConfig) *Reactor {
	return &Reactor{config: cfg}
}

// EndpointFor 返回指向 hostname:port 的端点
//
// 主机名不在此处解析，Connect 时才解析。
func (r *Reactor) EndpointFor(hostname string, port int) endpoint.Endpoint {
	return &HostnameEndpoint{
		Hostname: hostname,
		Port:     port,
		reactor:  r,
	}
}

// DialTimeout 返回拨号超时
func (r *Reactor) DialTimeout() time.Duration {
	return r.config.DialTimeout.Duration()
}

// DialCount 返回已发起的拨号次数
func (r *Reactor) DialCount() uint64 {
	return r.dials.Load()
}

// Close 关闭 Reactor，之后所有端点的 Connect 返回 ErrReactorClosed
//
// 已建立的连接归调用方所有，不受影响。
func (r *Reactor) Close() error {
	if r.closed.CompareAndSwap(false, true) {
		log.Debug("TCP reactor 已关闭", "dials", r.dials.Load())
	}
	return nil
}

// IsClosed 检查是否已关闭
func (r *Reactor) IsClosed() bool {
	return r.closed.Load()
}
